package domain

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Master key of "Robert Lee Mitchell" / "pink fluffy door frame".
const referenceMasterKeyHex = "37fa6b38117e879b396487e85d46bea04440a3dda3a06a80f794ac2735cc6b47" +
	"ec2fc87c0c4631040a59bf3b873be60fc9a132829478c5b44eb078a4a69ac5c5"

func TestMasterKey_KeyID(t *testing.T) {
	raw, err := hex.DecodeString(referenceMasterKeyHex)
	require.NoError(t, err)

	var key MasterKey
	copy(key[:], raw)

	assert.Equal(t, "3fdcf9b156aef59d6f39b0488723ba8458e47f2a272fa55367906cf40d1cd646", key.KeyID())
	assert.Len(t, key.KeyID(), 64)
}

func TestMasterKey_Zero(t *testing.T) {
	var key MasterKey
	for i := range key {
		key[i] = byte(i + 1)
	}

	key.Zero()

	assert.Equal(t, MasterKey{}, key)
}

func TestTemplateSeed_Zero(t *testing.T) {
	var seed TemplateSeed
	for i := range seed {
		seed[i] = 0xff
	}

	seed.Zero()

	assert.Equal(t, TemplateSeed{}, seed)
}

func TestZero(t *testing.T) {
	t.Run("zero non-empty slice", func(t *testing.T) {
		b := []byte{1, 2, 3, 4, 5}
		Zero(b)
		assert.Equal(t, []byte{0, 0, 0, 0, 0}, b)
	})

	t.Run("zero nil slice", func(t *testing.T) {
		var b []byte
		assert.NotPanics(t, func() { Zero(b) })
	})
}
