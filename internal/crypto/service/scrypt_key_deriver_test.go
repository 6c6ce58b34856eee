package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
	"github.com/allisson/sisyphus/internal/errors"
)

func TestScryptKeyDeriver_DeriveMasterKey(t *testing.T) {
	deriver := NewScryptKeyDeriver()

	t.Run("reference master key", func(t *testing.T) {
		key, err := deriver.DeriveMasterKey(referenceIdentity, referencePassphrase)
		require.NoError(t, err)
		assert.Equal(t, referenceMasterKey(t), key)
	})

	t.Run("identity changes the key", func(t *testing.T) {
		key1, err := deriver.DeriveMasterKey(referenceIdentity, referencePassphrase)
		require.NoError(t, err)
		key2, err := deriver.DeriveMasterKey("Robert Lee Mitchel", referencePassphrase)
		require.NoError(t, err)
		assert.NotEqual(t, key1, key2)
	})

	t.Run("empty inputs are accepted", func(t *testing.T) {
		key, err := deriver.DeriveMasterKey("", "")
		require.NoError(t, err)
		assert.NotEqual(t, cryptoDomain.MasterKey{}, key)
	})
}

func TestScryptKeyDeriver_InvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		deriver *ScryptKeyDeriver
	}{
		{name: "N not a power of two", deriver: &ScryptKeyDeriver{n: 3, r: 8, p: 2}},
		{name: "N too small", deriver: &ScryptKeyDeriver{n: 1, r: 8, p: 2}},
		{name: "parameters too large", deriver: &ScryptKeyDeriver{n: 16, r: 1 << 30, p: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := tt.deriver.DeriveMasterKey(referenceIdentity, referencePassphrase)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidParameters)
			assert.ErrorIs(t, err, errors.ErrInternal)
			assert.Equal(t, cryptoDomain.MasterKey{}, key)
		})
	}
}

func TestNewScryptKeyDeriver(t *testing.T) {
	deriver := NewScryptKeyDeriver()
	assert.Equal(t, 32768, deriver.n)
	assert.Equal(t, 8, deriver.r)
	assert.Equal(t, 2, deriver.p)
}
