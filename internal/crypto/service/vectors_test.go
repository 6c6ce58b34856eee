package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

const (
	referenceIdentity   = "Robert Lee Mitchell"
	referencePassphrase = "pink fluffy door frame"
	referenceSite       = "apple.com"

	referenceMasterKeyHex = "37fa6b38117e879b396487e85d46bea04440a3dda3a06a80f794ac2735cc6b47" +
		"ec2fc87c0c4631040a59bf3b873be60fc9a132829478c5b44eb078a4a69ac5c5"
	referenceSeedCounter1Hex = "6ba932858de374f735b878e14eac2ee5470abb9d6f845e074b78722dce7b1d9a"
	referenceSeedCounter2Hex = "1e055ff86941876b8d07e7aec2b1e3e8aaabf6a4ce5a399fe2d6e6e8b9a73284"
)

type passwordVector struct {
	counter      uint32
	passwordType cryptoDomain.PasswordType
	template     string
	password     string
}

var referenceVectors = []passwordVector{
	{1, cryptoDomain.PasswordTypeMaximum, "axxxxxxxxxxxxxxxxxno", "Fy9*Crb1mwueXtF)Bq7!"},
	{1, cryptoDomain.PasswordTypeLong, "CvcvCvcvCvcvno", "CakeWevoVato2/"},
	{2, cryptoDomain.PasswordTypeLong, "CvcvnoCvcvCvcc", "Hawa5!DekeJumw"},
	{1, cryptoDomain.PasswordTypeMedium, "CvcCvcno", "CakTip7="},
	{1, cryptoDomain.PasswordTypeShort, "Cvcn", "Cak1"},
	{1, cryptoDomain.PasswordTypeBasic, "aaannaaa", "FyY17DlE"},
	{1, cryptoDomain.PasswordTypePIN, "nnnn", "9031"},
}

func referenceMasterKey(t *testing.T) cryptoDomain.MasterKey {
	t.Helper()
	raw, err := hex.DecodeString(referenceMasterKeyHex)
	require.NoError(t, err)

	var key cryptoDomain.MasterKey
	copy(key[:], raw)
	return key
}

func referenceSeed(t *testing.T, counter uint32) cryptoDomain.TemplateSeed {
	t.Helper()
	seedHex := referenceSeedCounter1Hex
	if counter == 2 {
		seedHex = referenceSeedCounter2Hex
	}
	raw, err := hex.DecodeString(seedHex)
	require.NoError(t, err)

	var seed cryptoDomain.TemplateSeed
	copy(seed[:], raw)
	return seed
}
