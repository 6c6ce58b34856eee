package service

import (
	"fmt"

	"golang.org/x/crypto/scrypt"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// ScryptKeyDeriver derives master keys with scrypt using the fixed algorithm parameters.
//
// With N=32768, r=8 and p=2 each derivation touches 32 MiB per lane and takes a noticeable
// fraction of a second; run it off interactive goroutines.
type ScryptKeyDeriver struct {
	n, r, p int
}

// NewScryptKeyDeriver creates a ScryptKeyDeriver with the algorithm's cost parameters.
func NewScryptKeyDeriver() *ScryptKeyDeriver {
	return &ScryptKeyDeriver{
		n: cryptoDomain.ScryptN,
		r: cryptoDomain.ScryptR,
		p: cryptoDomain.ScryptP,
	}
}

// DeriveMasterKey stretches passphrase with the salt
// KeyScope || uint32BE(len(identity)) || identity into a 64-byte master key.
//
// An error means the fixed parameters are invalid (ErrInvalidParameters) or identity is
// too long for the length prefix (ErrInputTooLong); neither depends on the passphrase.
func (d *ScryptKeyDeriver) DeriveMasterKey(identity, passphrase string) (cryptoDomain.MasterKey, error) {
	var masterKey cryptoDomain.MasterKey

	salt, err := scopedMessage(identity, 0)
	if err != nil {
		return masterKey, err
	}

	password := []byte(passphrase)
	defer cryptoDomain.Zero(password)

	derived, err := scrypt.Key(password, salt, d.n, d.r, d.p, cryptoDomain.MasterKeySize)
	if err != nil {
		return masterKey, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidParameters, err)
	}
	defer cryptoDomain.Zero(derived)

	if len(derived) != cryptoDomain.MasterKeySize {
		return masterKey, fmt.Errorf(
			"%w: derived %d bytes, want %d",
			cryptoDomain.ErrInvalidParameters,
			len(derived),
			cryptoDomain.MasterKeySize,
		)
	}

	copy(masterKey[:], derived)
	return masterKey, nil
}
