package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// HMACSeedDeriver derives template seeds with HMAC-SHA256 keyed by the master key.
type HMACSeedDeriver struct{}

// NewHMACSeedDeriver creates a new HMACSeedDeriver.
func NewHMACSeedDeriver() *HMACSeedDeriver {
	return &HMACSeedDeriver{}
}

// DeriveSeed computes HMAC-SHA256(masterKey,
// KeyScope || uint32BE(len(siteName)) || siteName || uint32BE(counter)).
func (d *HMACSeedDeriver) DeriveSeed(
	masterKey *cryptoDomain.MasterKey,
	siteName string,
	counter uint32,
) (cryptoDomain.TemplateSeed, error) {
	var seed cryptoDomain.TemplateSeed

	msg, err := scopedMessage(siteName, 4)
	if err != nil {
		return seed, err
	}
	msg = binary.BigEndian.AppendUint32(msg, counter)

	mac := hmac.New(sha256.New, masterKey[:])
	mac.Write(msg)
	sum := mac.Sum(nil)
	defer cryptoDomain.Zero(sum)

	copy(seed[:], sum)
	return seed, nil
}
