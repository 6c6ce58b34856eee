// Package domain defines the core models of the Master Password derivation scheme.
//
// A password is derived in three stages: passphrase + identity → MasterKey (scrypt),
// MasterKey + site + counter → TemplateSeed (HMAC-SHA256), TemplateSeed + PasswordType →
// password (template rendering). Every value is derived on demand and never persisted.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// MasterKey is the 64-byte secret stretched from a passphrase and an identity.
//
// A MasterKey lives only for the duration of a derivation call and should be wiped with
// Zero on every exit path once the site seeds it feeds have been computed.
type MasterKey [MasterKeySize]byte

// KeyID returns the hex-encoded SHA-256 fingerprint of the master key.
//
// The fingerprint lets a user confirm they typed the same passphrase as before without
// revealing anything that helps recover the key.
func (k *MasterKey) KeyID() string {
	sum := sha256.Sum256(k[:])
	return hex.EncodeToString(sum[:])
}

// Zero overwrites the key material.
func (k *MasterKey) Zero() {
	Zero(k[:])
}

// TemplateSeed is the 32-byte HMAC digest that drives template selection and rendering
// for one (master key, site, counter) triple. It is as sensitive as the password itself.
type TemplateSeed [TemplateSeedSize]byte

// Zero overwrites the seed bytes.
func (s *TemplateSeed) Zero() {
	Zero(s[:])
}

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
