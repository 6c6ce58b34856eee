// Package service implements the three stages of the Master Password derivation:
// scrypt master key stretching, HMAC-SHA256 site seed derivation and template rendering.
// Every stage is a pure function of its arguments and safe for concurrent use.
package service

import (
	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// MasterKeyDeriver stretches a passphrase and identity into a master key.
type MasterKeyDeriver interface {
	// DeriveMasterKey runs the memory-hard key derivation. It cannot be interrupted.
	DeriveMasterKey(identity, passphrase string) (cryptoDomain.MasterKey, error)
}

// SeedDeriver binds a master key to a site name and counter.
type SeedDeriver interface {
	// DeriveSeed computes the template seed for one site and counter.
	DeriveSeed(
		masterKey *cryptoDomain.MasterKey,
		siteName string,
		counter uint32,
	) (cryptoDomain.TemplateSeed, error)
}

// TemplateRenderer turns a seed into a password of the requested type.
type TemplateRenderer interface {
	// Render selects a template with the seed and substitutes every class character.
	Render(seed *cryptoDomain.TemplateSeed, passwordType cryptoDomain.PasswordType) (string, error)
}
