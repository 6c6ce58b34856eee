package service

import (
	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// SitePasswordGenerator composes the three derivation stages.
type SitePasswordGenerator struct {
	keyDeriver  MasterKeyDeriver
	seedDeriver SeedDeriver
	renderer    TemplateRenderer
}

// NewSitePasswordGenerator creates a SitePasswordGenerator from its stages.
func NewSitePasswordGenerator(
	keyDeriver MasterKeyDeriver,
	seedDeriver SeedDeriver,
	renderer TemplateRenderer,
) *SitePasswordGenerator {
	return &SitePasswordGenerator{
		keyDeriver:  keyDeriver,
		seedDeriver: seedDeriver,
		renderer:    renderer,
	}
}

// Generate derives the password for one site. The master key and seed are wiped before
// returning, on success and on failure.
func (g *SitePasswordGenerator) Generate(
	identity, passphrase, siteName string,
	counter uint32,
	passwordType cryptoDomain.PasswordType,
) (string, error) {
	if err := passwordType.Validate(); err != nil {
		return "", err
	}

	masterKey, err := g.keyDeriver.DeriveMasterKey(identity, passphrase)
	defer masterKey.Zero()
	if err != nil {
		return "", err
	}

	return g.Render(&masterKey, siteName, counter, passwordType)
}

// Render derives the seed for siteName and counter from an existing master key and
// renders it. The seed is wiped before returning.
func (g *SitePasswordGenerator) Render(
	masterKey *cryptoDomain.MasterKey,
	siteName string,
	counter uint32,
	passwordType cryptoDomain.PasswordType,
) (string, error) {
	_, password, err := g.RenderSite(masterKey, siteName, counter, passwordType)
	return password, err
}

// RenderSite is Render that also reports the template the seed selected.
func (g *SitePasswordGenerator) RenderSite(
	masterKey *cryptoDomain.MasterKey,
	siteName string,
	counter uint32,
	passwordType cryptoDomain.PasswordType,
) (template, password string, err error) {
	seed, err := g.seedDeriver.DeriveSeed(masterKey, siteName, counter)
	defer seed.Zero()
	if err != nil {
		return "", "", err
	}

	template, err = passwordType.Template(&seed)
	if err != nil {
		return "", "", err
	}

	password, err = g.renderer.Render(&seed, passwordType)
	if err != nil {
		return "", "", err
	}
	return template, password, nil
}

// GenerateSitePassword derives a site password with the standard Master Password stages.
// Pass cryptoDomain.DefaultCounter when the caller has no counter of its own.
func GenerateSitePassword(
	identity, passphrase, siteName string,
	counter uint32,
	passwordType cryptoDomain.PasswordType,
) (string, error) {
	generator := NewSitePasswordGenerator(
		NewScryptKeyDeriver(),
		NewHMACSeedDeriver(),
		NewTemplateRenderer(),
	)
	return generator.Generate(identity, passphrase, siteName, counter, passwordType)
}
