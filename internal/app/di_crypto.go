package app

import (
	"fmt"

	cryptoService "github.com/allisson/sisyphus/internal/crypto/service"
	cryptoUseCase "github.com/allisson/sisyphus/internal/crypto/usecase"
)

// KeyDeriver returns the master key deriver service.
func (c *Container) KeyDeriver() cryptoService.MasterKeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = cryptoService.NewScryptKeyDeriver()
	})
	return c.keyDeriver
}

// SeedDeriver returns the site seed deriver service.
func (c *Container) SeedDeriver() cryptoService.SeedDeriver {
	c.seedDeriverInit.Do(func() {
		c.seedDeriver = cryptoService.NewHMACSeedDeriver()
	})
	return c.seedDeriver
}

// TemplateRenderer returns the template renderer service.
func (c *Container) TemplateRenderer() cryptoService.TemplateRenderer {
	c.rendererInit.Do(func() {
		c.renderer = cryptoService.NewTemplateRenderer()
	})
	return c.renderer
}

// SitePasswordUseCase returns the site password use case.
func (c *Container) SitePasswordUseCase() (cryptoUseCase.SitePasswordUseCase, error) {
	var err error
	c.sitePasswordUseCaseInit.Do(func() {
		c.sitePasswordUseCase, err = c.initSitePasswordUseCase()
		if err != nil {
			c.initErrors["sitePasswordUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sitePasswordUseCase"]; exists {
		return nil, storedErr
	}
	return c.sitePasswordUseCase, nil
}

// initSitePasswordUseCase creates the site password use case with all its dependencies.
func (c *Container) initSitePasswordUseCase() (cryptoUseCase.SitePasswordUseCase, error) {
	baseUseCase := cryptoUseCase.NewSitePasswordUseCase(
		c.KeyDeriver(),
		c.SeedDeriver(),
		c.TemplateRenderer(),
		c.RateLimiter(),
		c.config.DerivationConcurrency,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for site password use case: %w", err)
		}
		return cryptoUseCase.NewSitePasswordUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
