package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
	cryptoService "github.com/allisson/sisyphus/internal/crypto/service"
)

type sitePasswordUseCase struct {
	keyDeriver  cryptoService.MasterKeyDeriver
	generator   *cryptoService.SitePasswordGenerator
	limiter     *rate.Limiter
	concurrency int
	logger      *slog.Logger
}

// NewSitePasswordUseCase creates a new SitePasswordUseCase.
//
// limiter may be nil to derive master keys without throttling. concurrency bounds the
// number of master keys derived at once by GenerateBatch; values below 1 mean 1.
func NewSitePasswordUseCase(
	keyDeriver cryptoService.MasterKeyDeriver,
	seedDeriver cryptoService.SeedDeriver,
	renderer cryptoService.TemplateRenderer,
	limiter *rate.Limiter,
	concurrency int,
	logger *slog.Logger,
) SitePasswordUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &sitePasswordUseCase{
		keyDeriver:  keyDeriver,
		generator:   cryptoService.NewSitePasswordGenerator(keyDeriver, seedDeriver, renderer),
		limiter:     limiter,
		concurrency: concurrency,
		logger:      logger,
	}
}

type derivationResult struct {
	key cryptoDomain.MasterKey
	err error
}

// deriveMasterKey runs the uninterruptible key derivation on its own goroutine so the
// caller can stop waiting when ctx ends. An abandoned result is wiped once it arrives.
func (u *sitePasswordUseCase) deriveMasterKey(
	ctx context.Context,
	identity, passphrase string,
) (cryptoDomain.MasterKey, error) {
	if u.limiter != nil {
		if err := u.limiter.Wait(ctx); err != nil {
			return cryptoDomain.MasterKey{}, fmt.Errorf("derivation rate limit: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return cryptoDomain.MasterKey{}, err
	}

	done := make(chan derivationResult, 1)
	go func() {
		key, err := u.keyDeriver.DeriveMasterKey(identity, passphrase)
		done <- derivationResult{key: key, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			res.key.Zero()
			return cryptoDomain.MasterKey{}, fmt.Errorf("failed to derive master key: %w", res.err)
		}
		return res.key, nil
	case <-ctx.Done():
		go func() {
			res := <-done
			res.key.Zero()
		}()
		return cryptoDomain.MasterKey{}, ctx.Err()
	}
}

// render derives the seed for one input under masterKey and renders its password.
func (u *sitePasswordUseCase) render(
	masterKey *cryptoDomain.MasterKey,
	input *cryptoDomain.GenerateInput,
) (*cryptoDomain.GenerateOutput, error) {
	counter := input.SiteCounter()

	template, password, err := u.generator.RenderSite(masterKey, input.SiteName, counter, input.PasswordType)
	if err != nil {
		return nil, fmt.Errorf("failed to render password: %w", err)
	}

	return &cryptoDomain.GenerateOutput{
		SiteName:     input.SiteName,
		Counter:      counter,
		PasswordType: input.PasswordType,
		Template:     template,
		Password:     password,
		KeyID:        masterKey.KeyID(),
	}, nil
}

// Generate validates the input, derives the master key and renders the site password.
func (u *sitePasswordUseCase) Generate(
	ctx context.Context,
	input *cryptoDomain.GenerateInput,
) (*cryptoDomain.GenerateOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	masterKey, err := u.deriveMasterKey(ctx, input.Identity, input.Passphrase)
	defer masterKey.Zero()
	if err != nil {
		return nil, err
	}

	output, err := u.render(&masterKey, input)
	if err != nil {
		return nil, err
	}

	u.logger.Debug("site password generated",
		slog.String("site_name", output.SiteName),
		slog.Uint64("counter", uint64(output.Counter)),
		slog.String("password_type", output.PasswordType.String()),
		slog.String("key_id", output.KeyID),
	)

	return output, nil
}

type credential struct {
	identity   string
	passphrase string
}

// GenerateBatch derives every distinct master key concurrently, bounded by the configured
// concurrency, then renders each input in order. The first failure cancels the rest.
func (u *sitePasswordUseCase) GenerateBatch(
	ctx context.Context,
	inputs []*cryptoDomain.GenerateInput,
) ([]*cryptoDomain.GenerateOutput, error) {
	for i, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
	}

	batchID := uuid.Must(uuid.NewV7())

	keyIndex := make(map[credential]int)
	var credentials []credential
	for _, input := range inputs {
		c := credential{identity: input.Identity, passphrase: input.Passphrase}
		if _, ok := keyIndex[c]; !ok {
			keyIndex[c] = len(credentials)
			credentials = append(credentials, c)
		}
	}

	u.logger.Info("batch generation started",
		slog.String("batch_id", batchID.String()),
		slog.Int("inputs", len(inputs)),
		slog.Int("master_keys", len(credentials)),
	)

	masterKeys := make([]cryptoDomain.MasterKey, len(credentials))
	defer func() {
		for i := range masterKeys {
			masterKeys[i].Zero()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, c := range credentials {
		g.Go(func() error {
			key, err := u.deriveMasterKey(gctx, c.identity, c.passphrase)
			if err != nil {
				return err
			}
			masterKeys[i] = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		u.logger.Error("batch generation failed",
			slog.String("batch_id", batchID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	outputs := make([]*cryptoDomain.GenerateOutput, 0, len(inputs))
	for i, input := range inputs {
		c := credential{identity: input.Identity, passphrase: input.Passphrase}
		output, err := u.render(&masterKeys[keyIndex[c]], input)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		outputs = append(outputs, output)
	}

	u.logger.Info("batch generation finished",
		slog.String("batch_id", batchID.String()),
		slog.Int("passwords", len(outputs)),
	)

	return outputs, nil
}
