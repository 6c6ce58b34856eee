// Package usecase orchestrates site password derivation for callers such as the CLI.
//
// The use case layer adds what the pure derivation services deliberately leave out:
// input validation, context-aware waiting on the expensive master key step, optional
// throttling of derivations, batching several sites under one master key and metrics.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// SitePasswordUseCase defines the interface for deriving site passwords.
type SitePasswordUseCase interface {
	// Generate derives one site password.
	//
	// If ctx ends while the master key is being derived, Generate returns ctx.Err()
	// immediately. The derivation itself keeps running to completion in the background
	// and its result is wiped and discarded.
	Generate(ctx context.Context, input *cryptoDomain.GenerateInput) (*cryptoDomain.GenerateOutput, error)

	// GenerateBatch derives many site passwords. Each distinct (identity, passphrase)
	// pair is stretched once; outputs are returned in input order.
	GenerateBatch(
		ctx context.Context,
		inputs []*cryptoDomain.GenerateInput,
	) ([]*cryptoDomain.GenerateOutput, error)
}
