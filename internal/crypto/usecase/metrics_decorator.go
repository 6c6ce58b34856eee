package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
	"github.com/allisson/sisyphus/internal/metrics"
)

// sitePasswordUseCaseWithMetrics decorates SitePasswordUseCase with metrics instrumentation.
type sitePasswordUseCaseWithMetrics struct {
	next    SitePasswordUseCase
	metrics metrics.BusinessMetrics
}

// NewSitePasswordUseCaseWithMetrics wraps a SitePasswordUseCase with metrics recording.
func NewSitePasswordUseCaseWithMetrics(
	useCase SitePasswordUseCase,
	m metrics.BusinessMetrics,
) SitePasswordUseCase {
	return &sitePasswordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for single site password derivations.
func (s *sitePasswordUseCaseWithMetrics) Generate(
	ctx context.Context,
	input *cryptoDomain.GenerateInput,
) (*cryptoDomain.GenerateOutput, error) {
	start := time.Now()
	output, err := s.next.Generate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "derivation", "generate", status)
	s.metrics.RecordDuration(ctx, "derivation", "generate", time.Since(start), status)
	if err == nil {
		s.metrics.RecordMasterKeysDerived(ctx, "generate", 1)
	}

	return output, err
}

// GenerateBatch records metrics for batch derivations.
func (s *sitePasswordUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	inputs []*cryptoDomain.GenerateInput,
) ([]*cryptoDomain.GenerateOutput, error) {
	start := time.Now()
	outputs, err := s.next.GenerateBatch(ctx, inputs)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "derivation", "generate_batch", status)
	s.metrics.RecordDuration(ctx, "derivation", "generate_batch", time.Since(start), status)
	if err == nil {
		s.metrics.RecordMasterKeysDerived(ctx, "generate_batch", distinctKeys(outputs))
	}

	return outputs, err
}

// distinctKeys counts the master keys behind outputs; a batch derives each only once.
func distinctKeys(outputs []*cryptoDomain.GenerateOutput) int {
	keyIDs := make(map[string]struct{}, len(outputs))
	for _, output := range outputs {
		keyIDs[output.KeyID] = struct{}{}
	}
	return len(keyIDs)
}
