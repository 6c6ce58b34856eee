// Package mocks provides mock implementations of the use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// MockSitePasswordUseCase is a mock implementation of SitePasswordUseCase.
type MockSitePasswordUseCase struct {
	mock.Mock
}

// NewMockSitePasswordUseCase creates a MockSitePasswordUseCase that asserts its
// expectations when the test finishes.
func NewMockSitePasswordUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSitePasswordUseCase {
	m := &MockSitePasswordUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Generate mocks the Generate method of SitePasswordUseCase.
func (m *MockSitePasswordUseCase) Generate(
	ctx context.Context,
	input *cryptoDomain.GenerateInput,
) (*cryptoDomain.GenerateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.GenerateOutput), args.Error(1)
}

// GenerateBatch mocks the GenerateBatch method of SitePasswordUseCase.
func (m *MockSitePasswordUseCase) GenerateBatch(
	ctx context.Context,
	inputs []*cryptoDomain.GenerateInput,
) ([]*cryptoDomain.GenerateOutput, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cryptoDomain.GenerateOutput), args.Error(1)
}
