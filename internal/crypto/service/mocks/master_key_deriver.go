// Package mocks provides mock implementations of the derivation service interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// MockMasterKeyDeriver is a mock implementation of MasterKeyDeriver.
type MockMasterKeyDeriver struct {
	mock.Mock
}

// NewMockMasterKeyDeriver creates a MockMasterKeyDeriver that asserts its expectations
// when the test finishes.
func NewMockMasterKeyDeriver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMasterKeyDeriver {
	m := &MockMasterKeyDeriver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// DeriveMasterKey mocks the DeriveMasterKey method of MasterKeyDeriver.
func (m *MockMasterKeyDeriver) DeriveMasterKey(identity, passphrase string) (cryptoDomain.MasterKey, error) {
	args := m.Called(identity, passphrase)
	return args.Get(0).(cryptoDomain.MasterKey), args.Error(1)
}
