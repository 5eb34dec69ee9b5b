package testutil

import (
	"github.com/ecomshop/shop-api/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GeneratePairFunc  func(memberID uint32, email string, role token.Role) (*token.Pair, error)
	ValidateTokenFunc func(tokenString string, expected token.Type) (*token.Claims, error)
}

func (m *MockTokenManager) GeneratePair(memberID uint32, email string, role token.Role) (*token.Pair, error) {
	if m.GeneratePairFunc != nil {
		return m.GeneratePairFunc(memberID, email, role)
	}
	return &token.Pair{AccessToken: "mock-access-token", RefreshToken: "mock-refresh-token"}, nil
}

func (m *MockTokenManager) ValidateToken(tokenString string, expected token.Type) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString, expected)
	}
	return nil, token.ErrInvalidToken
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

// NewMockTokenManager creates a new mock token manager with default behavior
func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}
