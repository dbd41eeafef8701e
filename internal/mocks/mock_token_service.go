package mocks

import (
	"github.com/you/marketauth/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueAccessFunc  func(payload domain.TokenPayload) (string, error)
	IssueRefreshFunc func(payload domain.TokenPayload) (string, error)
	VerifyFunc       func(token, kind string) (*domain.TokenPayload, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// IssueAccess issues an access token
func (m *MockTokenService) IssueAccess(payload domain.TokenPayload) (string, error) {
	if m.IssueAccessFunc != nil {
		return m.IssueAccessFunc(payload)
	}
	// Default behavior: deterministic fake token
	return "access_" + payload.ID, nil
}

// IssueRefresh issues a refresh token
func (m *MockTokenService) IssueRefresh(payload domain.TokenPayload) (string, error) {
	if m.IssueRefreshFunc != nil {
		return m.IssueRefreshFunc(payload)
	}
	// Default behavior: deterministic fake token
	return "refresh_" + payload.ID, nil
}

// Verify verifies a token of the given kind
func (m *MockTokenService) Verify(token, kind string) (*domain.TokenPayload, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token, kind)
	}
	// Default behavior: invalid
	return nil, domain.ErrInvalidToken
}
