package mocks

import (
	"context"

	"github.com/you/marketauth/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc     func(ctx context.Context, session *domain.Session) error
	ListByUserFunc func(ctx context.Context, userID string) ([]domain.Session, error)
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create records a session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	session.ID = "session-1"
	return nil
}

// ListByUser lists a user's sessions
func (m *MockSessionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty
	return nil, nil
}
