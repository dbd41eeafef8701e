package mocks

import (
	"context"

	"github.com/you/marketauth/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByPhoneFunc    func(ctx context.Context, phone string) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id string) (*domain.User, error)
	UpdateStatusFunc   func(ctx context.Context, id, status string) error
	UpdatePasswordFunc func(ctx context.Context, id, passwordHash string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	user.ID = "user-1"
	return nil
}

// FindByPhone finds a user by phone number
func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateStatus updates a user's status
func (m *MockUserRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	// Default behavior: success
	return nil
}

// UpdatePassword replaces a user's password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (*domain.User, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	// Default behavior: echo a minimal user
	return &domain.User{ID: id, PasswordHash: passwordHash}, nil
}
