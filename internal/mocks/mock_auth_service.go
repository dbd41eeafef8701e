package mocks

import (
	"context"

	"github.com/you/marketauth/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, input domain.RegisterInput) (string, error)
	ActivateFunc       func(ctx context.Context, phone, code string) error
	LoginFunc          func(ctx context.Context, phone, password, ip, userAgent string) (*domain.TokenPair, error)
	SendOTPFunc        func(ctx context.Context, phone string) (string, error)
	ForgetPasswordFunc func(ctx context.Context, phone string) (string, error)
	ResetPasswordFunc  func(ctx context.Context, phone, code, newPassword string) (*domain.User, error)
	RegisterAdminFunc  func(ctx context.Context, input domain.RegisterAdminInput) error
	RefreshTokenFunc   func(ctx context.Context, refreshToken string) (string, error)
	ProfileFunc        func(ctx context.Context, userID string) (*domain.User, error)
	SessionsFunc       func(ctx context.Context, userID string) ([]domain.Session, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return "123456", nil
}

func (m *MockAuthService) Activate(ctx context.Context, phone, code string) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, phone, code)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, phone, password, ip, userAgent string) (*domain.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, phone, password, ip, userAgent)
	}
	return &domain.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

func (m *MockAuthService) SendOTP(ctx context.Context, phone string) (string, error) {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, phone)
	}
	return "123456", nil
}

func (m *MockAuthService) ForgetPassword(ctx context.Context, phone string) (string, error) {
	if m.ForgetPasswordFunc != nil {
		return m.ForgetPasswordFunc(ctx, phone)
	}
	return "123456", nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, phone, code, newPassword string) (*domain.User, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, phone, code, newPassword)
	}
	return &domain.User{ID: "user-1", Phone: phone}, nil
}

func (m *MockAuthService) RegisterAdmin(ctx context.Context, input domain.RegisterAdminInput) error {
	if m.RegisterAdminFunc != nil {
		return m.RegisterAdminFunc(ctx, input)
	}
	return nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return "access", nil
}

func (m *MockAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return &domain.User{ID: userID}, nil
}

func (m *MockAuthService) Sessions(ctx context.Context, userID string) ([]domain.Session, error) {
	if m.SessionsFunc != nil {
		return m.SessionsFunc(ctx, userID)
	}
	return nil, nil
}
