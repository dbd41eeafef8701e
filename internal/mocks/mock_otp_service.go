package mocks

import "context"

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	GenerateFunc func(ctx context.Context, phone string) (string, error)
	CheckFunc    func(ctx context.Context, phone, code string) bool
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Generate generates an OTP code
func (m *MockOTPService) Generate(ctx context.Context, phone string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, phone)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// Check verifies an OTP code
func (m *MockOTPService) Check(ctx context.Context, phone, code string) bool {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, phone, code)
	}
	// Default behavior: accept the fixed code only
	return code == "123456"
}
