package mocks

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	SentTo       []string
	SentMessages []string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records the message and succeeds
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.SentTo = append(m.SentTo, to)
	m.SentMessages = append(m.SentMessages, message)
	return nil
}
