package domain

import "context"

// UserRepository defines user data access operations. Phone lookups are
// case-sensitive exact match; normalization is the caller's concern.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) (*User, error)
}

// RegionRepository defines region data access operations.
type RegionRepository interface {
	Create(ctx context.Context, region *Region) error
	List(ctx context.Context) ([]Region, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// SessionRepository defines session data access operations. Sessions are
// insert-only; expiry is advisory and not enforced by a cleanup job.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	ListByUser(ctx context.Context, userID string) ([]Session, error)
}

// AuthService defines the authentication business logic.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Activate(ctx context.Context, phone, code string) error
	Login(ctx context.Context, phone, password, ip, userAgent string) (*TokenPair, error)
	SendOTP(ctx context.Context, phone string) (string, error)
	ForgetPassword(ctx context.Context, phone string) (string, error)
	ResetPassword(ctx context.Context, phone, code, newPassword string) (*User, error)
	RegisterAdmin(ctx context.Context, input RegisterAdminInput) error
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	Profile(ctx context.Context, userID string) (*User, error)
	Sessions(ctx context.Context, userID string) ([]Session, error)
}

// RegisterInput carries the self-registration fields.
type RegisterInput struct {
	Phone                string
	Password             string
	FirstName            string
	LastName             string
	MiddleName           string
	RegionID             string
	Role                 string
	TIN                  string
	BankCode             string
	BankAccount          string
	BankName             string
	EconomicActivityCode string
}

// RegisterAdminInput carries the privileged registration fields.
type RegisterAdminInput struct {
	Phone      string
	Password   string
	FirstName  string
	LastName   string
	MiddleName string
	RegionID   string
	Role       string
	Status     string
}

// OTPService defines one-time-password operations. Codes are a pure function
// of the server secret, the subject phone and the current time step; no code
// is ever stored.
type OTPService interface {
	Generate(ctx context.Context, phone string) (string, error)
	Check(ctx context.Context, phone, code string) bool
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// Token kinds accepted by TokenService.Verify.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// TokenService signs and verifies access and refresh tokens with distinct
// secrets and expiries.
type TokenService interface {
	IssueAccess(payload TokenPayload) (string, error)
	IssueRefresh(payload TokenPayload) (string, error)
	Verify(token, kind string) (*TokenPayload, error)
}

// NotificationService delivers OTP codes out of band.
type NotificationService interface {
	SendSMS(to, message string) error
}
