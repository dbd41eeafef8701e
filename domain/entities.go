package domain

import "time"

// User roles. INDIVIDUAL and LEGAL_ENTITY are self-registered marketplace
// customers; the admin roles are assigned through the privileged path only.
const (
	RoleIndividual  = "INDIVIDUAL"
	RoleLegalEntity = "LEGAL_ENTITY"
	RoleAdmin       = "ADMIN"
	RoleSuperAdmin  = "SUPERADMIN"
	RoleViewerAdmin = "VIEWERADMIN"
)

// Account statuses. A user is created INACTIVE and becomes ACTIVE only
// through OTP activation.
const (
	StatusInactive = "INACTIVE"
	StatusActive   = "ACTIVE"
)

// User represents a marketplace account. Phone is the natural key for all
// authentication flows and is matched byte-for-byte.
type User struct {
	ID           string
	Phone        string
	PasswordHash string `json:"-"`
	FirstName    string
	LastName     string
	MiddleName   string
	Role         string
	Status       string
	RegionID     string
	Region       *Region

	// Legal-entity profile fields, empty for individuals.
	TIN                  string
	BankCode             string
	BankAccount          string
	BankName             string
	EconomicActivityCode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdminRole reports whether the role belongs to the back-office family.
func IsAdminRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSuperAdmin, RoleViewerAdmin:
		return true
	}
	return false
}

// ValidRole reports whether the role is one of the known role constants.
func ValidRole(role string) bool {
	switch role {
	case RoleIndividual, RoleLegalEntity, RoleAdmin, RoleSuperAdmin, RoleViewerAdmin:
		return true
	}
	return false
}

// Region is referenced by users; auth needs existence checks and the display
// name for the profile view.
type Region struct {
	ID   string
	Name string
}

// Session records one successful login. Rows are insert-only: a user logging
// in twice from the same device produces two rows.
type Session struct {
	ID           string
	UserID       string
	IPAddress    string
	UserAgent    string
	RefreshToken string `json:"-"`
	ExpiresAt    int64
	CreatedAt    time.Time
}

// TokenPayload is the claim set embedded in both access and refresh tokens.
// It is never persisted.
type TokenPayload struct {
	ID     string
	Role   string
	Status string
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	Access  string
	Refresh string
}
