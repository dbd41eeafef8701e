package domain

import "errors"

// Registration errors
var (
	ErrPhoneTaken     = errors.New("this phone already exists")
	ErrRegionNotFound = errors.New("region with this id does not exist")
	ErrRoleNotAllowed = errors.New("only SUPERADMIN or VIEWERADMIN roles may be assigned here")
	ErrInvalidRole    = errors.New("unknown user role")
)

// Credential errors. Phone-lookup failures collapse into these messages so a
// caller cannot distinguish an unknown phone from a wrong credential.
var (
	ErrInvalidPhoneOrPassword = errors.New("invalid phone or password")
	ErrInvalidPhoneOrOTP      = errors.New("invalid phone or otp")
	ErrInvalidPhone           = errors.New("invalid phone")
	ErrAccountInactive        = errors.New("your account is not active")
)

// OTP errors
var (
	ErrInvalidOTP  = errors.New("invalid or expired otp code")
	ErrOTPThrottle = errors.New("please wait before requesting a new otp")
)

// Token errors. Malformed, invalid-signature and expired tokens share one
// message so callers get no validity oracle.
var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Lookup errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
)
