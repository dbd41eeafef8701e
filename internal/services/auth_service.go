package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/you/marketauth/domain"
)

// AuthServiceImpl implements domain.AuthService. Each flow is a short linear
// protocol: validate preconditions against the repositories, delegate to the
// OTP/password/token services, persist side effects, return a typed result
// or a classified error.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	regionRepo  domain.RegionRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	regionRepo domain.RegionRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	sessionTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		regionRepo:  regionRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		sessionTTL:  sessionTTL,
	}
}

// Register implements domain.AuthService. The user is created INACTIVE; the
// returned OTP activates the account.
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	if input.Role != domain.RoleIndividual && input.Role != domain.RoleLegalEntity {
		return "", domain.ErrInvalidRole
	}

	if _, err := s.userRepo.FindByPhone(ctx, input.Phone); err == nil {
		return "", domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", s.internal("register", input.Phone, err)
	}

	exists, err := s.regionRepo.Exists(ctx, input.RegionID)
	if err != nil {
		return "", s.internal("register", input.Phone, err)
	}
	if !exists {
		return "", domain.ErrRegionNotFound
	}

	hash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return "", s.internal("register", input.Phone, err)
	}

	user := &domain.User{
		Phone:                input.Phone,
		PasswordHash:         hash,
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		MiddleName:           input.MiddleName,
		Role:                 input.Role,
		Status:               domain.StatusInactive,
		RegionID:             input.RegionID,
		TIN:                  input.TIN,
		BankCode:             input.BankCode,
		BankAccount:          input.BankAccount,
		BankName:             input.BankName,
		EconomicActivityCode: input.EconomicActivityCode,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrPhoneTaken) {
			return "", domain.ErrPhoneTaken
		}
		return "", s.internal("register", input.Phone, err)
	}

	code, err := s.otpSvc.Generate(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrOTPThrottle) {
			return "", err
		}
		return "", s.internal("register", input.Phone, err)
	}

	return code, nil
}

// Activate implements domain.AuthService. An unknown phone collapses into
// the same error as a wrong code so phones cannot be enumerated.
func (s *AuthServiceImpl) Activate(ctx context.Context, phone, code string) error {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidPhoneOrOTP
		}
		return s.internal("activate", phone, err)
	}

	if !s.otpSvc.Check(ctx, phone, code) {
		return domain.ErrInvalidOTP
	}

	if err := s.userRepo.UpdateStatus(ctx, user.ID, domain.StatusActive); err != nil {
		return s.internal("activate", phone, err)
	}

	log.Printf("ACCOUNT_ACTIVATED: user_id=%s phone=%s", user.ID, phone)
	return nil
}

// Login implements domain.AuthService. A successful call inserts exactly one
// session row carrying the refresh token it returns; concurrent logins each
// insert their own row.
func (s *AuthServiceImpl) Login(ctx context.Context, phone, password, ip, userAgent string) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidPhoneOrPassword
		}
		return nil, s.internal("login", phone, err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidPhoneOrPassword
	}

	if user.Status == domain.StatusInactive {
		return nil, domain.ErrAccountInactive
	}

	payload := domain.TokenPayload{ID: user.ID, Role: user.Role, Status: user.Status}

	refresh, err := s.tokenSvc.IssueRefresh(payload)
	if err != nil {
		return nil, s.internal("login", phone, err)
	}

	session := &domain.Session{
		UserID:       user.ID,
		IPAddress:    ip,
		UserAgent:    userAgent,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(s.sessionTTL).Unix(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, s.internal("login", phone, err)
	}

	access, err := s.tokenSvc.IssueAccess(payload)
	if err != nil {
		return nil, s.internal("login", phone, err)
	}

	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// SendOTP implements domain.AuthService
func (s *AuthServiceImpl) SendOTP(ctx context.Context, phone string) (string, error) {
	return s.sendCode(ctx, "send_otp", phone)
}

// ForgetPassword implements domain.AuthService
func (s *AuthServiceImpl) ForgetPassword(ctx context.Context, phone string) (string, error) {
	return s.sendCode(ctx, "forget_password", phone)
}

func (s *AuthServiceImpl) sendCode(ctx context.Context, op, phone string) (string, error) {
	if _, err := s.userRepo.FindByPhone(ctx, phone); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidPhone
		}
		return "", s.internal(op, phone, err)
	}

	code, err := s.otpSvc.Generate(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrOTPThrottle) {
			return "", err
		}
		return "", s.internal(op, phone, err)
	}

	return code, nil
}

// ResetPassword implements domain.AuthService. The returned user never
// carries the new hash into a response: the handler serializes through a
// view that strips it.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, phone, code, newPassword string) (*domain.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidPhoneOrOTP
		}
		return nil, s.internal("reset_password", phone, err)
	}

	if !s.otpSvc.Check(ctx, phone, code) {
		return nil, domain.ErrInvalidOTP
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return nil, s.internal("reset_password", phone, err)
	}

	updated, err := s.userRepo.UpdatePassword(ctx, user.ID, hash)
	if err != nil {
		return nil, s.internal("reset_password", phone, err)
	}

	log.Printf("PASSWORD_RESET: user_id=%s phone=%s", user.ID, phone)
	return updated, nil
}

// RegisterAdmin implements domain.AuthService. The ADMIN role itself cannot
// be minted through this path; only SUPERADMIN and VIEWERADMIN are
// assignable here.
func (s *AuthServiceImpl) RegisterAdmin(ctx context.Context, input domain.RegisterAdminInput) error {
	if !domain.ValidRole(input.Role) {
		return domain.ErrInvalidRole
	}
	if input.Role == domain.RoleAdmin {
		return domain.ErrRoleNotAllowed
	}

	if _, err := s.userRepo.FindByPhone(ctx, input.Phone); err == nil {
		return domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return s.internal("register_admin", input.Phone, err)
	}

	exists, err := s.regionRepo.Exists(ctx, input.RegionID)
	if err != nil {
		return s.internal("register_admin", input.Phone, err)
	}
	if !exists {
		return domain.ErrRegionNotFound
	}

	hash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return s.internal("register_admin", input.Phone, err)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	user := &domain.User{
		Phone:        input.Phone,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
		Role:         input.Role,
		Status:       status,
		RegionID:     input.RegionID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrPhoneTaken) {
			return domain.ErrPhoneTaken
		}
		return s.internal("register_admin", input.Phone, err)
	}

	log.Printf("ADMIN_REGISTERED: user_id=%s phone=%s role=%s", user.ID, input.Phone, input.Role)
	return nil
}

// RefreshToken implements domain.AuthService. The refresh token is not
// rotated: only a new access token is issued and the presented refresh token
// stays valid for its full life.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	payload, err := s.tokenSvc.Verify(refreshToken, domain.TokenRefresh)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", s.internal("refresh_token", payload.ID, err)
	}

	if user.Status != domain.StatusActive {
		return "", domain.ErrAccountInactive
	}

	return s.tokenSvc.IssueAccess(domain.TokenPayload{ID: user.ID, Role: user.Role, Status: user.Status})
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// Sessions implements domain.AuthService
func (s *AuthServiceImpl) Sessions(ctx context.Context, userID string) ([]domain.Session, error) {
	return s.sessionRepo.ListByUser(ctx, userID)
}

// internal logs the failing operation with its subject and wraps the cause;
// handlers translate anything that is not a sentinel into a generic 500 so
// storage details never reach the caller.
func (s *AuthServiceImpl) internal(op, subject string, err error) error {
	log.Printf("AUTH_FAILED: op=%s subject=%s error=%v", op, subject, err)
	return fmt.Errorf("%s failed: %w", op, err)
}
