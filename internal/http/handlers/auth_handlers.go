package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/marketauth/domain"
)

// AuthHandlers handles authentication HTTP requests.
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a self-registration request. The legal-entity
// banking fields are validated as required only when role is LEGAL_ENTITY.
type RegisterRequest struct {
	FirstName            string `json:"firstName" binding:"required"`
	LastName             string `json:"lastName" binding:"required"`
	MiddleName           string `json:"middleName,omitempty"`
	Phone                string `json:"phone" binding:"required,e164"`
	Password             string `json:"password" binding:"required,min=6,max=20"`
	RegionID             string `json:"regionId" binding:"required"`
	Role                 string `json:"role" binding:"required,oneof=INDIVIDUAL LEGAL_ENTITY"`
	TIN                  string `json:"tin,omitempty" binding:"omitempty,len=9,numeric"`
	BankCode             string `json:"bankCode,omitempty" binding:"omitempty,len=5,numeric"`
	BankAccount          string `json:"bankAccountNumber,omitempty" binding:"omitempty,len=20,numeric"`
	BankName             string `json:"bankName,omitempty"`
	EconomicActivityCode string `json:"economicActivityCode,omitempty"`
}

// ActivateRequest represents an account activation request
type ActivateRequest struct {
	Phone string `json:"phone" binding:"required,e164"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,e164"`
	Password string `json:"password" binding:"required,min=6,max=20"`
}

// PhoneRequest carries the single phone field of send-otp and
// forget-password requests.
type PhoneRequest struct {
	Phone string `json:"phone" binding:"required,e164"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Phone       string `json:"phone" binding:"required,e164"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=20"`
}

// RegisterAdminRequest represents a privileged registration request
type RegisterAdminRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	MiddleName string `json:"middleName,omitempty"`
	Phone      string `json:"phone" binding:"required,e164"`
	Password   string `json:"password" binding:"required,min=6,max=20"`
	RegionID   string `json:"regionId" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Status     string `json:"status,omitempty" binding:"omitempty,oneof=INACTIVE ACTIVE"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserView is the outward user representation. It carries every profile
// field except the password hash.
type UserView struct {
	ID                   string      `json:"id"`
	Phone                string      `json:"phone"`
	FirstName            string      `json:"firstName"`
	LastName             string      `json:"lastName"`
	MiddleName           string      `json:"middleName,omitempty"`
	Role                 string      `json:"role"`
	Status               string      `json:"status"`
	RegionID             string      `json:"regionId"`
	Region               *RegionView `json:"region,omitempty"`
	TIN                  string      `json:"tin,omitempty"`
	BankCode             string      `json:"bankCode,omitempty"`
	BankAccount          string      `json:"bankAccountNumber,omitempty"`
	BankName             string      `json:"bankName,omitempty"`
	EconomicActivityCode string      `json:"economicActivityCode,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// RegionView is the outward region representation.
type RegionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toUserView(user *domain.User) UserView {
	view := UserView{
		ID:                   user.ID,
		Phone:                user.Phone,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		MiddleName:           user.MiddleName,
		Role:                 user.Role,
		Status:               user.Status,
		RegionID:             user.RegionID,
		TIN:                  user.TIN,
		BankCode:             user.BankCode,
		BankAccount:          user.BankAccount,
		BankName:             user.BankName,
		EconomicActivityCode: user.EconomicActivityCode,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
	if user.Region != nil {
		view.Region = &RegionView{ID: user.Region.ID, Name: user.Region.Name}
	}
	return view
}

// Register handles POST /auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role == domain.RoleLegalEntity && (req.TIN == "" || req.BankCode == "" || req.BankAccount == "" || req.BankName == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "legal entities must provide TIN, bank code, bank account number and bank name"})
		return
	}

	otp, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Phone:                req.Phone,
		Password:             req.Password,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		MiddleName:           req.MiddleName,
		RegionID:             req.RegionID,
		Role:                 req.Role,
		TIN:                  req.TIN,
		BankCode:             req.BankCode,
		BankAccount:          req.BankAccount,
		BankName:             req.BankName,
		EconomicActivityCode: req.EconomicActivityCode,
	})
	if err != nil {
		writeAuthError(c, err, "Failed to register")
		return
	}

	// Returning the OTP in the body is a development affordance; production
	// deployments rely on the SMS dispatch that already happened.
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful, please activate your account",
		"otp":     otp,
	})
}

// Activate handles POST /auth/activate
func (h *AuthHandlers) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.Activate(c.Request.Context(), req.Phone, req.OTP); err != nil {
		writeAuthError(c, err, "Failed to activate account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account successfully activated"})
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authSvc.Login(c.Request.Context(), req.Phone, req.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		writeAuthError(c, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": pair.Access, "refresh": pair.Refresh})
}

// SendOTP handles POST /auth/send-otp
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	otp, err := h.authSvc.SendOTP(c.Request.Context(), req.Phone)
	if err != nil {
		writeAuthError(c, err, "Failed to generate OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully", "otp": otp})
}

// ForgetPassword handles POST /auth/forget-password
func (h *AuthHandlers) ForgetPassword(c *gin.Context) {
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	otp, err := h.authSvc.ForgetPassword(c.Request.Context(), req.Phone)
	if err != nil {
		writeAuthError(c, err, "Failed to generate OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent for password reset", "otp": otp})
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.ResetPassword(c.Request.Context(), req.Phone, req.OTP, req.NewPassword)
	if err != nil {
		writeAuthError(c, err, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, toUserView(user))
}

// RegisterAdmin handles POST /auth/register-admin. The router guards it with
// the JWT and RBAC middleware; only ADMIN and SUPERADMIN callers reach here.
func (h *AuthHandlers) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.RegisterAdmin(c.Request.Context(), domain.RegisterAdminInput{
		Phone:      req.Phone,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		RegionID:   req.RegionID,
		Role:       req.Role,
		Status:     req.Status,
	})
	if err != nil {
		writeAuthError(c, err, "Failed to register admin")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully"})
}

// RefreshToken handles POST /auth/refresh-token
func (h *AuthHandlers) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeAuthError(c, err, "Failed to refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// Profile handles GET /auth/profile (requires authentication)
func (h *AuthHandlers) Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrUserNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, toUserView(user))
}

// writeAuthError maps classified auth errors onto HTTP statuses. Unknown
// errors collapse into a generic 500; phone-lookup failures never surface as
// 404, so phones cannot be enumerated.
func writeAuthError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrPhoneTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRegionNotFound),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrRoleNotAllowed),
		errors.Is(err, domain.ErrInvalidPhoneOrPassword),
		errors.Is(err, domain.ErrInvalidPhoneOrOTP),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidOTP),
		errors.Is(err, domain.ErrOTPThrottle),
		errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
