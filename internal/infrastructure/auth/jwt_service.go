package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you/marketauth/domain"
)

// JWTServiceImpl implements domain.TokenService. Access and refresh tokens
// are signed with distinct secrets so compromise of one cannot forge the
// other.
type JWTServiceImpl struct {
	accessKey  []byte
	refreshKey []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService creates a new JWT service.
func NewJWTService(accessKey, refreshKey, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// generateJTI creates a unique JWT ID so two tokens issued within the same
// second still differ.
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// IssueAccess implements domain.TokenService
func (j *JWTServiceImpl) IssueAccess(payload domain.TokenPayload) (string, error) {
	return j.sign(payload, j.accessKey, j.accessTTL)
}

// IssueRefresh implements domain.TokenService
func (j *JWTServiceImpl) IssueRefresh(payload domain.TokenPayload) (string, error) {
	return j.sign(payload, j.refreshKey, j.refreshTTL)
}

func (j *JWTServiceImpl) sign(payload domain.TokenPayload, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":     payload.ID,
		"role":   payload.Role,
		"status": payload.Status,
		"iss":    j.issuer,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
		"jti":    j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Verify implements domain.TokenService. Every failure mode, malformed
// token, wrong signature or expiry, surfaces as the same ErrInvalidToken so
// callers get no validity oracle.
func (j *JWTServiceImpl) Verify(tokenString, kind string) (*domain.TokenPayload, error) {
	key := j.accessKey
	if kind == domain.TokenRefresh {
		key = j.refreshKey
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	status, ok := claims["status"].(string)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenPayload{ID: id, Role: role, Status: status}, nil
}
