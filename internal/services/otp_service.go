package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/marketauth/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes are a pure function of
// (secret, phone, current time step): nothing is stored for verification, so
// send and check are independent calls correlated only by phone, secret and
// time. The only state is a Redis resend-throttle key, which gates dispatch
// and never influences verification.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          OTPConfig
	now             func() time.Time
}

type OTPConfig struct {
	// Secret is the server OTP key. The HMAC key for a subject is the
	// byte-for-byte concatenation Secret+phone, so callers must pass the
	// exact phone string used at generation time.
	Secret       string
	Step         time.Duration
	Digits       int
	Skew         int
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service.
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
		now:             time.Now,
	}
}

// Generate implements domain.OTPService. It computes the current code for
// the phone, dispatches it over SMS and returns it. Two calls within the
// same time step yield the same code.
func (s *OTPServiceImpl) Generate(ctx context.Context, phone string) (string, error) {
	if s.redisClient != nil && s.config.ResendWindow > 0 {
		resendKey := "otp:res:" + phone
		ok, err := s.redisClient.SetNX(ctx, resendKey, 1, s.config.ResendWindow).Result()
		if err != nil {
			return "", fmt.Errorf("failed to check resend throttle: %w", err)
		}
		if !ok {
			return "", domain.ErrOTPThrottle
		}
	}

	code := s.codeAt(phone, s.now().Unix()/int64(s.config.Step.Seconds()))

	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.Step.Minutes()))
	if err := s.notificationSvc.SendSMS(phone, message); err != nil {
		return "", fmt.Errorf("failed to send OTP SMS: %w", err)
	}

	return code, nil
}

// Check implements domain.OTPService. A code is accepted iff it matches the
// code computable from the same secret+phone within the current time step or
// one within the configured skew.
func (s *OTPServiceImpl) Check(ctx context.Context, phone, code string) bool {
	if len(code) != s.config.Digits {
		return false
	}

	baseCounter := s.now().Unix() / int64(s.config.Step.Seconds())
	for step := -s.config.Skew; step <= s.config.Skew; step++ {
		counter := baseCounter + int64(step)
		if counter < 0 {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(s.codeAt(phone, counter)), []byte(code)) == 1 {
			return true
		}
	}

	return false
}

// codeAt derives the HOTP code for one counter value (RFC 4226 dynamic
// truncation over HMAC-SHA1).
func (s *OTPServiceImpl) codeAt(phone string, counter int64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, []byte(s.config.Secret+phone))
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	bin := (int(sum[offset])&0x7f)<<24 |
		(int(sum[offset+1])&0xff)<<16 |
		(int(sum[offset+2])&0xff)<<8 |
		(int(sum[offset+3]) & 0xff)

	mod := 1
	for i := 0; i < s.config.Digits; i++ {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", s.config.Digits, bin%mod)
}
