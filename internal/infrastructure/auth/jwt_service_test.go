package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/marketauth/domain"
)

func newTestJWTService() domain.TokenService {
	return NewJWTService("access-secret", "refresh-secret", "marketauth", time.Hour, 30*24*time.Hour)
}

func testPayload() domain.TokenPayload {
	return domain.TokenPayload{
		ID:     "user-1",
		Role:   domain.RoleIndividual,
		Status: domain.StatusActive,
	}
}

func TestJWTService_AccessRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.IssueAccess(testPayload())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := svc.Verify(token, domain.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.ID)
	assert.Equal(t, domain.RoleIndividual, payload.Role)
	assert.Equal(t, domain.StatusActive, payload.Status)
}

func TestJWTService_RefreshRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.IssueRefresh(testPayload())
	require.NoError(t, err)

	payload, err := svc.Verify(token, domain.TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.ID)
}

func TestJWTService_KindsAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService()

	access, err := svc.IssueAccess(testPayload())
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh(testPayload())
	require.NoError(t, err)

	// An access token must not pass refresh verification, and vice versa.
	_, err = svc.Verify(access, domain.TokenRefresh)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))

	_, err = svc.Verify(refresh, domain.TokenAccess)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestJWTService_WrongSecretIsRejected(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService("other-access", "other-refresh", "marketauth", time.Hour, time.Hour)

	token, err := svc.IssueAccess(testPayload())
	require.NoError(t, err)

	_, err = other.Verify(token, domain.TokenAccess)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestJWTService_ExpiredTokenIsRejected(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", "marketauth", -time.Minute, -time.Minute)

	token, err := svc.IssueAccess(testPayload())
	require.NoError(t, err)

	_, err = svc.Verify(token, domain.TokenAccess)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestJWTService_MalformedTokenIsRejected(t *testing.T) {
	svc := newTestJWTService()

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0..."} {
		_, err := svc.Verify(token, domain.TokenAccess)
		assert.True(t, errors.Is(err, domain.ErrInvalidToken), "token %q", token)
	}
}

func TestJWTService_TokensIssuedTogetherDiffer(t *testing.T) {
	svc := newTestJWTService()

	first, err := svc.IssueAccess(testPayload())
	require.NoError(t, err)
	second, err := svc.IssueAccess(testPayload())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
