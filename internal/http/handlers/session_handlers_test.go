package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/marketauth/domain"
	"github.com/you/marketauth/internal/mocks"
)

func newSessionTestRouter(svc domain.AuthService, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSessionHandlers(svc)

	r := gin.New()
	r.GET("/sessions", func(c *gin.Context) {
		if authenticated {
			c.Set("user_id", "user-1")
		}
		h.List(c)
	})
	return r
}

func TestSessionList_HidesRefreshTokens(t *testing.T) {
	svc := mocks.NewMockAuthService()
	svc.SessionsFunc = func(ctx context.Context, userID string) ([]domain.Session, error) {
		return []domain.Session{
			{
				ID:           "s-new",
				UserID:       userID,
				IPAddress:    "10.0.0.2",
				UserAgent:    "device-b",
				RefreshToken: "secret-refresh-token",
				ExpiresAt:    time.Now().Add(time.Hour).Unix(),
				CreatedAt:    time.Now(),
			},
			{
				ID:           "s-old",
				UserID:       userID,
				IPAddress:    "10.0.0.1",
				UserAgent:    "device-a",
				RefreshToken: "older-refresh-token",
				ExpiresAt:    time.Now().Add(time.Hour).Unix(),
				CreatedAt:    time.Now().Add(-time.Minute),
			},
		}, nil
	}
	r := newSessionTestRouter(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-refresh-token")
	assert.NotContains(t, w.Body.String(), "older-refresh-token")

	var views []SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "s-new", views[0].ID)
	assert.Equal(t, "device-b", views[0].UserAgent)
}

func TestSessionList_EmptyIsAnEmptyArray(t *testing.T) {
	r := newSessionTestRouter(mocks.NewMockAuthService(), true)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSessionList_Unauthenticated(t *testing.T) {
	r := newSessionTestRouter(mocks.NewMockAuthService(), false)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
