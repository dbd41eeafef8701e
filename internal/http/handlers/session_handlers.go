package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/marketauth/domain"
)

// SessionHandlers exposes the caller's login history for device auditing.
type SessionHandlers struct {
	authSvc domain.AuthService
}

// NewSessionHandlers creates new session handlers
func NewSessionHandlers(authSvc domain.AuthService) *SessionHandlers {
	return &SessionHandlers{authSvc: authSvc}
}

// SessionView is the outward session representation. The stored refresh
// token is never serialized.
type SessionView struct {
	ID        string    `json:"id"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt int64     `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /sessions (requires authentication), newest first.
func (h *SessionHandlers) List(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	sessions, err := h.authSvc.Sessions(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	views := make([]SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, SessionView{
			ID:        session.ID,
			IPAddress: session.IPAddress,
			UserAgent: session.UserAgent,
			ExpiresAt: session.ExpiresAt,
			CreatedAt: session.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, views)
}
