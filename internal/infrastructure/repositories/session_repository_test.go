package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/marketauth/domain"
)

func TestSessionRepository_CreateAssignsID(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	session := &domain.Session{
		UserID:       "user-1",
		IPAddress:    "10.0.0.1",
		UserAgent:    "device-a",
		RefreshToken: "refresh-a",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestSessionRepository_ListByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	// Insert with explicit timestamps so the ordering is deterministic.
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	rows := []DBSession{
		{ID: "s-old", UserID: "user-1", RefreshToken: "r1", ExpiresAt: base.Add(time.Hour).Unix(), CreatedAt: base},
		{ID: "s-mid", UserID: "user-1", RefreshToken: "r2", ExpiresAt: base.Add(time.Hour).Unix(), CreatedAt: base.Add(time.Minute)},
		{ID: "s-new", UserID: "user-1", RefreshToken: "r3", ExpiresAt: base.Add(time.Hour).Unix(), CreatedAt: base.Add(2 * time.Minute)},
		{ID: "s-other", UserID: "user-2", RefreshToken: "r4", ExpiresAt: base.Add(time.Hour).Unix(), CreatedAt: base},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	sessions, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "s-new", sessions[0].ID)
	assert.Equal(t, "s-mid", sessions[1].ID)
	assert.Equal(t, "s-old", sessions[2].ID)
}

func TestSessionRepository_ListByUserEmpty(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	sessions, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionRepository_RepeatedLoginsAccumulate(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		session := &domain.Session{
			UserID:       "user-1",
			RefreshToken: "refresh",
			ExpiresAt:    time.Now().Add(time.Hour).Unix(),
		}
		require.NoError(t, repo.Create(ctx, session))
	}

	sessions, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
}
