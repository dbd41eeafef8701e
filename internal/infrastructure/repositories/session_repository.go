package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/marketauth/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
// Sessions are an insert-only audit trail: no update or delete operations
// exist, and expiry is advisory.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// DBSession is the database model for Session.
type DBSession struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"index;size:36;not null"`
	IPAddress    string `gorm:"size:64"`
	UserAgent    string `gorm:"size:512"`
	RefreshToken string `gorm:"size:1024;not null"`
	ExpiresAt    int64  `gorm:"not null"`
	CreatedAt    time.Time
}

func (DBSession) TableName() string {
	return "sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	dbSession := &DBSession{
		ID:           session.ID,
		UserID:       session.UserID,
		IPAddress:    session.IPAddress,
		UserAgent:    session.UserAgent,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
	}
	if dbSession.ID == "" {
		dbSession.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return err
	}
	session.ID = dbSession.ID
	session.CreatedAt = dbSession.CreatedAt
	return nil
}

// ListByUser implements domain.SessionRepository, newest first.
func (r *SessionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	var dbSessions []DBSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&dbSessions).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(dbSessions))
	for _, dbSession := range dbSessions {
		sessions = append(sessions, domain.Session{
			ID:           dbSession.ID,
			UserID:       dbSession.UserID,
			IPAddress:    dbSession.IPAddress,
			UserAgent:    dbSession.UserAgent,
			RefreshToken: dbSession.RefreshToken,
			ExpiresAt:    dbSession.ExpiresAt,
			CreatedAt:    dbSession.CreatedAt,
		})
	}
	return sessions, nil
}
