package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/marketauth/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser is the database model for User.
type DBUser struct {
	ID                   string `gorm:"primaryKey;size:36"`
	Phone                string `gorm:"uniqueIndex;size:32;not null"`
	PasswordHash         string `gorm:"column:password;not null"`
	FirstName            string `gorm:"size:128"`
	LastName             string `gorm:"size:128"`
	MiddleName           string `gorm:"size:128"`
	Role                 string `gorm:"index;size:32"`
	Status               string `gorm:"index;size:16"`
	RegionID             string `gorm:"index;size:36"`
	Region               *DBRegion
	TIN                  string `gorm:"size:9"`
	BankCode             string `gorm:"size:5"`
	BankAccount          string `gorm:"size:20"`
	BankName             string `gorm:"size:128"`
	EconomicActivityCode string `gorm:"size:16"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A duplicate phone surfaces as
// ErrPhoneTaken whether it is caught by the caller's pre-check or by the
// unique index under a concurrent register.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if dbUser.ID == "" {
		dbUser.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPhoneTaken
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository. The region is preloaded for
// the profile view.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Preload("Region").Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateStatus implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements domain.UserRepository and returns the updated
// row so reset flows can hand back the fresh user view.
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) (*domain.User, error) {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("password", passwordHash)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                   user.ID,
		Phone:                user.Phone,
		PasswordHash:         user.PasswordHash,
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
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	user := &domain.User{
		ID:                   dbUser.ID,
		Phone:                dbUser.Phone,
		PasswordHash:         dbUser.PasswordHash,
		FirstName:            dbUser.FirstName,
		LastName:             dbUser.LastName,
		MiddleName:           dbUser.MiddleName,
		Role:                 dbUser.Role,
		Status:               dbUser.Status,
		RegionID:             dbUser.RegionID,
		TIN:                  dbUser.TIN,
		BankCode:             dbUser.BankCode,
		BankAccount:          dbUser.BankAccount,
		BankName:             dbUser.BankName,
		EconomicActivityCode: dbUser.EconomicActivityCode,
		CreatedAt:            dbUser.CreatedAt,
		UpdatedAt:            dbUser.UpdatedAt,
	}
	if dbUser.Region != nil {
		user.Region = &domain.Region{ID: dbUser.Region.ID, Name: dbUser.Region.Name}
	}
	return user
}
