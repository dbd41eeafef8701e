package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/marketauth/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DBUser{}, &DBRegion{}, &DBSession{}))
	return db
}

func newTestUser(phone string) *domain.User {
	return &domain.User{
		Phone:        phone,
		PasswordHash: "hashed",
		FirstName:    "Ali",
		Role:         domain.RoleIndividual,
		Status:       domain.StatusInactive,
	}
}

func TestUserRepository_CreateAndFindByPhone(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("+998901112233")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	found, err := repo.FindByPhone(ctx, "+998901112233")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hashed", found.PasswordHash)
	assert.Equal(t, domain.StatusInactive, found.Status)
}

func TestUserRepository_FindByPhoneNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByPhone(context.Background(), "+998900000000")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestUserRepository_DuplicatePhone(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("+998901112233")))

	err := repo.Create(ctx, newTestUser("+998901112233"))
	assert.True(t, errors.Is(err, domain.ErrPhoneTaken))
}

func TestUserRepository_FindByIDPreloadsRegion(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	regions := NewRegionRepository(db)
	ctx := context.Background()

	region := &domain.Region{Name: "Tashkent"}
	require.NoError(t, regions.Create(ctx, region))

	user := newTestUser("+998901112233")
	user.RegionID = region.ID
	require.NoError(t, users.Create(ctx, user))

	found, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Region)
	assert.Equal(t, "Tashkent", found.Region.Name)
}

func TestUserRepository_UpdateStatus(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("+998901112233")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdateStatus(ctx, user.ID, domain.StatusActive))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, found.Status)
}

func TestUserRepository_UpdateStatusUnknownID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusActive)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("+998901112233")
	require.NoError(t, repo.Create(ctx, user))

	updated, err := repo.UpdatePassword(ctx, user.ID, "rehashed")
	require.NoError(t, err)
	assert.Equal(t, "rehashed", updated.PasswordHash)
	assert.Equal(t, user.Phone, updated.Phone)

	_, err = repo.UpdatePassword(ctx, "missing", "rehashed")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestUserRepository_LegalEntityFieldsRoundTrip(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("+998901112233")
	user.Role = domain.RoleLegalEntity
	user.TIN = "123456789"
	user.BankCode = "00014"
	user.BankAccount = "20208000000000000001"
	user.BankName = "NBU"
	user.EconomicActivityCode = "62010"
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456789", found.TIN)
	assert.Equal(t, "00014", found.BankCode)
	assert.Equal(t, "20208000000000000001", found.BankAccount)
	assert.Equal(t, "NBU", found.BankName)
	assert.Equal(t, "62010", found.EconomicActivityCode)
}
