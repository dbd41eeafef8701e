package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/marketauth/internal/infrastructure/repositories"
)

// Open creates a new database connection.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the user, region and session tables plus the Casbin
// policy table. The unique index on users.phone is what actually guards
// concurrent registration; the existence pre-check alone is racy.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}, &repositories.DBRegion{}, &repositories.DBSession{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
