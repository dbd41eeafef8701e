package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/marketauth/domain"
)

// RegionRepositoryImpl implements domain.RegionRepository using GORM
type RegionRepositoryImpl struct {
	db *gorm.DB
}

// DBRegion is the database model for Region.
type DBRegion struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"uniqueIndex;size:128;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBRegion) TableName() string {
	return "regions"
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *gorm.DB) domain.RegionRepository {
	return &RegionRepositoryImpl{db: db}
}

// Create implements domain.RegionRepository
func (r *RegionRepositoryImpl) Create(ctx context.Context, region *domain.Region) error {
	dbRegion := &DBRegion{ID: region.ID, Name: region.Name}
	if dbRegion.ID == "" {
		dbRegion.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbRegion).Error; err != nil {
		return err
	}
	region.ID = dbRegion.ID
	return nil
}

// List implements domain.RegionRepository
func (r *RegionRepositoryImpl) List(ctx context.Context) ([]domain.Region, error) {
	var dbRegions []DBRegion
	if err := r.db.WithContext(ctx).Order("name asc").Find(&dbRegions).Error; err != nil {
		return nil, err
	}

	regions := make([]domain.Region, 0, len(dbRegions))
	for _, dbRegion := range dbRegions {
		regions = append(regions, domain.Region{ID: dbRegion.ID, Name: dbRegion.Name})
	}
	return regions, nil
}

// Exists implements domain.RegionRepository
func (r *RegionRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBRegion{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
