package mocks

import (
	"context"

	"github.com/you/marketauth/domain"
)

// MockRegionRepository implements domain.RegionRepository for testing
type MockRegionRepository struct {
	CreateFunc func(ctx context.Context, region *domain.Region) error
	ListFunc   func(ctx context.Context) ([]domain.Region, error)
	ExistsFunc func(ctx context.Context, id string) (bool, error)
}

// NewMockRegionRepository creates a new MockRegionRepository with default behaviors
func NewMockRegionRepository() *MockRegionRepository {
	return &MockRegionRepository{}
}

// Create creates a new region
func (m *MockRegionRepository) Create(ctx context.Context, region *domain.Region) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, region)
	}
	// Default behavior: success
	region.ID = "region-1"
	return nil
}

// List lists all regions
func (m *MockRegionRepository) List(ctx context.Context) ([]domain.Region, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// Exists reports whether a region exists
func (m *MockRegionRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	// Default behavior: exists
	return true, nil
}
