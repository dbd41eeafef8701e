package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/marketauth/domain"
)

// RegionHandlers manages the region lookup table that registration
// validates against.
type RegionHandlers struct {
	regionRepo domain.RegionRepository
}

// NewRegionHandlers creates new region handlers
func NewRegionHandlers(regionRepo domain.RegionRepository) *RegionHandlers {
	return &RegionHandlers{regionRepo: regionRepo}
}

// CreateRegionRequest represents a region creation request
type CreateRegionRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create handles POST /regions (admin only).
func (h *RegionHandlers) Create(c *gin.Context) {
	var req CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region := &domain.Region{Name: req.Name}
	if err := h.regionRepo.Create(c.Request.Context(), region); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create region"})
		return
	}

	c.JSON(http.StatusCreated, RegionView{ID: region.ID, Name: region.Name})
}

// List handles GET /regions.
func (h *RegionHandlers) List(c *gin.Context) {
	regions, err := h.regionRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list regions"})
		return
	}

	views := make([]RegionView, 0, len(regions))
	for _, region := range regions {
		views = append(views, RegionView{ID: region.ID, Name: region.Name})
	}

	c.JSON(http.StatusOK, views)
}
