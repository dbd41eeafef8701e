package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/marketauth/domain"
	"github.com/you/marketauth/internal/mocks"
)

func newRegionTestRouter(repo domain.RegionRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRegionHandlers(repo)

	r := gin.New()
	r.POST("/regions", h.Create)
	r.GET("/regions", h.List)
	return r
}

func TestRegionCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newRegionTestRouter(mocks.NewMockRegionRepository())

		w := doJSON(t, r, http.MethodPost, "/regions", map[string]interface{}{"name": "Tashkent"})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Tashkent", body["name"])
		assert.NotEmpty(t, body["id"])
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		r := newRegionTestRouter(mocks.NewMockRegionRepository())

		w := doJSON(t, r, http.MethodPost, "/regions", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repository failure is a 500", func(t *testing.T) {
		repo := mocks.NewMockRegionRepository()
		repo.CreateFunc = func(ctx context.Context, region *domain.Region) error {
			return errors.New("database down")
		}
		r := newRegionTestRouter(repo)

		w := doJSON(t, r, http.MethodPost, "/regions", map[string]interface{}{"name": "Tashkent"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "database down")
	})
}

func TestRegionList(t *testing.T) {
	repo := mocks.NewMockRegionRepository()
	repo.ListFunc = func(ctx context.Context) ([]domain.Region, error) {
		return []domain.Region{
			{ID: "r1", Name: "Bukhara"},
			{ID: "r2", Name: "Tashkent"},
		}, nil
	}
	r := newRegionTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/regions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var views []RegionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Bukhara", views[0].Name)
}
