package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merakistudio/interior-api/internal/infra/repository"
	"github.com/merakistudio/interior-api/internal/models"
)

type memProjectStore struct {
	nextID int
	items  map[string]*models.Project
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{items: map[string]*models.Project{}}
}

func (s *memProjectStore) List(context.Context) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range s.items {
		out = append(out, *p)
	}
	return out, nil
}

func (s *memProjectStore) ListFeatured(context.Context) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range s.items {
		if p.Featured {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *memProjectStore) Get(_ context.Context, id string) (*models.Project, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return p, nil
}

func (s *memProjectStore) Create(_ context.Context, p *models.Project) error {
	s.nextID++
	s.items[strconv.Itoa(s.nextID)] = p
	return nil
}

func (s *memProjectStore) Update(_ context.Context, id string, p models.Project) (*models.Project, error) {
	cur, ok := s.items[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	p.ID = cur.ID
	p.CreatedAt = cur.CreatedAt
	s.items[id] = &p
	return &p, nil
}

func (s *memProjectStore) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(s.items, id)
	return nil
}

var _ ProjectStore = (*memProjectStore)(nil)

func projectRouter(store ProjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewProjectHandler(store)

	r := gin.New()
	r.GET("/api/projects", h.List)
	r.GET("/api/projects/featured", h.ListFeatured)
	r.GET("/api/projects/:id", h.Get)
	r.POST("/api/projects", h.Create)
	r.PUT("/api/projects/:id", h.Update)
	r.DELETE("/api/projects/:id", h.Delete)
	return r
}

func TestProjectCreateAndFeaturedFilter(t *testing.T) {
	store := newMemProjectStore()
	r := projectRouter(store)

	w := postJSON(t, r, "/api/projects", map[string]any{
		"title":    "Sea-facing Apartment",
		"roomType": "Living Room",
		"featured": true,
		"images":   []string{"/uploads/1.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/projects", map[string]any{
		"title":    "Compact Studio",
		"roomType": "Bedroom",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/featured", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var featured []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	require.Len(t, featured, 1)
	assert.Equal(t, "Sea-facing Apartment", featured[0].Title)
}

func TestProjectCreate_RequiresTitleAndRoomType(t *testing.T) {
	r := projectRouter(newMemProjectStore())

	w := postJSON(t, r, "/api/projects", map[string]any{"title": "No room type"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/projects", map[string]any{"roomType": "Kitchen"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectUpdate_RefreshesUpdatedAt(t *testing.T) {
	store := newMemProjectStore()
	r := projectRouter(store)

	w := postJSON(t, r, "/api/projects", map[string]any{
		"title":    "Sea-facing Apartment",
		"roomType": "Living Room",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	before := store.items["1"].UpdatedAt
	time.Sleep(5 * time.Millisecond)

	req := httptest.NewRequest(http.MethodPut, "/api/projects/1",
		jsonBody(t, map[string]any{
			"title":    "Sea-facing Apartment",
			"roomType": "Living Room",
			"featured": true,
		}))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.UpdatedAt.After(before))
	assert.True(t, updated.Featured)
}

func TestProjectGetDelete_NotFound(t *testing.T) {
	r := projectRouter(newMemProjectStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/projects/404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
