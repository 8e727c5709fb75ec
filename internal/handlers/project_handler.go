package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/merakistudio/interior-api/internal/httperr"
	"github.com/merakistudio/interior-api/internal/httpresp"
	"github.com/merakistudio/interior-api/internal/infra/repository"
	"github.com/merakistudio/interior-api/internal/models"
)

// ======================================================
// PROJECT HANDLER
// ======================================================

// ProjectStore is the slice of the mongo repository the handler needs;
// tests substitute an in-memory one.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, id string, p models.Project) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectHandler struct {
	repo ProjectStore
}

func NewProjectHandler(repo ProjectStore) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	RoomType    string   `json:"roomType" binding:"required"`
	Featured    bool     `json:"featured"`
	Images      []string `json:"images"`
	Videos      []string `json:"videos"`
}

// ---- GET /api/projects ----

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing projects failed")
		httperr.Internal(c, "list_failed", "Error fetching projects")
		return
	}
	httpresp.OK(c, projects)
}

// ---- GET /api/projects/featured ----

func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.repo.ListFeatured(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing featured projects failed")
		httperr.Internal(c, "list_failed", "Error fetching projects")
		return
	}
	httpresp.OK(c, projects)
}

// ---- GET /api/projects/:id ----

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProjectNotFound) {
		httperr.NotFound(c, "project_not_found", "Project not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("fetching project failed")
		httperr.Internal(c, "get_failed", "Error fetching project")
		return
	}
	httpresp.OK(c, p)
}

// ---- POST /api/projects ----

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Title and room type are required")
		return
	}

	now := time.Now()
	p := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		RoomType:    req.RoomType,
		Featured:    req.Featured,
		Images:      req.Images,
		Videos:      req.Videos,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		log.Error().Err(err).Msg("creating project failed")
		httperr.Internal(c, "create_failed", "Error creating project")
		return
	}

	httpresp.Created(c, p)
}

// ---- PUT /api/projects/:id ----

func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Title and room type are required")
		return
	}

	p := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		RoomType:    req.RoomType,
		Featured:    req.Featured,
		Images:      req.Images,
		Videos:      req.Videos,
		UpdatedAt:   time.Now(),
	}

	updated, err := h.repo.Update(c.Request.Context(), c.Param("id"), p)
	if errors.Is(err, repository.ErrProjectNotFound) {
		httperr.NotFound(c, "project_not_found", "Project not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("updating project failed")
		httperr.Internal(c, "update_failed", "Error updating project")
		return
	}

	httpresp.OK(c, updated)
}

// ---- DELETE /api/projects/:id ----

func (h *ProjectHandler) Delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProjectNotFound) {
		httperr.NotFound(c, "project_not_found", "Project not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("deleting project failed")
		httperr.Internal(c, "delete_failed", "Error deleting project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
