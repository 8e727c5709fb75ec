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
// TESTIMONIAL HANDLER
// ======================================================

// TestimonialStore is the slice of the mongo repository the handler
// needs; tests substitute an in-memory one.
type TestimonialStore interface {
	ListApproved(ctx context.Context) ([]models.Testimonial, error)
	ListAll(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) error
	Update(ctx context.Context, id string, fields map[string]any) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type TestimonialHandler struct {
	repo TestimonialStore
}

func NewTestimonialHandler(repo TestimonialStore) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

type createTestimonialRequest struct {
	ClientName   string `json:"clientName" binding:"required"`
	Rating       int    `json:"rating" binding:"required,gte=1,lte=5"`
	Review       string `json:"review" binding:"required"`
	Project      string `json:"project"`
	ProjectImage string `json:"projectImage"`
}

type updateTestimonialRequest struct {
	ClientName   *string `json:"clientName"`
	Rating       *int    `json:"rating"`
	Review       *string `json:"review"`
	Project      *string `json:"project"`
	ProjectImage *string `json:"projectImage"`
	Approved     *bool   `json:"approved"`
}

// ---- POST /api/testimonials ----

// Create always stores the review unapproved; only moderation through
// the admin console makes it public.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req createTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"Name, review and a rating between 1 and 5 are required")
		return
	}

	t := &models.Testimonial{
		ClientName:   req.ClientName,
		Rating:       req.Rating,
		Review:       req.Review,
		Project:      req.Project,
		ProjectImage: req.ProjectImage,
		Approved:     false,
		CreatedAt:    time.Now(),
	}

	if err := h.repo.Create(c.Request.Context(), t); err != nil {
		log.Error().Err(err).Msg("creating testimonial failed")
		httperr.Internal(c, "create_failed", "Error submitting testimonial")
		return
	}

	httpresp.Created(c, t)
}

// ---- GET /api/testimonials ----

func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	testimonials, err := h.repo.ListApproved(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing testimonials failed")
		httperr.Internal(c, "list_failed", "Error fetching testimonials")
		return
	}
	httpresp.OK(c, testimonials)
}

// ---- GET /api/testimonials/all ----

func (h *TestimonialHandler) ListAll(c *gin.Context) {
	testimonials, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing all testimonials failed")
		httperr.Internal(c, "list_failed", "Error fetching testimonials")
		return
	}
	httpresp.OK(c, testimonials)
}

// ---- PATCH /api/testimonials/:id ----

func (h *TestimonialHandler) Update(c *gin.Context) {
	var req updateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	fields := map[string]any{}
	if req.ClientName != nil {
		fields["clientName"] = *req.ClientName
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5")
			return
		}
		fields["rating"] = *req.Rating
	}
	if req.Review != nil {
		fields["review"] = *req.Review
	}
	if req.Project != nil {
		fields["project"] = *req.Project
	}
	if req.ProjectImage != nil {
		fields["projectImage"] = *req.ProjectImage
	}
	if req.Approved != nil {
		fields["approved"] = *req.Approved
	}

	if len(fields) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update")
		return
	}

	t, err := h.repo.Update(c.Request.Context(), c.Param("id"), fields)
	if errors.Is(err, repository.ErrTestimonialNotFound) {
		httperr.NotFound(c, "testimonial_not_found", "Testimonial not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("updating testimonial failed")
		httperr.Internal(c, "update_failed", "Error updating testimonial")
		return
	}

	httpresp.OK(c, t)
}

// ---- DELETE /api/testimonials/:id ----

func (h *TestimonialHandler) Delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrTestimonialNotFound) {
		httperr.NotFound(c, "testimonial_not_found", "Testimonial not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("deleting testimonial failed")
		httperr.Internal(c, "delete_failed", "Error deleting testimonial")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
