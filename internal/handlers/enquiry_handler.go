package handlers

import (
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
// ENQUIRY HANDLER
// ======================================================

type EnquiryHandler struct {
	repo *repository.EnquiryMongoRepository
}

func NewEnquiryHandler(repo *repository.EnquiryMongoRepository) *EnquiryHandler {
	return &EnquiryHandler{repo: repo}
}

type createEnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// ---- POST /api/enquiry ----

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and message are required")
		return
	}

	e := &models.Enquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := h.repo.Insert(c.Request.Context(), e); err != nil {
		log.Error().Err(err).Msg("creating enquiry failed")
		httperr.Internal(c, "create_failed", "Error submitting enquiry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// ---- GET /api/enquiry ----

func (h *EnquiryHandler) List(c *gin.Context) {
	enquiries, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing enquiries failed")
		httperr.Internal(c, "list_failed", "Error fetching enquiries")
		return
	}
	httpresp.OK(c, enquiries)
}
