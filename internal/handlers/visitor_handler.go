package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/merakistudio/interior-api/internal/analytics"
	"github.com/merakistudio/interior-api/internal/cache"
	"github.com/merakistudio/interior-api/internal/httperr"
	"github.com/merakistudio/interior-api/internal/httpresp"
	"github.com/merakistudio/interior-api/internal/models"
)

// ======================================================
// VISITOR HANDLER
// ======================================================

const (
	cacheKeyStats    = "visitors:stats"
	cacheKeySources  = "visitors:sources"
	cacheKeyDevices  = "visitors:devices"
	cacheKeyBrowsers = "visitors:browsers"
)

// VisitorStore is the slice of the mongo repository the handler needs;
// tests substitute an in-memory one.
type VisitorStore interface {
	Insert(ctx context.Context, v *models.Visitor) error
	GroupCount(ctx context.Context, field string) ([]models.GroupCount, error)
}

type VisitorHandler struct {
	repo  VisitorStore
	cache *cache.Cache
}

func NewVisitorHandler(repo VisitorStore, c *cache.Cache) *VisitorHandler {
	return &VisitorHandler{
		repo:  repo,
		cache: c,
	}
}

type recordVisitRequest struct {
	Page string `json:"page" binding:"required"`

	UserAgent        string `json:"userAgent"`
	Referrer         string `json:"referrer"`
	Browser          string `json:"browser"`
	Platform         string `json:"platform"`
	Language         string `json:"language"`
	ScreenResolution string `json:"screenResolution"`

	Source string `json:"source"`
	Device string `json:"device"`
}

// ---- POST /api/visitor ----

// Record stores one page-view event. Browser, source and device are
// derived server-side when the client sends only the raw strings.
func (h *VisitorHandler) Record(c *gin.Context) {
	var req recordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Page is required")
		return
	}

	v := &models.Visitor{
		Page:             req.Page,
		Timestamp:        time.Now(),
		UserAgent:        req.UserAgent,
		Referrer:         req.Referrer,
		Browser:          req.Browser,
		Platform:         req.Platform,
		Language:         req.Language,
		ScreenResolution: req.ScreenResolution,
		Source:           req.Source,
		Device:           req.Device,
	}

	if v.Browser == "" {
		v.Browser = analytics.BrowserName(v.UserAgent)
	}
	if v.Source == "" {
		v.Source = analytics.TrafficSource(v.Referrer)
	}
	if v.Device == "" {
		v.Device = analytics.DeviceType(v.UserAgent)
	}

	if err := h.repo.Insert(c.Request.Context(), v); err != nil {
		log.Error().Err(err).Msg("recording visit failed")
		httperr.Internal(c, "record_failed", "Error logging activity")
		return
	}

	h.cache.Invalidate(c.Request.Context(),
		cacheKeyStats, cacheKeySources, cacheKeyDevices, cacheKeyBrowsers)

	c.JSON(http.StatusCreated, gin.H{"message": "Activity logged"})
}

// ---- GET /api/visitor/stats ----

func (h *VisitorHandler) Stats(c *gin.Context) {
	h.grouped(c, cacheKeyStats, "page")
}

// ---- GET /api/visitor/sources ----

func (h *VisitorHandler) Sources(c *gin.Context) {
	h.grouped(c, cacheKeySources, "source")
}

// ---- GET /api/visitor/devices ----

func (h *VisitorHandler) Devices(c *gin.Context) {
	h.grouped(c, cacheKeyDevices, "device")
}

// ---- GET /api/visitor/browsers ----

func (h *VisitorHandler) Browsers(c *gin.Context) {
	h.grouped(c, cacheKeyBrowsers, "browser")
}

func (h *VisitorHandler) grouped(c *gin.Context, cacheKey, field string) {
	ctx := c.Request.Context()

	var cached []models.GroupCount
	if h.cache.Get(ctx, cacheKey, &cached) {
		httpresp.OK(c, cached)
		return
	}

	counts, err := h.repo.GroupCount(ctx, field)
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("visitor aggregation failed")
		httperr.Internal(c, "stats_failed", "Error fetching visitor stats")
		return
	}

	h.cache.Set(ctx, cacheKey, counts)
	httpresp.OK(c, counts)
}
