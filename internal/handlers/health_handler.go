package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merakistudio/interior-api/internal/db"
)

// ======================================================
// HEALTH HANDLER
// ======================================================

type HealthHandler struct {
	store *db.Store
}

func NewHealthHandler(store *db.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// ---- GET /api/health ----

// Check always answers 200; database trouble shows up in the payload,
// not the status code.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "Connected"
	if err := h.store.Ping(ctx); err != nil {
		dbStatus = "Disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"server":   "Running",
		"database": dbStatus,
		"time":     time.Now().Format(time.RFC3339),
	})
}
