package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/merakistudio/interior-api/internal/httperr"
	"github.com/merakistudio/interior-api/internal/httpresp"
	"github.com/merakistudio/interior-api/internal/media"
)

// ======================================================
// UPLOAD HANDLER
// ======================================================

type UploadHandler struct {
	store media.Store
}

func NewUploadHandler(store media.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// ---- POST /api/upload ----

func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Please upload a file")
		return
	}

	f, err := h.store.Save(c.Request.Context(), fh)
	switch {
	case errors.Is(err, media.ErrUnsupportedType):
		httperr.BadRequest(c, "unsupported_type", "Only images and videos are allowed")
		return
	case errors.Is(err, media.ErrTooLarge):
		httperr.BadRequest(c, "file_too_large", "File exceeds the 50MB limit")
		return
	case err != nil:
		log.Error().Err(err).Str("file", fh.Filename).Msg("saving upload failed")
		httperr.Internal(c, "upload_failed", "Error uploading file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fileUrl": f.URL,
		"name":    f.Name,
	})
}

// ---- GET /api/upload ----

func (h *UploadHandler) List(c *gin.Context) {
	files, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing uploads failed")
		httperr.Internal(c, "list_failed", "Error fetching files")
		return
	}
	httpresp.OK(c, files)
}

// ---- DELETE /api/upload/:filename ----

func (h *UploadHandler) Delete(c *gin.Context) {
	name := c.Param("filename")
	if err := h.store.Remove(c.Request.Context(), name); err != nil {
		log.Error().Err(err).Str("file", name).Msg("deleting upload failed")
		httperr.Internal(c, "delete_failed", "Failed to delete file")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
