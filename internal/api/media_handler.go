package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/service"
)

// multipartOverhead is the allowance for boundaries and part headers on top
// of the file itself
const multipartOverhead = 64 * 1024

// MediaHandler handles image uploads
type MediaHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(services *service.Services, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		services: services,
		log:      log.With().Str("handler", "media").Logger(),
	}
}

// Upload handles POST /v1/admin/media (multipart field "file")
func (h *MediaHandler) Upload(c *gin.Context) {
	maxSize := h.services.Media.MaxSize()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("file too large, max size is %d MB", maxSize/(1024*1024)),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	// Validate file size
	if header.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file too large, max size is %d MB", maxSize/(1024*1024)),
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to read upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}

	url, err := h.services.Media.Store(c.Request.Context(), header.Filename, data)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info().Str("filename", header.Filename).Int("bytes", len(data)).Msg("Media stored")
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
