package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/service"
)

// AuthorHandler handles staff endpoints
type AuthorHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(services *service.Services, log zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{
		services: services,
		log:      log.With().Str("handler", "author").Logger(),
	}
}

// ListPublic handles GET /v1/authors
func (h *AuthorHandler) ListPublic(c *gin.Context) {
	summaries, err := h.services.Author.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	authors := make([]models.Author, 0, len(summaries))
	for _, s := range summaries {
		authors = append(authors, s.Author)
	}
	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// List handles GET /v1/admin/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.services.Author.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// Create handles POST /v1/admin/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var author models.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author body"})
		return
	}

	saved, err := h.services.Author.Save(c.Request.Context(), author)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Update handles PUT /v1/admin/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	var author models.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author body"})
		return
	}

	saved, err := h.services.Author.Update(c.Request.Context(), c.Param("id"), author)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Delete handles DELETE /v1/admin/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	if err := h.services.Author.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
