package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/service"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(services *service.Services, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		services: services,
		log:      log.With().Str("handler", "category").Logger(),
	}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// ListNames handles GET /v1/categories
func (h *CategoryHandler) ListNames(c *gin.Context) {
	names, err := h.services.Category.Names(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": names})
}

// List handles GET /v1/admin/categories
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// Create handles POST /v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if err := h.services.Category.Create(c.Request.Context(), req.Name); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

// Rename handles PUT /v1/admin/categories/:name with the new name in the body
func (h *CategoryHandler) Rename(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if err := h.services.Category.Rename(c.Request.Context(), c.Param("name"), req.Name); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": c.Param("name"), "to": req.Name})
}

// Delete handles DELETE /v1/admin/categories/:name
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.services.Category.Delete(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
