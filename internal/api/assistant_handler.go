package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/assistant"
	"github.com/infosecwire/newsroom-api/internal/service"
)

// AssistantHandler handles drafting assistant endpoints
type AssistantHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(services *service.Services, log zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{
		services: services,
		log:      log.With().Str("handler", "assistant").Logger(),
	}
}

// Outline handles POST /v1/admin/assistant/outline {"topic": "..."}
func (h *AssistantHandler) Outline(c *gin.Context) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	ctx, cancel := contextWithTimeout(c, assistantTimeout)
	defer cancel()

	text, err := h.services.Assistant.ArticleOutline(ctx, req.Topic)
	h.respond(c, text, err)
}

// SummarizeCVE handles POST /v1/admin/assistant/cve-summary {"cveId": "..."}
func (h *AssistantHandler) SummarizeCVE(c *gin.Context) {
	var req struct {
		CVEID string `json:"cveId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cveId is required"})
		return
	}

	ctx, cancel := contextWithTimeout(c, assistantTimeout)
	defer cancel()

	text, err := h.services.Assistant.SummarizeCVE(ctx, req.CVEID)
	h.respond(c, text, err)
}

// Trending handles GET /v1/admin/assistant/trending
func (h *AssistantHandler) Trending(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, assistantTimeout)
	defer cancel()

	text, err := h.services.Assistant.TrendingTopics(ctx)
	h.respond(c, text, err)
}

// respond reports generator failures as 502; the model is upstream
func (h *AssistantHandler) respond(c *gin.Context, text string, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"text": text})
	case errors.Is(err, assistant.ErrDisabled), errors.Is(err, assistant.ErrEmptyInput):
		respondError(c, h.log, err)
	default:
		h.log.Error().Err(err).Msg("Assistant request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant request failed"})
	}
}
