package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/config"
	"github.com/infosecwire/newsroom-api/internal/service"
)

// AuthHandler handles sign-in endpoints
type AuthHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Providers handles GET /v1/auth/providers
// Returns what the sign-in page needs to render its buttons.
func (h *AuthHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"google":    gin.H{"clientId": h.cfg.Auth.GoogleClientID},
		"microsoft": gin.H{"stub": true},
	})
}

// Google handles POST /v1/auth/google with the widget's {"credential": "..."}
func (h *AuthHandler) Google(c *gin.Context) {
	var req struct {
		Credential string `json:"credential"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Credential == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "credential is required"})
		return
	}

	author, err := h.services.Auth.HandleIdentityToken(c.Request.Context(), req.Credential)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": author})
}

// Microsoft handles POST /v1/auth/microsoft (placeholder flow)
func (h *AuthHandler) Microsoft(c *gin.Context) {
	author, err := h.services.Auth.LoginWithMicrosoft(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": author})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.services.Auth.Logout(c.Request.Context()); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok, err := h.services.Auth.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user": user})
}
