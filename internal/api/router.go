package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/config"
	"github.com/infosecwire/newsroom-api/internal/metrics"
	"github.com/infosecwire/newsroom-api/internal/service"
)

const (
	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	currentUserKey  = "current_user"

	assistantTimeout = 60 * time.Second
	healthTimeout    = 2 * time.Second
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(metrics.Middleware())
	router.Use(corsMiddleware())

	// Handlers
	articles := NewArticleHandler(services, log)
	authors := NewAuthorHandler(services, log)
	categories := NewCategoryHandler(services, log)
	authH := NewAuthHandler(services, cfg, log)
	assistantH := NewAssistantHandler(services, log)
	mediaH := NewMediaHandler(services, log)

	// Health check
	router.GET("/health", healthCheck(services, log))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/feed.xml", articles.Feed)

	// API v1
	v1 := router.Group("/v1")
	{
		v1.GET("/home", articles.Home)
		v1.GET("/articles", articles.ListPublished)
		v1.GET("/articles/:slug", articles.GetBySlug)
		v1.GET("/categories", categories.ListNames)
		v1.GET("/authors", authors.ListPublic)

		// Sign-in endpoints
		authGroup := v1.Group("/auth")
		{
			authGroup.GET("/providers", authH.Providers)
			authGroup.POST("/google", authH.Google)
			authGroup.POST("/microsoft", authH.Microsoft)
			authGroup.POST("/logout", authH.Logout)
			authGroup.GET("/me", authH.Me)
		}

		// Newsroom admin, session required
		admin := v1.Group("/admin")
		admin.Use(requireSession(services, log))
		{
			admin.GET("/stats", articles.Stats)
			admin.GET("/articles", articles.AdminList)
			admin.GET("/articles/:id", articles.Get)
			admin.POST("/articles", articles.Create)
			admin.PUT("/articles/:id", articles.Update)
			admin.DELETE("/articles/:id", articles.Delete)

			admin.GET("/authors", authors.List)
			admin.POST("/authors", authors.Create)
			admin.PUT("/authors/:id", authors.Update)
			admin.DELETE("/authors/:id", authors.Delete)

			admin.GET("/categories", categories.List)
			admin.POST("/categories", categories.Create)
			admin.PUT("/categories/:name", categories.Rename)
			admin.DELETE("/categories/:name", categories.Delete)

			admin.POST("/assistant/outline", assistantH.Outline)
			admin.POST("/assistant/cve-summary", assistantH.SummarizeCVE)
			admin.GET("/assistant/trending", assistantH.Trending)

			admin.POST("/media", mediaH.Upload)
		}
	}

	return router
}

// healthCheck returns the health status, including whether the store
// answers a ping
func healthCheck(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, store, code := "healthy", "ok", http.StatusOK
		if services.Health != nil {
			ctx, cancel := contextWithTimeout(c, healthTimeout)
			defer cancel()
			if err := services.Health.Ping(ctx); err != nil {
				log.Error().Err(err).Msg("Store health check failed")
				status, store, code = "unhealthy", "unavailable", http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status":    status,
			"store":     store,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "newsroom-api",
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware reuses the caller's X-Request-ID or generates one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requireSession rejects admin requests when nobody is signed in. The
// stored session author is made available to handlers.
func requireSession(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok, err := services.Auth.CurrentUser(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to read session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to read session"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
