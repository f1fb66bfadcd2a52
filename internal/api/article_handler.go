package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/service"
)

// ArticleHandler handles public reading and editorial article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListPublished handles GET /v1/articles?category=...&q=...
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	articles, err := h.services.Article.ListPublished(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetBySlug handles GET /v1/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	detail, err := h.services.Article.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Home handles GET /v1/home?category=...&q=...
func (h *ArticleHandler) Home(c *gin.Context) {
	page, err := h.services.Article.Home(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Feed handles GET /feed.xml
func (h *ArticleHandler) Feed(c *gin.Context) {
	body, err := h.services.Article.Feed(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(body))
}

// AdminList handles GET /v1/admin/articles?q=...
func (h *ArticleHandler) AdminList(c *gin.Context) {
	articles, err := h.services.Article.AdminList(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// Stats handles GET /v1/admin/stats
func (h *ArticleHandler) Stats(c *gin.Context) {
	stats, err := h.services.Article.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get handles GET /v1/admin/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create handles POST /v1/admin/articles
// An article without an author is credited to the signed-in user.
func (h *ArticleHandler) Create(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article body"})
		return
	}
	if article.AuthorID == "" {
		if user := sessionUser(c); user != nil {
			article.AuthorID = user.ID
		}
	}

	saved, err := h.services.Article.Save(c.Request.Context(), article)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Update handles PUT /v1/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article body"})
		return
	}

	saved, err := h.services.Article.Update(c.Request.Context(), c.Param("id"), article)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Delete handles DELETE /v1/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// sessionUser returns the author stored by requireSession
func sessionUser(c *gin.Context) *models.Author {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*models.Author); ok {
			return user
		}
	}
	return nil
}
