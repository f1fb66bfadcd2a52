package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/assistant"
	"github.com/infosecwire/newsroom-api/internal/auth"
	"github.com/infosecwire/newsroom-api/internal/feed"
	"github.com/infosecwire/newsroom-api/internal/media"
	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/render"
	"github.com/infosecwire/newsroom-api/internal/repository"
)

// ErrNotFound is returned when an article, author or category does not exist
var ErrNotFound = errors.New("not found")

// ArticleService defines the interface for public and editorial article operations
type ArticleService interface {
	ListPublished(ctx context.Context, categorySlug, query string) ([]ArticleSummary, error)
	GetBySlug(ctx context.Context, slug string) (*ArticleDetail, error)
	Home(ctx context.Context, categorySlug, query string) (*HomePage, error)
	Feed(ctx context.Context) (string, error)

	AdminList(ctx context.Context, query string) ([]ArticleSummary, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Save(ctx context.Context, article models.Article) (models.Article, error)
	Update(ctx context.Context, id string, article models.Article) (models.Article, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*DashboardStats, error)
}

// AuthorService defines the interface for staff management
type AuthorService interface {
	List(ctx context.Context) ([]AuthorSummary, error)
	Save(ctx context.Context, author models.Author) (models.Author, error)
	Update(ctx context.Context, id string, author models.Author) (models.Author, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService defines the interface for category management
type CategoryService interface {
	List(ctx context.Context) ([]CategorySummary, error)
	Names(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
}

// Services holds all service interfaces. Auth, Assistant and Media wrap
// external collaborators and are attached by the caller.
type Services struct {
	Article  ArticleService
	Author   AuthorService
	Category CategoryService

	Auth      *auth.Service
	Assistant *assistant.Assistant
	Media     *media.Service

	// Health checks the backing store; nil counts as reachable
	Health HealthChecker
}

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ArticleSummary is an article with its author name resolved
type ArticleSummary struct {
	models.Article
	AuthorName string `json:"authorName"`
}

// ArticleDetail is the full article view
type ArticleDetail struct {
	ArticleSummary
	Author *models.Author `json:"author,omitempty"`
	HTML   string         `json:"html"`
	Blocks []render.Block `json:"blocks"`
}

// HomePage is the front page with author names resolved
type HomePage struct {
	Featured *ArticleSummary  `json:"featured"`
	Articles []ArticleSummary `json:"articles"`
	Trending []ArticleSummary `json:"trending"`
}

// AuthorSummary is an author with the number of articles referencing it
type AuthorSummary struct {
	models.Author
	ArticleCount int `json:"articleCount"`
}

// CategorySummary is a category with the number of articles filed under it
type CategorySummary struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ArticleCount int    `json:"articleCount"`
}

// DashboardStats are the admin overview counters
type DashboardStats struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Drafts     int `json:"drafts"`
	Scheduled  int `json:"scheduled"`
	Authors    int `json:"authors"`
	Categories int `json:"categories"`
}

// Option customizes service construction
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for new ids and timestamps
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, rss *feed.Generator, log zerolog.Logger, opts ...Option) *Services {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Services{
		Article:  newArticleService(repos, rss, o.now, log),
		Author:   newAuthorService(repos, o.now, log),
		Category: newCategoryService(repos, log),
	}
}

func summarize(articles []models.Article, authors []models.Author) []ArticleSummary {
	out := make([]ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleSummary{Article: a, AuthorName: models.AuthorName(authors, a.AuthorID)})
	}
	return out
}
