package repository

import (
	"context"
	"time"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/models"
)

// Fixed store keys. Each collection is one JSON blob.
const (
	KeyArticles   = "articles"
	KeyAuthors    = "authors"
	KeyCategories = "categories"
	KeySession    = "session"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context) ([]models.Article, error)
	ListPublished(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByCategory(ctx context.Context, categorySlug string) ([]models.Article, error)
	Search(ctx context.Context, query string) ([]models.Article, error)
	Save(ctx context.Context, article models.Article) (models.Article, error)
	Delete(ctx context.Context, id string) error
	RenameCategory(ctx context.Context, oldName, newName string) (int, error)
	CountByAuthor(ctx context.Context) (map[string]int, error)
}

// AuthorRepository defines the interface for author data operations
type AuthorRepository interface {
	List(ctx context.Context) ([]models.Author, error)
	GetByID(ctx context.Context, id string) (*models.Author, error)
	Save(ctx context.Context, author models.Author) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context) ([]string, error)
	Save(ctx context.Context, name string) error
	Update(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
}

// SessionRepository holds the single current-user record
type SessionRepository interface {
	Get(ctx context.Context) (*models.Author, error)
	Set(ctx context.Context, author models.Author) error
	Clear(ctx context.Context) error
	Exists(ctx context.Context) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article  ArticleRepository
	Author   AuthorRepository
	Category CategoryRepository
	Session  SessionRepository
}

// Option customizes repository construction
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for seeding and publish stamps
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates all repositories over the given store
func New(store kvstore.Store, opts ...Option) *Repositories {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	articles := NewArticleRepo(store, o.now)
	return &Repositories{
		Article:  articles,
		Author:   NewAuthorRepo(store),
		Category: NewCategoryRepo(store, articles),
		Session:  NewSessionRepo(store),
	}
}
