package repository

import (
	"context"
	"strings"
	"time"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository.
// Every write is a read-modify-write of the whole collection.
type articleRepo struct {
	store kvstore.Store
	now   func() time.Time
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(store kvstore.Store, now func() time.Time) ArticleRepository {
	return &articleRepo{store: store, now: now}
}

// List returns every article, seeding the defaults on first access
func (r *articleRepo) List(ctx context.Context) ([]models.Article, error) {
	return loadCollection(ctx, r.store, KeyArticles, func() []models.Article {
		return models.DefaultArticles(r.now())
	})
}

// ListPublished returns published articles in stored order
func (r *articleRepo) ListPublished(ctx context.Context) ([]models.Article, error) {
	return r.filter(ctx, func(a *models.Article) bool { return a.IsPublished() })
}

// GetByID retrieves an article by ID; nil when absent
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return r.first(ctx, func(a *models.Article) bool { return a.ID == id })
}

// GetBySlug scans all articles regardless of status; nil when absent
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return r.first(ctx, func(a *models.Article) bool { return a.Slug == slug })
}

// GetByCategory returns published articles whose category slug matches
func (r *articleRepo) GetByCategory(ctx context.Context, categorySlug string) ([]models.Article, error) {
	want := strings.ToLower(categorySlug)
	return r.filter(ctx, func(a *models.Article) bool {
		return a.IsPublished() && models.CategorySlug(a.Category) == want
	})
}

// Search is a case-insensitive substring match over published articles
func (r *articleRepo) Search(ctx context.Context, query string) ([]models.Article, error) {
	q := strings.ToLower(query)
	return r.filter(ctx, func(a *models.Article) bool {
		return a.IsPublished() && a.Matches(q)
	})
}

// Save upserts by id. Replacing an existing article stamps PublishedAt with
// the current time when the new status is published; inserts keep the
// supplied PublishedAt.
func (r *articleRepo) Save(ctx context.Context, article models.Article) (models.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return models.Article{}, err
	}

	replaced := false
	for i := range articles {
		if articles[i].ID == article.ID {
			if article.Status == models.StatusPublished {
				article.PublishedAt = r.now().UTC()
			}
			articles[i] = article
			replaced = true
			break
		}
	}
	if !replaced {
		articles = append(articles, article)
	}

	if err := saveCollection(ctx, r.store, KeyArticles, articles); err != nil {
		return models.Article{}, err
	}
	return article, nil
}

// Delete removes the article; a missing id is a no-op
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	kept, err := r.filter(ctx, func(a *models.Article) bool { return a.ID != id })
	if err != nil {
		return err
	}
	return saveCollection(ctx, r.store, KeyArticles, kept)
}

// RenameCategory moves every article in oldName to newName and reports how
// many were rewritten
func (r *articleRepo) RenameCategory(ctx context.Context, oldName, newName string) (int, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range articles {
		if articles[i].Category == oldName {
			articles[i].Category = newName
			changed++
		}
	}

	if err := saveCollection(ctx, r.store, KeyArticles, articles); err != nil {
		return 0, err
	}
	return changed, nil
}

// CountByAuthor counts articles of any status per author id
func (r *articleRepo) CountByAuthor(ctx context.Context) (map[string]int, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, a := range articles {
		counts[a.AuthorID]++
	}
	return counts, nil
}

func (r *articleRepo) filter(ctx context.Context, keep func(*models.Article) bool) ([]models.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Article, 0, len(articles))
	for i := range articles {
		if keep(&articles[i]) {
			out = append(out, articles[i])
		}
	}
	return out, nil
}

func (r *articleRepo) first(ctx context.Context, match func(*models.Article) bool) (*models.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		if match(&articles[i]) {
			return &articles[i], nil
		}
	}
	return nil, nil
}
