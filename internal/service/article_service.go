package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/feed"
	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/render"
	"github.com/infosecwire/newsroom-api/internal/repository"
	"github.com/infosecwire/newsroom-api/internal/validation"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	authors  repository.AuthorRepository
	cats     repository.CategoryRepository
	rss      *feed.Generator
	now      func() time.Time
	log      zerolog.Logger
}

func newArticleService(repos *repository.Repositories, rss *feed.Generator, now func() time.Time, log zerolog.Logger) *articleService {
	return &articleService{
		articles: repos.Article,
		authors:  repos.Author,
		cats:     repos.Category,
		rss:      rss,
		now:      now,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// display picks the published subset for a category page, a search, or
// the plain front page
func (s *articleService) display(ctx context.Context, categorySlug, query string) ([]models.Article, error) {
	switch {
	case categorySlug != "":
		return s.articles.GetByCategory(ctx, categorySlug)
	case query != "":
		return s.articles.Search(ctx, query)
	default:
		return s.articles.ListPublished(ctx)
	}
}

// ListPublished returns published articles, optionally narrowed by category or query
func (s *articleService) ListPublished(ctx context.Context, categorySlug, query string) ([]ArticleSummary, error) {
	articles, err := s.display(ctx, categorySlug, query)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(articles, authors), nil
}

// GetBySlug looks the article up across every status so editors can
// preview drafts by link
func (s *articleService) GetBySlug(ctx context.Context, slug string) (*ArticleDetail, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, err
	}

	detail := &ArticleDetail{
		ArticleSummary: ArticleSummary{Article: *article, AuthorName: models.AuthorName(authors, article.AuthorID)},
		HTML:           render.ToHTML(article.Content),
		Blocks:         render.Blocks(article.Content),
	}
	if author, ok := models.FindAuthor(authors, article.AuthorID); ok {
		detail.Author = author
	}
	return detail, nil
}

// Home composes the front page
func (s *articleService) Home(ctx context.Context, categorySlug, query string) (*HomePage, error) {
	published, err := s.articles.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	display, err := s.display(ctx, categorySlug, query)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, err
	}

	home := feed.ComposeHome(published, display)
	page := &HomePage{
		Articles: summarize(home.Articles, authors),
		Trending: summarize(home.Trending, authors),
	}
	if home.Featured != nil {
		page.Featured = &ArticleSummary{Article: *home.Featured, AuthorName: models.AuthorName(authors, home.Featured.AuthorID)}
	}
	return page, nil
}

// Feed renders the RSS document of published articles
func (s *articleService) Feed(ctx context.Context) (string, error) {
	published, err := s.articles.ListPublished(ctx)
	if err != nil {
		return "", err
	}
	authors, err := s.authors.List(ctx)
	if err != nil {
		return "", err
	}
	return s.rss.Run(published, authors)
}

// AdminList returns every article regardless of status. The query matches
// title, category or author name, case-insensitively.
func (s *articleService) AdminList(ctx context.Context, query string) ([]ArticleSummary, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, err
	}

	all := summarize(articles, authors)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	filtered := make([]ArticleSummary, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Category), q) ||
			strings.Contains(strings.ToLower(a.AuthorName), q) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Get retrieves an article by ID in any status
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// Save validates an editor submission and upserts it. Missing id, slug,
// status and timestamp are filled in first.
func (s *articleService) Save(ctx context.Context, article models.Article) (models.Article, error) {
	existing, err := s.articles.List(ctx)
	if err != nil {
		return models.Article{}, err
	}

	s.applyDefaults(&article)

	validator := validation.NewValidator()
	validator.SetArticles(existing)
	if err := validation.Errors(validator.ValidateArticle(&article)).Err(); err != nil {
		return models.Article{}, err
	}

	saved, err := s.articles.Save(ctx, article)
	if err != nil {
		return models.Article{}, err
	}

	s.log.Info().
		Str("article_id", saved.ID).
		Str("slug", saved.Slug).
		Str("status", string(saved.Status)).
		Msg("Article saved")
	return saved, nil
}

// Update saves article under id; the article must already exist. An omitted
// publishedAt keeps the stored one.
func (s *articleService) Update(ctx context.Context, id string, article models.Article) (models.Article, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	article.ID = id
	if article.PublishedAt.IsZero() {
		article.PublishedAt = existing.PublishedAt
	}
	return s.Save(ctx, article)
}

// Delete removes an article; a missing id is not an error
func (s *articleService) Delete(ctx context.Context, id string) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// Stats returns the dashboard counters
func (s *articleService) Stats(ctx context.Context) (*DashboardStats, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := s.cats.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{Total: len(articles), Authors: len(authors), Categories: len(cats)}
	for _, a := range articles {
		switch a.Status {
		case models.StatusPublished:
			stats.Published++
		case models.StatusDraft:
			stats.Drafts++
		case models.StatusScheduled:
			stats.Scheduled++
		}
	}
	return stats, nil
}

func (s *articleService) applyDefaults(a *models.Article) {
	a.Title = strings.TrimSpace(a.Title)
	a.Category = strings.TrimSpace(a.Category)
	a.CVEID = strings.ToUpper(strings.TrimSpace(a.CVEID))

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Slug == "" {
		a.Slug = validation.Slugify(a.Title)
	}
	if a.Status == "" {
		a.Status = models.StatusDraft
	}
	if a.PublishedAt.IsZero() {
		a.PublishedAt = s.now().UTC()
	}
	a.Tags = normalizeTags(a.Tags)
}

// normalizeTags trims tags and drops blanks and repeats
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
