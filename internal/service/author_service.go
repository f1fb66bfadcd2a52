package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/repository"
	"github.com/infosecwire/newsroom-api/internal/validation"
)

// authorService is the concrete implementation of AuthorService
type authorService struct {
	authors  repository.AuthorRepository
	articles repository.ArticleRepository
	now      func() time.Time
	log      zerolog.Logger
}

func newAuthorService(repos *repository.Repositories, now func() time.Time, log zerolog.Logger) *authorService {
	return &authorService{
		authors:  repos.Author,
		articles: repos.Article,
		now:      now,
		log:      log.With().Str("service", "author").Logger(),
	}
}

// List returns authors with their article counts
func (s *authorService) List(ctx context.Context) ([]AuthorSummary, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.articles.CountByAuthor(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AuthorSummary, 0, len(authors))
	for _, a := range authors {
		out = append(out, AuthorSummary{Author: a, ArticleCount: counts[a.ID]})
	}
	return out, nil
}

// Save validates and upserts an author. New authors get a millisecond
// timestamp id and a placeholder avatar seeded by it.
func (s *authorService) Save(ctx context.Context, author models.Author) (models.Author, error) {
	author.Name = strings.TrimSpace(author.Name)
	stamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	if author.ID == "" {
		author.ID = stamp
	}
	if author.Avatar == "" {
		author.Avatar = fmt.Sprintf("https://picsum.photos/seed/%s/150/150", stamp)
	}
	if author.Role == "" {
		author.Role = models.RoleAuthor
	}
	author.Role = models.CanonicalRole(author.Role)

	if err := validation.Errors(validation.NewValidator().ValidateAuthor(&author)).Err(); err != nil {
		return models.Author{}, err
	}

	if err := s.authors.Save(ctx, author); err != nil {
		return models.Author{}, err
	}
	s.log.Info().Str("author_id", author.ID).Str("role", string(author.Role)).Msg("Author saved")
	return author, nil
}

// Update saves author under id; the author must already exist
func (s *authorService) Update(ctx context.Context, id string, author models.Author) (models.Author, error) {
	existing, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return models.Author{}, err
	}
	if existing == nil {
		return models.Author{}, ErrNotFound
	}
	author.ID = id
	return s.Save(ctx, author)
}

// Delete removes an author. Articles keep their authorId and render as
// models.UnknownAuthorName.
func (s *authorService) Delete(ctx context.Context, id string) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("author_id", id).Msg("Author deleted")
	return nil
}
