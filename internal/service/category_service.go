package service

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/models"
	"github.com/infosecwire/newsroom-api/internal/repository"
	"github.com/infosecwire/newsroom-api/internal/validation"
)

// categoryService is the concrete implementation of CategoryService
type categoryService struct {
	cats     repository.CategoryRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newCategoryService(repos *repository.Repositories, log zerolog.Logger) *categoryService {
	return &categoryService{
		cats:     repos.Category,
		articles: repos.Article,
		log:      log.With().Str("service", "category").Logger(),
	}
}

// List returns categories in stored order with per-category article counts
func (s *categoryService) List(ctx context.Context) ([]CategorySummary, error) {
	names, err := s.cats.List(ctx)
	if err != nil {
		return nil, err
	}
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, a := range articles {
		counts[a.Category]++
	}

	out := make([]CategorySummary, 0, len(names))
	for _, n := range names {
		out = append(out, CategorySummary{Name: n, Slug: models.CategorySlug(n), ArticleCount: counts[n]})
	}
	return out, nil
}

// Names returns the plain category list
func (s *categoryService) Names(ctx context.Context) ([]string, error) {
	return s.cats.List(ctx)
}

// Create adds a category; an existing name is left as is
func (s *categoryService) Create(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := validation.Errors(validation.NewValidator().ValidateCategory(name)).Err(); err != nil {
		return err
	}
	if err := s.cats.Save(ctx, name); err != nil {
		return err
	}
	s.log.Info().Str("category", name).Msg("Category saved")
	return nil
}

// Rename moves oldName to newName in the list and on every article filed
// under it. oldName must be listed or still carried by an article.
func (s *categoryService) Rename(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if err := validation.Errors(validation.NewValidator().ValidateCategory(newName)).Err(); err != nil {
		return err
	}

	names, err := s.cats.List(ctx)
	if err != nil {
		return err
	}
	if oldName == newName {
		if !slices.Contains(names, oldName) {
			return ErrNotFound
		}
		return nil
	}
	if !slices.Contains(names, oldName) {
		// A deleted category can still be carried by articles; renaming it
		// moves them without adding the new name to the list.
		inUse, err := s.inUse(ctx, oldName)
		if err != nil {
			return err
		}
		if !inUse {
			return ErrNotFound
		}
	}

	if err := s.cats.Update(ctx, oldName, newName); err != nil {
		return err
	}
	s.log.Info().Str("from", oldName).Str("to", newName).Msg("Category renamed")
	return nil
}

func (s *categoryService) inUse(ctx context.Context, name string) (bool, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range articles {
		if a.Category == name {
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the category. Articles keep the old label.
func (s *categoryService) Delete(ctx context.Context, name string) error {
	if err := s.cats.Delete(ctx, name); err != nil {
		return err
	}
	s.log.Info().Str("category", name).Msg("Category deleted")
	return nil
}
