package repository

import (
	"context"
	"slices"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/models"
)

// categoryRepo is the concrete implementation of CategoryRepository.
// Categories are plain strings; identity is the value itself.
type categoryRepo struct {
	store    kvstore.Store
	articles ArticleRepository
}

// NewCategoryRepo creates a new category repository. Renames are propagated
// to articles through the given article repository.
func NewCategoryRepo(store kvstore.Store, articles ArticleRepository) CategoryRepository {
	return &categoryRepo{store: store, articles: articles}
}

// List returns the ordered category list, seeding the defaults on first access
func (r *categoryRepo) List(ctx context.Context) ([]string, error) {
	return loadCollection(ctx, r.store, KeyCategories, func() []string {
		return slices.Clone(models.DefaultCategories)
	})
}

// Save appends the category unless the same value is already present
func (r *categoryRepo) Save(ctx context.Context, name string) error {
	categories, err := r.List(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(categories, name) {
		return nil
	}
	return saveCollection(ctx, r.store, KeyCategories, append(categories, name))
}

// Update renames oldName to newName in the list, then rewrites every article
// in oldName. The two writes are separate: a failure between them leaves the
// list renamed and the articles untouched.
func (r *categoryRepo) Update(ctx context.Context, oldName, newName string) error {
	categories, err := r.List(ctx)
	if err != nil {
		return err
	}

	renamed := make([]string, 0, len(categories))
	seen := false
	for _, c := range categories {
		if c == oldName {
			c = newName
		}
		if c == newName {
			if seen {
				continue
			}
			seen = true
		}
		renamed = append(renamed, c)
	}

	if err := saveCollection(ctx, r.store, KeyCategories, renamed); err != nil {
		return err
	}

	_, err = r.articles.RenameCategory(ctx, oldName, newName)
	return err
}

// Delete removes the category. Articles keep the old value.
func (r *categoryRepo) Delete(ctx context.Context, name string) error {
	categories, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(categories))
	for _, c := range categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	return saveCollection(ctx, r.store, KeyCategories, kept)
}
