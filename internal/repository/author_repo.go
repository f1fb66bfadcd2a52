package repository

import (
	"context"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/models"
)

// authorRepo is the concrete implementation of AuthorRepository
type authorRepo struct {
	store kvstore.Store
}

// NewAuthorRepo creates a new author repository
func NewAuthorRepo(store kvstore.Store) AuthorRepository {
	return &authorRepo{store: store}
}

// List returns every author, seeding the defaults on first access
func (r *authorRepo) List(ctx context.Context) ([]models.Author, error) {
	return loadCollection(ctx, r.store, KeyAuthors, models.DefaultAuthors)
}

// GetByID retrieves an author by ID; nil when absent
func (r *authorRepo) GetByID(ctx context.Context, id string) (*models.Author, error) {
	authors, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if a, ok := models.FindAuthor(authors, id); ok {
		return a, nil
	}
	return nil, nil
}

// Save upserts by id
func (r *authorRepo) Save(ctx context.Context, author models.Author) error {
	authors, err := r.List(ctx)
	if err != nil {
		return err
	}

	if existing, ok := models.FindAuthor(authors, author.ID); ok {
		*existing = author
	} else {
		authors = append(authors, author)
	}

	return saveCollection(ctx, r.store, KeyAuthors, authors)
}

// Delete removes the author. Articles keep their authorId.
func (r *authorRepo) Delete(ctx context.Context, id string) error {
	authors, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Author, 0, len(authors))
	for _, a := range authors {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return saveCollection(ctx, r.store, KeyAuthors, kept)
}
