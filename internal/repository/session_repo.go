package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/models"
)

// sessionRepo stores the current user verbatim under KeySession
type sessionRepo struct {
	store kvstore.Store
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(store kvstore.Store) SessionRepository {
	return &sessionRepo{store: store}
}

// Get decodes the stored session; nil when nobody is signed in
func (r *sessionRepo) Get(ctx context.Context) (*models.Author, error) {
	raw, ok, err := r.store.Get(ctx, KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var author models.Author
	if err := json.Unmarshal(raw, &author); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, KeySession, err)
	}
	return &author, nil
}

// Set overwrites any previous session
func (r *sessionRepo) Set(ctx context.Context, author models.Author) error {
	data, err := json.Marshal(author)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, KeySession, data); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the session entry
func (r *sessionRepo) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Exists is a presence test only; the stored author is not checked against
// the authors collection
func (r *sessionRepo) Exists(ctx context.Context) (bool, error) {
	_, ok, err := r.store.Get(ctx, KeySession)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return ok, nil
}
