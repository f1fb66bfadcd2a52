package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
)

// ErrCorruptCollection is returned when a stored blob does not decode
var ErrCorruptCollection = errors.New("stored collection is malformed")

// loadCollection decodes the blob under key. When nothing is stored yet it
// persists seed() and returns it, so later reads see the same values.
func loadCollection[T any](ctx context.Context, store kvstore.Store, key string, seed func() []T) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if !ok {
		items := seed()
		if err := saveCollection(ctx, store, key, items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, key, err)
	}
	return items, nil
}

// saveCollection rewrites the whole blob under key
func saveCollection[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
