package mocks

import (
	"context"

	"github.com/infosecwire/newsroom-api/internal/kvstore"
)

// FailingStore wraps a kvstore.Store and injects errors per operation
type FailingStore struct {
	kvstore.Store
	GetErr    error
	SetErr    error
	RemoveErr error
	PingErr   error
	// FailSetKey limits SetErr to one key when non-empty
	FailSetKey string
	SetCalls   int
}

func NewFailingStore(inner kvstore.Store) *FailingStore {
	return &FailingStore{Store: inner}
}

func (m *FailingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	return m.Store.Get(ctx, key)
}

func (m *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	m.SetCalls++
	if m.SetErr != nil && (m.FailSetKey == "" || m.FailSetKey == key) {
		return m.SetErr
	}
	return m.Store.Set(ctx, key, value)
}

func (m *FailingStore) Remove(ctx context.Context, key string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	return m.Store.Remove(ctx, key)
}

func (m *FailingStore) Ping(ctx context.Context) error {
	if m.PingErr != nil {
		return m.PingErr
	}
	return kvstore.Ping(ctx, m.Store)
}
