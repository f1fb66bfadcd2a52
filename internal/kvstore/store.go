// Package kvstore is the durable key-value layer under the collections and
// the session record. Values are opaque bytes; there are no transactions and
// no schema, so callers doing read-modify-write can lose concurrent updates.
package kvstore

import (
	"context"
)

// Store is a string-keyed, byte-valued durable store.
// Get reports absence with ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by stores with a connection worth checking
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks the backend of s. Stores without a connection are always
// reachable.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Prefixed namespaces every key of an underlying store
type Prefixed struct {
	store  Store
	prefix string
}

// WithPrefix returns s unchanged for an empty prefix
func WithPrefix(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return &Prefixed{store: s, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Remove(ctx context.Context, key string) error {
	return p.store.Remove(ctx, p.prefix+key)
}

func (p *Prefixed) Ping(ctx context.Context) error {
	return Ping(ctx, p.store)
}
