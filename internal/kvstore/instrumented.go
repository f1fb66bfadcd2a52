package kvstore

import (
	"context"
	"time"

	"github.com/infosecwire/newsroom-api/internal/metrics"
)

// Instrumented records Prometheus metrics around every call of a Store
type Instrumented struct {
	store Store
}

// WithMetrics wraps s with metric collection
func WithMetrics(s Store) *Instrumented {
	return &Instrumented{store: s}
}

func (i *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	v, ok, err := i.store.Get(ctx, key)
	metrics.ObserveStoreOperation("get", err, time.Since(start))
	return v, ok, err
}

func (i *Instrumented) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := i.store.Set(ctx, key, value)
	metrics.ObserveStoreOperation("set", err, time.Since(start))
	if err == nil {
		metrics.StoreValueBytes.WithLabelValues(key).Observe(float64(len(value)))
	}
	return err
}

func (i *Instrumented) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := i.store.Remove(ctx, key)
	metrics.ObserveStoreOperation("remove", err, time.Since(start))
	return err
}

func (i *Instrumented) Ping(ctx context.Context) error {
	start := time.Now()
	err := Ping(ctx, i.store)
	metrics.ObserveStoreOperation("ping", err, time.Since(start))
	return err
}
