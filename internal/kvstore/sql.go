package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/infosecwire/newsroom-api/internal/database"
)

// SQL stores entries in the kv_entries table created by the database
// migrations. It works against both PostgreSQL and SQLite.
type SQL struct {
	db       *database.DB
	getQuery string
	setQuery string
	delQuery string
}

// NewSQL creates a Store backed by a migrated database
func NewSQL(db *database.DB) *SQL {
	s := &SQL{db: db}
	switch db.Dialect() {
	case database.Postgres:
		s.getQuery = `SELECT value FROM kv_entries WHERE key = $1`
		s.setQuery = `
			INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
		s.delQuery = `DELETE FROM kv_entries WHERE key = $1`
	default:
		s.getQuery = `SELECT value FROM kv_entries WHERE key = ?`
		s.setQuery = `
			INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
		s.delQuery = `DELETE FROM kv_entries WHERE key = ?`
	}
	return s
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.setQuery, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.delQuery, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks the database connection
func (s *SQL) Ping(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}
