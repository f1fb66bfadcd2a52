package kvstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/infosecwire/newsroom-api/internal/config"
	"github.com/infosecwire/newsroom-api/internal/database"
	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the store selected by cfg.Driver, applies the key prefix and
// metrics, and returns a closer for the underlying connection.
func Open(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (Store, io.Closer, error) {
	var (
		store  Store
		closer io.Closer = nopCloser{}
	)

	switch cfg.Driver {
	case config.DriverMemory:
		store = NewMemory()

	case config.DriverSQLite, config.DriverPostgres:
		db, err := openDatabase(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, err
		}
		store, closer = NewSQL(db), db

	case config.DriverRedis:
		r, err := NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		store, closer = r, r

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	log.Info().Str("component", "kvstore").Str("driver", cfg.Driver).Msg("Key-value store ready")

	return WithMetrics(WithPrefix(store, cfg.KeyPrefix)), closer, nil
}

// MigrateDown rolls back the last schema migration of a SQL backend.
// Other drivers have no schema.
func MigrateDown(cfg config.StoreConfig, log zerolog.Logger) error {
	if cfg.Driver != config.DriverSQLite && cfg.Driver != config.DriverPostgres {
		return fmt.Errorf("driver %q has no migrations", cfg.Driver)
	}

	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.MigrateDown()
}

func openDatabase(cfg config.StoreConfig, log zerolog.Logger) (*database.DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return database.OpenPostgres(cfg.PostgresDSN, cfg.MaxOpenConns, log)
	}

	if dir := filepath.Dir(cfg.SQLitePath); dir != "." && cfg.SQLitePath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}
	return database.OpenSQLite(cfg.SQLitePath, log)
}
