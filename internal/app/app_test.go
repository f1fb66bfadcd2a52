package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infosecwire/newsroom-api/internal/config"
)

func TestBuild_MemoryDefaults(t *testing.T) {
	cfg := config.Defaults()
	cfg.Store.Driver = config.DriverMemory

	services, closer, err := Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closer.Close()

	assert.False(t, services.Assistant.Enabled())
	require.NotNil(t, services.Health)
	assert.NoError(t, services.Health.Ping(context.Background()))
	assert.Equal(t, cfg.Media.MaxUploadSize, services.Media.MaxSize())

	stats, err := services.Article.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Authors)
	assert.Equal(t, 7, stats.Categories)
}

func TestBuild_SQLite(t *testing.T) {
	cfg := config.Defaults()
	cfg.Store.SQLitePath = t.TempDir() + "/newsroom.db"

	services, closer, err := Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, services.Category.Create(context.Background(), "Malware"))
	require.NoError(t, closer.Close())

	// Reopen and read back
	services, closer, err = Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closer.Close()

	names, err := services.Category.Names(context.Background())
	require.NoError(t, err)
	assert.Contains(t, names, "Malware")
}

func TestBuild_UnknownDriver(t *testing.T) {
	cfg := config.Defaults()
	cfg.Store.Driver = "etcd"

	_, _, err := Build(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
