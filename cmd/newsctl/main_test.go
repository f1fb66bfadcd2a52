package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infosecwire/newsroom-api/internal/app"
	"github.com/infosecwire/newsroom-api/internal/config"
)

func useMemoryStore(t *testing.T) *bytes.Buffer {
	t.Helper()
	cfg := config.Defaults()
	cfg.Store.Driver = config.DriverMemory

	svc, closer, err := app.Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })
	services = svc

	var buf bytes.Buffer
	out = &buf
	return &buf
}

func TestListAndSearch(t *testing.T) {
	buf := useMemoryStore(t)

	require.NoError(t, (&listCommand{}).Execute(nil))
	assert.Contains(t, buf.String(), "Elena Vance")

	buf.Reset()
	cmd := &searchCommand{}
	cmd.Args.Query = "fintech"
	require.NoError(t, cmd.Execute(nil))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2) // header plus one article
}

func TestRenameCategory(t *testing.T) {
	buf := useMemoryStore(t)

	cmd := &renameCategoryCommand{}
	cmd.Args.From = "Vulnerabilities"
	cmd.Args.To = "Vulns"
	require.NoError(t, cmd.Execute(nil))

	buf.Reset()
	require.NoError(t, (&categoriesCommand{}).Execute(nil))
	assert.Contains(t, buf.String(), "Vulns")
	assert.NotContains(t, buf.String(), "Vulnerabilities")
}

func TestWhoami_SignedOut(t *testing.T) {
	buf := useMemoryStore(t)

	require.NoError(t, (&whoamiCommand{}).Execute(nil))
	assert.Equal(t, "not signed in\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestMigrateDown(t *testing.T) {
	path := t.TempDir() + "/newsroom.db"
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORE_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", path)
	opts = globalOptions{LogLevel: "off"}

	cfg, err := loadConfig()
	require.NoError(t, err)
	_, closer, err := app.Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	var buf bytes.Buffer
	out = &buf
	require.NoError(t, (&migrateDownCommand{}).Execute(nil))
	assert.Equal(t, "rolled back the last sqlite migration\n", buf.String())

	opts.Driver = config.DriverMemory
	assert.Error(t, (&migrateDownCommand{}).Execute(nil))
}
