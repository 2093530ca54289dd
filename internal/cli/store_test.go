package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltask/internal/config"
	"ltask/internal/logging"
)

func testConfig(t *testing.T, backend, format string) *config.Config {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.Backend = backend
	cfg.Format = format
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestOpenStore_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		backend, format string
	}{
		{config.BackendFile, "json"},
		{config.BackendFile, "yaml"},
		{config.BackendFile, "toml"},
		{config.BackendSQLite, "json"},
		{config.BackendSQLite, "toml"},
	} {
		t.Run(tc.backend+"/"+tc.format, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, tc.backend, tc.format)

			svc, err := OpenStore(ctx, cfg, logging.Discard())
			require.NoError(t, err)
			_, err = svc.Add(ctx, "Buy eggs")
			require.NoError(t, err)
			want := svc.Tasks(ctx)
			require.NoError(t, svc.Close())

			reopened, err := OpenStore(ctx, cfg, logging.Discard())
			require.NoError(t, err)
			defer reopened.Close()
			assert.Equal(t, want, reopened.Load(ctx))
		})
	}
}

func TestOpenStore_FileLayout(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendFile, "yaml")

	svc, err := OpenStore(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	defer svc.Close()
	_, err = svc.Toggle(ctx, 1)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(cfg.Dir, "todos.yaml"))
	assert.NoError(t, err)
}

func TestOpenStore_SQLiteLayout(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendSQLite, "json")

	svc, err := OpenStore(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	_, err = os.Stat(cfg.DatabasePath())
	assert.NoError(t, err)
}

func TestOpenStore_CreatesMissingDirectory(t *testing.T) {
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, backend, "json")
			cfg.Dir = filepath.Join(cfg.Dir, "nested", "ltask")

			svc, err := OpenStore(ctx, cfg, logging.Discard())
			require.NoError(t, err)
			defer svc.Close()

			info, err := os.Stat(cfg.Dir)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
		})
	}
}

func TestOpenStore_SQLiteLogsLastUpdate(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendSQLite, "json")

	var logs bytes.Buffer
	svc, err := OpenStore(ctx, cfg, logging.New(&logs, true))
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "updated_at=", "nothing stored yet")
	_, err = svc.Toggle(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	logs.Reset()
	reopened, err := OpenStore(ctx, cfg, logging.New(&logs, true))
	require.NoError(t, err)
	defer reopened.Close()
	assert.Contains(t, logs.String(), "msg=\"opened database\"")
	assert.Contains(t, logs.String(), "updated_at=")
}
