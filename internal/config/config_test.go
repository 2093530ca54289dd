package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New("/some/dir")
	require.NoError(t, err)
	assert.Equal(t, "/some/dir", cfg.Dir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "todos", cfg.Key)
	assert.Equal(t, "/some/dir/ltask.db", cfg.DatabasePath())
	assert.Equal(t, "/some/dir/config.yaml", cfg.ConfigPath())
}

func TestLoad_NoFileKeepsDefaults(t *testing.T) {
	cfg, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.Load())
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "todos", cfg.Key)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend: sqlite\nformat: toml\n")

	cfg, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Load())

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "toml", cfg.Format)
	assert.Equal(t, "todos", cfg.Key, "unset keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend: sqlite\nkey: home\n")
	t.Setenv("LTASK_BACKEND", "file")

	cfg, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Load())

	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "home", cfg.Key)
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend: [unterminated\n")

	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Error(t, cfg.Load())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Backend: " SQLite ", Format: "YAML", Key: " todos "}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "todos", cfg.Key)

	assert.EqualError(t, (&Config{Backend: "cloud", Format: "json", Key: "k"}).Validate(),
		"unknown backend: cloud (supported: file, sqlite)")
	assert.EqualError(t, (&Config{Backend: "file", Format: "xml", Key: "k"}).Validate(),
		"unknown format: xml (supported: json, yaml, toml)")
	assert.EqualError(t, (&Config{Backend: "file", Format: "json", Key: " "}).Validate(),
		"storage key must not be empty")
	assert.EqualError(t, (&Config{Backend: "file", Format: "json", Key: "../etc"}).Validate(),
		"invalid storage key: ../etc")
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0600))
}
