// Package config handles the XDG configuration directory, the optional
// config file, and storage settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ltask/internal/kv"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// ConfigFile is the optional settings file inside the config directory.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides (LTASK_BACKEND, ...).
	EnvPrefix = "LTASK"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path. Task data lives here too.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Backend selects the storage backend: "file" or "sqlite".
	Backend string

	// Format selects the encoding of stored tasks: "json", "yaml" or "toml".
	Format string

	// Key is the storage key the task collection is kept under.
	Key string
}

// New creates a new Config with the default or specified config directory
// and default storage settings.
// If configDir is empty, uses XDG_CONFIG_HOME/ltask or $HOME/.config/ltask.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:     dir,
		Backend: BackendFile,
		Format:  "json",
		Key:     "todos",
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the optional config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// DataDir returns the directory the file backend keeps tasks in.
func (c *Config) DataDir() string {
	return c.Dir
}

// DatabasePath returns the path of the sqlite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Dir, AppName+".db")
}

// Validate normalizes and checks the storage settings.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Key = strings.TrimSpace(c.Key)

	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend: %s (supported: file, sqlite)", c.Backend)
	}
	switch c.Format {
	case "json", "yaml", "toml":
	default:
		return fmt.Errorf("unknown format: %s (supported: json, yaml, toml)", c.Format)
	}
	if c.Key == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if !kv.ValidKey(c.Key) {
		return fmt.Errorf("invalid storage key: %s", c.Key)
	}
	return nil
}
