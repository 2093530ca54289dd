package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// fileSettings mirrors the keys accepted in config.yaml and the environment.
type fileSettings struct {
	Backend string `mapstructure:"backend"`
	Format  string `mapstructure:"format"`
	Key     string `mapstructure:"key"`
}

// Load merges settings from config.yaml in c.Dir and LTASK_* environment
// variables into c. Values already on c act as defaults; the environment wins
// over the file. A missing config file is not an error.
func (c *Config) Load() error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend", c.Backend)
	v.SetDefault("format", c.Format)
	v.SetDefault("key", c.Key)

	path := c.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var s fileSettings
	if err := v.Unmarshal(&s); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	c.Backend = s.Backend
	c.Format = s.Format
	c.Key = s.Key
	return nil
}
