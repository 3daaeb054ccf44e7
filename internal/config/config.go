// Package config handles loading taskdeck's config.toml.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/taskdeck/taskdeck/internal/paths"
)

// EnvStateDir overrides the storage directory when set. It takes
// precedence over both the config file and the built-in default.
const EnvStateDir = "TASKDECK_STATE_DIR"

// Config represents the config.toml configuration file.
type Config struct {
	Storage  Storage  `toml:"storage"`
	Registry Registry `toml:"registry"`
}

// Storage contains storage-related configuration.
type Storage struct {
	// Dir is the directory the task store lives in.
	// Defaults to ~/.local/state/taskdeck.
	Dir string `toml:"dir"`
}

// Registry contains category/tag registry configuration.
type Registry struct {
	// Path is a TOML file defining custom categories and tags.
	// When empty, the built-in registry is used.
	Path string `toml:"path"`
}

// Load reads the global config file. Returns an empty config if the
// file does not exist.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.Storage.Dir = strings.TrimSpace(cfg.Storage.Dir)
	cfg.Registry.Path = strings.TrimSpace(cfg.Registry.Path)
	return &cfg, nil
}

// StateDir resolves the storage directory: the TASKDECK_STATE_DIR
// environment variable wins, then the config file, then the default.
func (c *Config) StateDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvStateDir)); dir != "" {
		return dir, nil
	}
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	return paths.DefaultStateDir()
}
