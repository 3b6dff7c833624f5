package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Load reads a JSONC config file, strips comments and trailing commas,
// unmarshals it into Config, and applies defaults. A missing file is not an
// error: the defaults alone form a working configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("standardize config: %w", err)
		}
		if err := json.Unmarshal(std, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 18620
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "file"
	}
	if cfg.Storage.Slot == "" {
		cfg.Storage.Slot = "taskmaster-tasks"
	}
	if cfg.Storage.Path == "" {
		switch cfg.Storage.Driver {
		case "sqlite":
			cfg.Storage.Path = filepath.Join(TaskmasterPath(), "taskmaster.db")
		default:
			cfg.Storage.Path = filepath.Join(TaskmasterPath(), "tasks.json")
		}
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "taskmaster-tasks"
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = "/"
	}
	if cfg.Cookie.SameSite == "" {
		cfg.Cookie.SameSite = "lax"
	}
}
