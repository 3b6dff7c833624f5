package config

import (
	"os"
	"path/filepath"
)

// TaskmasterPath returns the root directory for taskmaster data.
// It uses $TASKMASTER_PATH if set, otherwise defaults to ~/.taskmaster.
func TaskmasterPath() string {
	if v := os.Getenv("TASKMASTER_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskmaster")
	}
	return filepath.Join(home, ".taskmaster")
}

// ConfigPath returns the path to the taskmaster config file.
func ConfigPath() string {
	return filepath.Join(TaskmasterPath(), "config.jsonc")
}
