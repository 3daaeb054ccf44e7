// Package paths resolves taskdeck's default filesystem locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStateDir returns the default taskdeck state directory.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "taskdeck"), nil
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "taskdeck", "config.toml"), nil
}
