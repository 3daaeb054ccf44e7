package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	configDir := filepath.Join(homeDir, ".config", "taskdeck")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Storage.Dir != "" {
		t.Error("expected empty storage dir")
	}
	if cfg.Registry.Path != "" {
		t.Error("expected empty registry path")
	}
}

func TestLoad_Full(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeGlobalConfig(t, homeDir, `
[storage]
dir = "/tmp/tasks"

[registry]
path = "/tmp/registry.toml"
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Dir != "/tmp/tasks" {
		t.Errorf("Storage.Dir = %q, expected %q", cfg.Storage.Dir, "/tmp/tasks")
	}
	if cfg.Registry.Path != "/tmp/registry.toml" {
		t.Errorf("Registry.Path = %q, expected %q", cfg.Registry.Path, "/tmp/registry.toml")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeGlobalConfig(t, homeDir, `this is not valid toml [`)

	if _, err := config.Load(); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestStateDir_Default(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	t.Setenv(config.EnvStateDir, "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("failed to resolve state dir: %v", err)
	}

	expected := filepath.Join(homeDir, ".local", "state", "taskdeck")
	if dir != expected {
		t.Errorf("StateDir = %q, expected %q", dir, expected)
	}
}

func TestStateDir_ConfigOverridesDefault(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	t.Setenv(config.EnvStateDir, "")

	writeGlobalConfig(t, homeDir, `
[storage]
dir = "/tmp/custom-tasks"
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("failed to resolve state dir: %v", err)
	}
	if dir != "/tmp/custom-tasks" {
		t.Errorf("StateDir = %q, expected %q", dir, "/tmp/custom-tasks")
	}
}

func TestStateDir_EnvOverridesConfig(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeGlobalConfig(t, homeDir, `
[storage]
dir = "/tmp/custom-tasks"
`)
	t.Setenv(config.EnvStateDir, "/tmp/env-tasks")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("failed to resolve state dir: %v", err)
	}
	if dir != "/tmp/env-tasks" {
		t.Errorf("StateDir = %q, expected %q", dir, "/tmp/env-tasks")
	}
}
