package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetGlobalConfigDir(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	expected := filepath.Join(tempHome, ".todokit")
	if dir := GetGlobalConfigDir(); dir != expected {
		t.Errorf("expected %s, got %s", expected, dir)
	}
}

func TestEnsureGlobalConfigDir(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	if err := EnsureGlobalConfigDir(); err != nil {
		t.Fatalf("failed to ensure global config dir: %v", err)
	}

	expectedDir := filepath.Join(tempHome, ".todokit")
	if _, err := os.Stat(expectedDir); os.IsNotExist(err) {
		t.Errorf("global config directory was not created at %s", expectedDir)
	}
}

func TestLoadGlobalConfig_WithValidFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(KeyServerName, "")
	t.Setenv(KeyLogLevel, "")

	configDir := filepath.Join(tempHome, ".todokit")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	content := `TODOKIT_SERVER_NAME=global-todos
TODOKIT_LOG_LEVEL=ERROR
`
	if err := os.WriteFile(filepath.Join(configDir, "config"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("failed to load global config: %v", err)
	}

	if cfg.ServerName != "global-todos" {
		t.Errorf("expected global-todos, got %s", cfg.ServerName)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected error, got %s", cfg.LogLevel)
	}
}

func TestLoadGlobalConfig_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(KeyServerName, "")
	t.Setenv(KeyLogLevel, "")

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("expected defaults without a global file: %v", err)
	}
	if cfg.ServerName != DefaultServerName {
		t.Errorf("expected default server name, got %s", cfg.ServerName)
	}
}

func TestSetAndGetGlobalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := SetGlobalConfig(KeyToolsetID, "shared"); err != nil {
		t.Fatalf("failed to set global config: %v", err)
	}

	value, err := GetGlobalConfig(KeyToolsetID)
	if err != nil {
		t.Fatalf("failed to get global config: %v", err)
	}
	if value != "shared" {
		t.Errorf("expected shared, got %s", value)
	}

	if _, err := GetGlobalConfig("MISSING_KEY"); err == nil {
		t.Error("expected error for missing key")
	}
}
