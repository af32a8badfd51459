package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fitz/todokit/internal/config"
)

// isolate points HOME at an empty directory and clears todokit env vars.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.KeyServerName, "")
	t.Setenv(config.KeyToolsetID, "")
	t.Setenv(config.KeyLogLevel, "")
}

func TestLoad_WithValidEnvFile(t *testing.T) {
	isolate(t)

	// Setup: Create temporary .env file
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	envContent := `TODOKIT_SERVER_NAME=my-todos
TODOKIT_TOOLSET_ID=session-1
TODOKIT_LOG_LEVEL=debug
`
	if err := os.WriteFile(envFile, []byte(envContent), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServerName != "my-todos" {
		t.Errorf("Expected ServerName to be 'my-todos', got '%s'", cfg.ServerName)
	}
	if cfg.ToolsetID != "session-1" {
		t.Errorf("Expected ToolsetID to be 'session-1', got '%s'", cfg.ToolsetID)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestLoad_WithMissingEnvFile(t *testing.T) {
	isolate(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() should not error with defaults: %v", err)
	}

	if cfg.ServerName != config.DefaultServerName {
		t.Errorf("Expected default ServerName, got '%s'", cfg.ServerName)
	}
	if cfg.ToolsetID != "" {
		t.Errorf("Expected empty ToolsetID, got '%s'", cfg.ToolsetID)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("Expected info level, got %v", cfg.SlogLevel())
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	t.Setenv(config.KeyServerName, "from-env")
	t.Setenv(config.KeyToolsetID, "env-id")

	if err := config.SetGlobalConfig(config.KeyToolsetID, "global-id"); err != nil {
		t.Fatalf("SetGlobalConfig() failed: %v", err)
	}

	tmpDir := t.TempDir()
	if err := config.Set(tmpDir, config.KeyLogLevel, "warn"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServerName != "from-env" {
		t.Errorf("Expected env ServerName, got '%s'", cfg.ServerName)
	}
	if cfg.ToolsetID != "global-id" {
		t.Errorf("Expected global config to win over env, got '%s'", cfg.ToolsetID)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected local log level, got '%s'", cfg.LogLevel)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolate(t)
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("TODOKIT_LOG_LEVEL=loud\n"), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	if _, err := config.Load(tmpDir); err == nil {
		t.Fatal("Expected validation error for unknown log level")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"all fields", config.Config{ServerName: "todokit", LogLevel: "info"}, false},
		{"empty level", config.Config{ServerName: "todokit"}, false},
		{"missing name", config.Config{LogLevel: "info"}, true},
		{"bad level", config.Config{ServerName: "todokit", LogLevel: "trace"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	expectedPath := filepath.Join(tmpDir, ".env")

	path := config.GetConfigPath(tmpDir)
	if path != expectedPath {
		t.Errorf("Expected config path '%s', got '%s'", expectedPath, path)
	}
}

func TestSet_UpdatesEnvFile(t *testing.T) {
	isolate(t)
	tmpDir := t.TempDir()

	if err := config.Set(tmpDir, config.KeyServerName, "renamed"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() failed after Set(): %v", err)
	}

	if cfg.ServerName != "renamed" {
		t.Errorf("Expected ServerName 'renamed', got '%s'", cfg.ServerName)
	}
}

func TestGet_RetrievesValue(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envFile, []byte(`TODOKIT_TOOLSET_ID=abc`), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	value, err := config.Get(tmpDir, config.KeyToolsetID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	if value != "abc" {
		t.Errorf("Expected value 'abc', got '%s'", value)
	}
}

func TestGet_NonExistentKey(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := config.Get(tmpDir, "DOES_NOT_EXIST"); err == nil {
		t.Error("Get() should return error for non-existent key")
	}
}
