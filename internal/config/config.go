// Package config manages application configuration from environment variables and .env files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Configuration keys.
const (
	KeyServerName = "TODOKIT_SERVER_NAME"
	KeyToolsetID  = "TODOKIT_TOOLSET_ID"
	KeyLogLevel   = "TODOKIT_LOG_LEVEL"
)

const (
	DefaultServerName = "todokit"
	DefaultLogLevel   = "info"
)

// Config holds the application configuration.
type Config struct {
	ServerName string
	// ToolsetID names the served toolset. Empty means one is generated at startup.
	ToolsetID string
	LogLevel  string
}

// Load reads configuration from a .env file in the specified directory.
// If the .env file doesn't exist, it falls back to global config (~/.todokit/config),
// then to environment variables and defaults.
func Load(dir string) (*Config, error) {
	// Read local .env file if it exists
	localEnvMap, err := godotenv.Read(GetConfigPath(dir))
	if err != nil {
		localEnvMap = make(map[string]string)
	}

	// Read global config file
	globalEnvMap, err := godotenv.Read(GetGlobalConfigPath())
	if err != nil {
		globalEnvMap = make(map[string]string)
	}

	// Precedence: local > global > env > default
	lookup := func(key, defaultValue string) string {
		if value, ok := localEnvMap[key]; ok && value != "" {
			return value
		}
		if value, ok := globalEnvMap[key]; ok && value != "" {
			return value
		}
		if value := os.Getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		ServerName: lookup(KeyServerName, DefaultServerName),
		ToolsetID:  lookup(KeyToolsetID, ""),
		LogLevel:   strings.ToLower(lookup(KeyLogLevel, DefaultLogLevel)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required fields are set and the log level is known.
func (c *Config) Validate() error {
	var problems []string

	if c.ServerName == "" {
		problems = append(problems, KeyServerName+" is required")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}

	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%s %q is not one of debug, info, warn, error", KeyLogLevel, s)
}

// GetConfigPath returns the full path to the .env file in the given directory.
func GetConfigPath(dir string) string {
	return filepath.Join(dir, ".env")
}

// Set updates or creates a configuration value in the .env file.
func Set(dir, key, value string) error {
	envPath := GetConfigPath(dir)

	envMap, err := godotenv.Read(envPath)
	if err != nil {
		envMap = make(map[string]string)
	}

	envMap[key] = value

	return godotenv.Write(envMap, envPath)
}

// Get retrieves a configuration value from the .env file.
func Get(dir, key string) (string, error) {
	envMap, err := godotenv.Read(GetConfigPath(dir))
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}

	value, ok := envMap[key]
	if !ok {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}

	return value, nil
}

// getValueOrDefault gets a value from env map, falling back to system env var, then default.
func getValueOrDefault(envMap map[string]string, key, defaultValue string) string {
	if value, ok := envMap[key]; ok && value != "" {
		return value
	}
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
