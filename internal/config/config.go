package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Config represents the tripline configuration
type Config struct {
	Version string `json:"version"`
	Actor   string `json:"actor,omitempty"`   // Recorded on trip events
	DBPath  string `json:"db_path,omitempty"` // Overrides ~/.tripline/tripline.db
}

// Path returns the config file location for dir.
func Path(dir string) string {
	return filepath.Join(dir, ".tripline", "config.json")
}

// LoadConfig reads .tripline/config.json from the specified directory.
// Returns an error wrapping os.ErrNotExist if no config is present.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the config from dir, falling back to defaults when
// no config file exists. A malformed file is still an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if cfg.Actor == "" {
		cfg.Actor = DefaultActor()
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	configDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create .tripline dir: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Actor:   DefaultActor(),
	}
}

// DefaultActor returns the login name of the current user, or "unknown".
func DefaultActor() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "unknown"
}
