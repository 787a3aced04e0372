// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultMaxMissions is the mission cap used when no override is given.
const DefaultMaxMissions = 4

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or can be
// overridden per-flag on the CLI.
type Config struct {
	// Data overrides
	Catalog   string `json:"catalog,omitempty"`   // Path to a skill catalog JSON file replacing the embedded one
	Templates string `json:"templates,omitempty"` // Path to a mission templates JSON file replacing the embedded one

	// Behavior
	MaxMissions int  `json:"max_missions,omitempty"` // Mission cap per generation batch
	Verbose     bool `json:"verbose,omitempty"`      // Print detailed debug information

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or console
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	return &Config{
		MaxMissions: DefaultMaxMissions,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// LoadConfig loads configuration from a JSON file, applying defaults for
// fields the file omits.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays MISSION_ENGINE_* environment variables onto the
// configuration. Environment wins over file values; flags are merged later
// by the CLI and win over both.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MISSION_ENGINE_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("MISSION_ENGINE_TEMPLATES"); v != "" {
		c.Templates = v
	}
	if v := os.Getenv("MISSION_ENGINE_MAX_MISSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxMissions = n
		}
	}
	if v := os.Getenv("MISSION_ENGINE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MISSION_ENGINE_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxMissions < 0 {
		return fmt.Errorf("config error: 'max_missions' must be non-negative")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: 'log_level' must be one of debug, info, warn, error")
	}

	switch c.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or console")
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	if c.Templates != "" {
		if _, err := os.Stat(c.Templates); os.IsNotExist(err) {
			return fmt.Errorf("config error: templates file not found: %s", c.Templates)
		}
	}

	return nil
}
