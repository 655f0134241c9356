// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Client configuration.
//
// Configuration lives at ~/.dark/config.toml. Precedence, lowest to
// highest: built-in defaults, the config file, environment variables
// (DARK_API_URL, DARK_THEME, DARK_HOME).
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/darkvoid-labs/dark-tui/internal/util"
)

// =============================================================================
// TYPES
// =============================================================================

// Config is the full client configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	UI     UIConfig     `toml:"ui"`
	Typing TypingConfig `toml:"typing"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// UIConfig configures presentation defaults. These seed the persisted
// preferences on first run; after that the state store wins.
type UIConfig struct {
	Theme              string `toml:"theme"`
	SyntaxHighlighting bool   `toml:"syntax_highlighting"`
	EnhancedRendering  bool   `toml:"enhanced_rendering"`
}

// TypingConfig configures the typing animation.
type TypingConfig struct {
	// IntervalMillis is the delay between revealed characters.
	IntervalMillis int `toml:"interval_millis"`
}

// Interval returns the per-character delay as a duration.
func (t TypingConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMillis) * time.Millisecond
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 30,
		},
		UI: UIConfig{
			Theme:              "dark",
			SyntaxHighlighting: true,
			EnhancedRendering:  true,
		},
		Typing: TypingConfig{
			IntervalMillis: 20,
		},
	}
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// Dir returns the dark-tui configuration directory. DARK_HOME overrides
// the default ~/.dark.
func Dir() (string, error) {
	if custom := os.Getenv("DARK_HOME"); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".dark"), nil
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// StatePath returns the state database location.
func StatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

// HistoryPath returns the REPL input-history file location.
func HistoryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "repl_history"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, layering it over defaults and applying
// environment overrides last. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath reads a specific config file over defaults. Used by the
// watcher and by tests.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to its default location atomically.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// applyEnvOverrides layers environment variables on top of whatever was
// loaded.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DARK_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("DARK_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// Validate rejects configurations the client cannot run with and quietly
// repairs values that merely drifted out of range.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = Default().API.TimeoutSeconds
	}
	if c.Typing.IntervalMillis <= 0 {
		c.Typing.IntervalMillis = Default().Typing.IntervalMillis
	}
	switch c.UI.Theme {
	case "dark", "light", "blue":
	default:
		c.UI.Theme = "dark"
	}
	return nil
}
