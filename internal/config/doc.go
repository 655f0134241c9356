// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for dark-tui.
//
// # Key Types
//
//   - Config: the full client configuration
//   - APIConfig: backend URL and timeout
//   - UIConfig: theme and rendering defaults
//   - TypingConfig: typing animation timing
//   - Watcher: hot-reload on config file changes
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (DARK_API_URL, DARK_THEME, DARK_HOME)
//   - ~/.dark/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	url := cfg.API.BaseURL
//	interval := cfg.Typing.Interval()
package config
