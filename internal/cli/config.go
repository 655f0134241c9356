// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration subcommand.
//
// Handles "dark config":
//   dark config            Show current configuration
//   dark config show       Same
//   dark config path       Print the config file path
//   dark config set K V    Set a key and save
//
// Settable keys: api.base_url, api.timeout_seconds, ui.theme,
// ui.syntax_highlighting, ui.enhanced_rendering, typing.interval_millis.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/darkvoid-labs/dark-tui/internal/config"
)

// HandleConfig dispatches the config subcommand.
func HandleConfig(args Args) {
	switch args.Subcommand {
	case "", "show":
		showConfig()
	case "path":
		path, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			fmt.Fprintln(os.Stderr, "usage: dark config set KEY VALUE")
			os.Exit(2)
		}
		setConfig(args.ConfigKey, args.ConfigVal)
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand: %s\n", args.Subcommand)
		os.Exit(2)
	}
}

func showConfig() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("api.base_url           = %s\n", cfg.API.BaseURL)
	fmt.Printf("api.timeout_seconds    = %d\n", cfg.API.TimeoutSeconds)
	fmt.Printf("ui.theme               = %s\n", cfg.UI.Theme)
	fmt.Printf("ui.syntax_highlighting = %t\n", cfg.UI.SyntaxHighlighting)
	fmt.Printf("ui.enhanced_rendering  = %t\n", cfg.UI.EnhancedRendering)
	fmt.Printf("typing.interval_millis = %d\n", cfg.Typing.IntervalMillis)
}

func setConfig(key, value string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	switch key {
	case "api.base_url":
		cfg.API.BaseURL = value
	case "api.timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s must be a number\n", key)
			os.Exit(2)
		}
		cfg.API.TimeoutSeconds = n
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.syntax_highlighting":
		cfg.UI.SyntaxHighlighting = value == "true"
	case "ui.enhanced_rendering":
		cfg.UI.EnhancedRendering = value == "true"
	case "typing.interval_millis":
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s must be a number\n", key)
			os.Exit(2)
		}
		cfg.Typing.IntervalMillis = n
	default:
		fmt.Fprintf(os.Stderr, "unknown config key: %s\n", key)
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s = %s\n", key, value)
}
