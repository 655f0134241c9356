// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.API.Timeout())
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.UI.Theme)
	}
	if !cfg.UI.SyntaxHighlighting || !cfg.UI.EnhancedRendering {
		t.Errorf("rendering defaults = %+v", cfg.UI)
	}
	if cfg.Typing.Interval() != 20*time.Millisecond {
		t.Errorf("typing Interval() = %v, want 20ms", cfg.Typing.Interval())
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[api]
base_url = "http://example.com:9000"
timeout_seconds = 5

[ui]
theme = "blue"
syntax_highlighting = false

[typing]
interval_millis = 40
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.API.BaseURL != "http://example.com:9000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d, want 5", cfg.API.TimeoutSeconds)
	}
	if cfg.UI.Theme != "blue" {
		t.Errorf("Theme = %q, want blue", cfg.UI.Theme)
	}
	if cfg.UI.SyntaxHighlighting {
		t.Error("SyntaxHighlighting = true, want false")
	}
	if cfg.Typing.IntervalMillis != 40 {
		t.Errorf("IntervalMillis = %d, want 40", cfg.Typing.IntervalMillis)
	}
}

func TestLoadFromPathPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0600)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
	// Untouched sections keep their defaults.
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DARK_API_URL", "http://env-host:7000")
	t.Setenv("DARK_THEME", "blue")
	t.Setenv("DARK_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://env-host:7000" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.UI.Theme != "blue" {
		t.Errorf("Theme = %q, want blue", cfg.UI.Theme)
	}
}

func TestValidateRepairsOutOfRangeValues(t *testing.T) {
	cfg := Default()
	cfg.API.TimeoutSeconds = -1
	cfg.Typing.IntervalMillis = 0
	cfg.UI.Theme = "neon"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want repaired default", cfg.API.TimeoutSeconds)
	}
	if cfg.Typing.IntervalMillis != 20 {
		t.Errorf("IntervalMillis = %d, want repaired default", cfg.Typing.IntervalMillis)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestValidateRejectsEmptyBaseURL(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil for empty base_url, want error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("DARK_HOME", t.TempDir())

	cfg := Default()
	cfg.UI.Theme = "blue"
	cfg.Typing.IntervalMillis = 35
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.UI.Theme != "blue" || loaded.Typing.IntervalMillis != 35 {
		t.Errorf("round trip = %+v", loaded)
	}
}

func TestDirRespectsDarkHome(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("DARK_HOME", custom)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if dir != custom {
		t.Errorf("Dir() = %q, want %q", dir, custom)
	}

	path, _ := Path()
	if path != filepath.Join(custom, "config.toml") {
		t.Errorf("Path() = %q", path)
	}
}
