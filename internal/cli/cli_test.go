// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func parseArgs(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"dark"}, argv...)
	defer func() { os.Args = saved }()
	return Parse()
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"default is TUI", nil, CmdTUI},
		{"plain flag routes to REPL", []string{"--plain"}, CmdChat},
		{"chat", []string{"chat"}, CmdChat},
		{"ask", []string{"ask", "hello"}, CmdAsk},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"config", []string{"config"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := parseArgs(t, tt.argv...)
			if cmd != tt.want {
				t.Errorf("Parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseAskJoinsQuery(t *testing.T) {
	_, args := parseArgs(t, "ask", "what", "is", "go")
	if args.Query != "what is go" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseArgs(t, "--theme=blue", "-q", "status")
	if cmd != CmdStatus {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Theme != "blue" {
		t.Errorf("Theme = %q", args.Theme)
	}
	if !args.Quiet {
		t.Error("Quiet not set")
	}
}

func TestParseThemeWithSpace(t *testing.T) {
	_, args := parseArgs(t, "--theme", "light", "chat")
	if args.Theme != "light" {
		t.Errorf("Theme = %q", args.Theme)
	}
}

func TestParseConfigSet(t *testing.T) {
	cmd, args := parseArgs(t, "config", "set", "ui.theme", "blue")
	if cmd != CmdConfig {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q", args.Subcommand)
	}
	if args.ConfigKey != "ui.theme" || args.ConfigVal != "blue" {
		t.Errorf("key/val = %q/%q", args.ConfigKey, args.ConfigVal)
	}
}

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"show", "--lines", "50", "--since=2024-01-01", "--json"})

	if got := p.Subcommand(); got != "show" {
		t.Errorf("Subcommand = %q", got)
	}
	if got := p.Flag("lines"); got != "50" {
		t.Errorf("lines = %q", got)
	}
	if got := p.Flag("since"); got != "2024-01-01" {
		t.Errorf("since = %q", got)
	}
	if !p.BoolFlag("json") {
		t.Error("json flag not set")
	}
	if p.BoolFlag("missing") {
		t.Error("missing flag reported set")
	}
}
