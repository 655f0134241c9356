// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and dispatch for dark.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat // plain-terminal REPL
	CmdAsk
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	Plain   bool   // force the line-mode REPL instead of the TUI
	Theme   string // override the configured theme

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `dark - a terminal client for the Dark AI chat service

Usage:
  dark                     Start the TUI (default)
  dark chat                Line-mode chat REPL (also: dark --plain)
  dark ask "question"      Ask a single question and exit
  dark status, s           Check backend connectivity
  dark config [show|set]   Configuration
  dark version, v          Show version
  dark help, h             Show this help

Flags:
  --plain            Use the line-mode REPL instead of the TUI
  --theme NAME       Theme for this run (dark, light, blue)
  -q, --quiet        Minimal output
  -v, --verbose      Verbose output

Environment:
  DARK_HOME          Override the state directory (default ~/.dark)
  DARK_API_URL       Override the backend URL
  DARK_THEME         Override the theme

Config file: ~/.dark/config.toml
`

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, Args) {
	args := Args{}
	rest := make([]string, 0, len(os.Args))

	// Global flags first; anything else stays positional.
	for _, a := range os.Args[1:] {
		switch {
		case a == "--plain":
			args.Plain = true
		case a == "-q" || a == "--quiet":
			args.Quiet = true
		case a == "-v" || a == "--verbose":
			args.Verbose = true
		case strings.HasPrefix(a, "--theme="):
			args.Theme = strings.TrimPrefix(a, "--theme=")
		default:
			rest = append(rest, a)
		}
	}

	// --theme NAME form
	for i := 0; i < len(rest)-1; i++ {
		if rest[i] == "--theme" {
			args.Theme = rest[i+1]
			rest = append(rest[:i], rest[i+2:]...)
			break
		}
	}

	if len(rest) == 0 {
		if args.Plain {
			return CmdChat, args
		}
		return CmdTUI, args
	}

	cmd := rest[0]
	args.Raw = rest[1:]

	switch cmd {
	case "chat":
		return CmdChat, args
	case "ask":
		args.Query = strings.Join(args.Raw, " ")
		return CmdAsk, args
	case "status", "s":
		return CmdStatus, args
	case "config":
		p := NewArgParser(args.Raw)
		args.Subcommand = p.Subcommand()
		if vals := p.Positional(); len(vals) > 1 {
			args.ConfigKey = vals[1]
			if len(vals) > 2 {
				args.ConfigVal = vals[2]
			}
		}
		return CmdConfig, args
	case "version", "v", "--version":
		return CmdVersion, args
	case "help", "h", "--help", "-h":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", cmd, usageText)
		os.Exit(2)
		return CmdHelp, args
	}
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints build information.
func HandleVersion() {
	fmt.Printf("dark %s (%s) built %s %s/%s\n",
		Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
