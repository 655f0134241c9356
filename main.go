// dark - a terminal client for the Dark AI chat service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/cli"
	"github.com/darkvoid-labs/dark-tui/internal/config"
	"github.com/darkvoid-labs/dark-tui/internal/history"
	"github.com/darkvoid-labs/dark-tui/internal/session"
	"github.com/darkvoid-labs/dark-tui/internal/store"
	"github.com/darkvoid-labs/dark-tui/internal/ui/chat"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		if !cli.IsTTY() || !cli.IsStdoutTTY() {
			// Piped or scripted: degrade to the line-mode REPL.
			cli.HandleChat(args)
			return
		}
		runTUI(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// runTUI wires the full stack and hands control to Bubble Tea.
func runTUI(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}

	statePath, err := config.StatePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "state: %v\n", err)
		os.Exit(1)
	}
	st, err := store.Open(statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "state: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	sessions := session.NewManager(st)
	if args.Theme != "" {
		sessions.SetTheme(args.Theme)
	}

	records, err := st.LoadRecords()
	if err != nil {
		records = nil
	}
	ledger := history.Load(records)

	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})

	theme := styles.NewTheme(sessions.Prefs().Theme)
	m := chat.New(cfg, theme, client, sessions, ledger, st)
	m.SetVersion(Version)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Hot-reload the config file while the TUI runs. Best effort; the
	// watcher failing never blocks startup.
	if cfgPath, err := config.Path(); err == nil {
		watcher, err := config.NewWatcher(cfgPath, func(c *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: c})
		})
		if err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dark: %v\n", err)
		os.Exit(1)
	}

	st.SaveRecords(ledger.All())
}
