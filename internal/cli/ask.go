// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
//
// Handles "dark ask", which sends a single message and prints the
// reply. Output is plain when stdout is piped, styled on a TTY.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/config"
	"github.com/darkvoid-labs/dark-tui/internal/render"
	"github.com/darkvoid-labs/dark-tui/internal/session"
	"github.com/darkvoid-labs/dark-tui/internal/store"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// HandleAsk sends one question and exits.
func HandleAsk(args Args) {
	if args.Query == "" {
		fmt.Fprintln(os.Stderr, "usage: dark ask \"question\"")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var userID string
	if statePath, err := config.StatePath(); err == nil {
		if st, err := store.Open(statePath); err == nil {
			sessions := session.NewManager(st)
			userID = sessions.Session().UserID
			sessions.RecordMessage()
			st.Close()
		}
	}

	client := api.NewClient(api.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout()})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout())
	defer cancel()
	resp, err := client.Chat(ctx, api.ChatRequest{Message: args.Query, UserID: userID})
	if err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(1)
	}

	if !IsStdoutTTY() {
		fmt.Println(resp.Response)
		return
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	renderer := render.New(theme, render.Options{
		Width:              TerminalWidth(),
		SyntaxHighlighting: cfg.UI.SyntaxHighlighting,
		Enhanced:           false,
	})
	fmt.Println(renderer.Render(resp.Response))
}
