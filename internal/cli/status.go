// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend connectivity check.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/config"
	"github.com/darkvoid-labs/dark-tui/internal/session"
	"github.com/darkvoid-labs/dark-tui/internal/store"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// HandleStatus probes the backend and prints connection details.
func HandleStatus(args Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	client := api.NewClient(api.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout()})

	fmt.Printf("Backend:  %s\n", cfg.API.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout())
	defer cancel()

	start := time.Now()
	if err := client.Health(ctx); err != nil {
		fmt.Printf("Status:   %s\n", theme.ErrorStyle.Render("offline"))
		if args.Verbose {
			fmt.Printf("Error:    %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Status:   %s (%s)\n",
		theme.SuccessStyle.Render("online"),
		time.Since(start).Round(time.Millisecond))

	statePath, err := config.StatePath()
	if err != nil {
		return
	}
	st, err := store.Open(statePath)
	if err != nil {
		return
	}
	defer st.Close()

	sess := session.NewManager(st).Session()
	account := "anonymous"
	messages := sess.MessageCount
	if !sess.IsAnonymous() {
		account = sess.Name
		if sess.IsPremium {
			account += " (premium)"
		}
		// The backend's count is authoritative for named accounts.
		if profile, err := client.Profile(ctx, sess.UserID); err == nil {
			messages = profile.MessageCount
		}
	}
	fmt.Printf("Account:  %s\n", account)
	fmt.Printf("Messages: %d\n", messages)
}
