// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the dark
// TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN
// =============================================================================

var welcomeLogo = strings.Join([]string{
	`█▀▄ ▄▀█ █▀█ █▄▀`,
	`█▄▀ █▀█ █▀▄ █ █`,
}, "\n")

// Welcome is the empty-conversation banner shown before the first
// message.
type Welcome struct {
	Version string
	Width   int
	Height  int
	theme   *styles.Theme
}

// NewWelcome creates the welcome banner.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{Version: "dev", Width: 80, Height: 24, theme: theme}
}

// SetSize updates the banner dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.Width = width
	w.Height = height
}

// Render produces the centered banner.
func (w Welcome) Render() string {
	t := w.theme

	boxWidth := 46
	if w.Width < 54 {
		boxWidth = w.Width - 8
	}
	if boxWidth < 24 {
		boxWidth = 24
	}

	hint := func(k, desc string) string {
		return t.WelcomeKey.Render(k) + t.WelcomeHint.Render(" "+desc)
	}

	lines := []string{
		t.WelcomeLogo.Render(welcomeLogo),
		"",
		t.WelcomeHint.Render("Ask anything. Darkness answers."),
		"",
		hint("enter", "send") + "   " + hint("ctrl+t", "theme"),
		hint("ctrl+n", "new chat") + "   " + hint("ctrl+c", "quit"),
		"",
		t.SidebarMeta.Render("v" + w.Version),
	}

	box := t.WelcomeBox.Width(boxWidth).Render(
		lipgloss.JoinVertical(lipgloss.Center, lines...))

	if w.Height <= 0 {
		return box
	}
	return lipgloss.Place(w.Width, w.Height, lipgloss.Center, lipgloss.Center, box)
}
