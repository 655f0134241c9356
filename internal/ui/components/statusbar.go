// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the dark
// TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: key hints, a transient note, and the
// premium badge.
type StatusBar struct {
	Width   int
	Note    string // transient message, shown in place of hints
	Premium bool
	Keys    []key.Binding
	theme   *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// Render produces the status line.
func (s *StatusBar) Render() string {
	t := s.theme

	var left string
	if s.Note != "" {
		left = t.InfoStyle.Render(s.Note)
	} else {
		var hints []string
		for _, b := range s.Keys {
			h := b.Help()
			hints = append(hints,
				t.ShortcutKey.Render(h.Key)+t.ShortcutDesc.Render(" "+h.Desc))
		}
		left = strings.Join(hints, t.ShortcutDesc.Render("  "))
	}

	var right string
	if s.Premium {
		right = t.PremiumBadge.Render(" PRO ")
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return t.StatusBar.Width(s.Width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + right)
}
