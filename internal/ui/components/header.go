// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the dark
// TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar: app name on the left, the current
// conversation title and connection state on the right.
type Header struct {
	Title    string // conversation title
	Online   bool
	UserName string // empty while anonymous
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Online: true,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// Render produces the header line.
func (h *Header) Render() string {
	t := h.theme

	left := t.HeaderTitle.Render("◆ dark")
	if h.UserName != "" {
		left += t.HeaderSubtitle.Render("  " + h.UserName)
	}

	status := "● online"
	style := t.SuccessStyle
	if !h.Online {
		status = "○ offline"
		style = t.ErrorStyle
	}
	right := t.HeaderSubtitle.Render(h.Title)
	if right != "" {
		right += "  "
	}
	right += style.Render(status)

	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return t.Header.Width(h.Width).Render(line)
}
