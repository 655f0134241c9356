// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the dark
// TUI.
package components

import (
	"strings"

	"github.com/darkvoid-labs/dark-tui/internal/history"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
	"github.com/darkvoid-labs/dark-tui/internal/util"
)

// =============================================================================
// SIDEBAR COMPONENT
// =============================================================================

// Sidebar lists recent conversations, newest first.
type Sidebar struct {
	Records  []history.Record
	Selected int
	Width    int
	Height   int
	theme    *styles.Theme
}

// NewSidebar creates a sidebar.
func NewSidebar(theme *styles.Theme) *Sidebar {
	return &Sidebar{Width: 24, theme: theme}
}

// SetSize updates the sidebar dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Render produces the sidebar column.
func (s *Sidebar) Render() string {
	t := s.theme
	inner := s.Width - 4
	if inner < 8 {
		inner = 8
	}

	var b strings.Builder
	b.WriteString(t.SidebarTitle.Render("Recent"))
	b.WriteString("\n")

	if len(s.Records) == 0 {
		b.WriteString(t.SidebarMeta.Render("No conversations yet"))
	}
	for i, rec := range s.Records {
		title := util.TruncateWidth(rec.Title, inner)
		if i == s.Selected {
			b.WriteString(t.SidebarItemSelected.Render("▸ " + title))
		} else {
			b.WriteString(t.SidebarItem.Render("  " + title))
		}
		if i < len(s.Records)-1 {
			b.WriteString("\n")
		}
	}

	col := t.Sidebar.Width(s.Width)
	if s.Height > 0 {
		col = col.Height(s.Height)
	}
	return col.Render(b.String())
}
