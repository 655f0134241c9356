// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the dark-tui client.
package components

import (
	"strings"

	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// =============================================================================
// STORY BLOCK RENDERER
// =============================================================================

// StoryBlock renders a long-form narrative response with a decorated
// title and preserved paragraph spacing.
type StoryBlock struct {
	Title    string
	Body     string
	MaxWidth int
}

// NewStoryBlock creates a story block with defaults.
func NewStoryBlock(title, body string) StoryBlock {
	return StoryBlock{
		Title:    title,
		Body:     body,
		MaxWidth: 80,
	}
}

// Render renders the story inside its themed container.
func (s StoryBlock) Render(theme *styles.Theme) string {
	maxWidth := s.MaxWidth - 6
	if maxWidth < 24 {
		maxWidth = 24
	}

	title := theme.StoryTitle.Width(maxWidth).Render("❦ " + s.Title + " ❦")

	// Collapse runs of blank lines to single paragraph breaks.
	var paragraphs []string
	for _, p := range strings.Split(s.Body, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	body := strings.Join(paragraphs, "\n\n")

	return theme.StoryBlock.
		MaxWidth(s.MaxWidth).
		Render(title + "\n\n" + body)
}
