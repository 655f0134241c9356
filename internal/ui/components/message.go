// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the dark
// TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/darkvoid-labs/dark-tui/internal/model"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLES
// =============================================================================

// MessageView renders one chat message as a bubble. User messages hug
// the right edge, assistant messages the left.
type MessageView struct {
	Message  model.Message
	MaxWidth int
}

// NewMessageView wraps a message for display.
func NewMessageView(msg model.Message) MessageView {
	return MessageView{Message: msg, MaxWidth: 80}
}

// Render produces the styled bubble.
func (v MessageView) Render(theme *styles.Theme) string {
	width := v.MaxWidth
	if width <= 0 {
		width = 80
	}
	bubbleMax := width * 3 / 4
	if bubbleMax < 20 {
		bubbleMax = width
	}

	switch {
	case v.Message.IsError:
		bubble := theme.ErrorBubble.MaxWidth(bubbleMax).Render(v.Message.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble)
	case v.Message.Role == model.RoleUser:
		bubble := theme.UserBubble.MaxWidth(bubbleMax).Render(v.Message.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	default:
		// Assistant output is pre-rendered; code and story containers
		// carry their own framing and skip the bubble.
		return theme.BotBubble.MaxWidth(width).Render(v.Message.Display())
	}
}

// TypingView renders the in-progress typing line with a cursor frame.
func TypingView(visible, cursor string, maxWidth int, theme *styles.Theme) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	return theme.BotBubble.MaxWidth(maxWidth).Render(visible + cursor)
}
