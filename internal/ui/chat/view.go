// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - Rendering for the chat screen.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/darkvoid-labs/dark-tui/internal/ui/components"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

const (
	sidebarWidthWide   = 28
	sidebarWidthMedium = 22
)

// =============================================================================
// LAYOUT MATH
// =============================================================================

// sidebarWidth returns the sidebar column width for the current layout,
// zero when the sidebar is hidden.
func (m *Model) sidebarWidth() int {
	switch m.theme.Layout() {
	case styles.LayoutWide:
		return sidebarWidthWide
	case styles.LayoutMedium:
		return sidebarWidthMedium
	default:
		return 0
	}
}

// contentWidth is the width available to the chat column.
func (m *Model) contentWidth() int {
	w := m.width - m.sidebarWidth()
	if w < 20 {
		w = 20
	}
	return w
}

// chatHeight is the viewport height: everything minus the header,
// thinking line, input box, and status bar.
func (m *Model) chatHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the whole screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()
	body := m.renderBody()
	thinking := m.renderThinking()
	input := m.renderInput()
	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, thinking, input, status)
}

func (m *Model) renderHeader() string {
	h := components.NewHeader(m.theme)
	h.SetWidth(m.width)
	h.Online = m.online
	if m.current != nil && !m.current.IsEmpty() {
		h.Title = m.current.Title
	}
	if sess := m.sessions.Session(); !sess.IsAnonymous() {
		h.UserName = sess.Name
	}
	return h.Render()
}

func (m *Model) renderBody() string {
	chat := m.viewport.View()

	sw := m.sidebarWidth()
	if sw == 0 {
		return chat
	}

	sb := components.NewSidebar(m.theme)
	sb.Records = m.ledger.VisibleSlice()
	sb.Selected = m.selected
	sb.SetSize(sw, m.chatHeight())
	return lipgloss.JoinHorizontal(lipgloss.Top, sb.Render(), chat)
}

func (m *Model) renderThinking() string {
	if m.phase != phaseWaiting {
		return ""
	}
	return m.theme.Spinner.Render(m.spin.View()) +
		m.theme.ThinkingText.Render(" Dark is thinking...")
}

func (m *Model) renderInput() string {
	prompt := m.input.View()
	if m.phase == phaseSignIn {
		label := m.theme.InfoStyle.Render("Five free messages used. ")
		prompt = label + prompt
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(prompt)
}

func (m *Model) renderStatus() string {
	bar := components.NewStatusBar(m.theme)
	bar.SetWidth(m.width)
	bar.Note = m.statusNote
	bar.Premium = m.sessions.Session().IsPremium
	bar.Keys = m.keys.ShortHelp()
	return bar.Render()
}

// =============================================================================
// CHAT CONTENT
// =============================================================================

// refreshViewport rebuilds the viewport content and scrolls to the
// bottom.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderChat())
	m.viewport.GotoBottom()
}

// renderChat lays out the current conversation's messages, the typing
// line when an animation is running, and the welcome banner when there
// is nothing to show.
func (m *Model) renderChat() string {
	width := m.contentWidth()

	if m.current == nil || (m.current.IsEmpty() && m.showWelcome) {
		w := components.NewWelcome(m.theme)
		w.Version = m.version
		w.SetSize(width, m.chatHeight())
		return w.Render()
	}

	var parts []string
	for _, msg := range m.current.Messages {
		v := components.NewMessageView(msg)
		v.MaxWidth = width
		parts = append(parts, v.Render(m.theme))
	}

	if m.phase == phaseTyping && m.presenter != nil && m.typingConvID == m.current.ID {
		cursor := styles.TypingCursor[0]
		if !m.cursorOn {
			cursor = styles.TypingCursor[1]
		}
		parts = append(parts, components.TypingView(m.presenter.Visible(), cursor, width, m.theme))
	}

	return strings.Join(parts, "\n\n")
}
