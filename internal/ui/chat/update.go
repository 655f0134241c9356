// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// update.go - Message handling for the chat screen.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/history"
	"github.com/darkvoid-labs/dark-tui/internal/model"
	"github.com/darkvoid-labs/dark-tui/internal/render"
	"github.com/darkvoid-labs/dark-tui/internal/typing"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TypeTickMsg:
		return m.handleTypeTick()
	case CursorBlinkMsg:
		m.cursorOn = !m.cursorOn
		if m.phase == phaseTyping {
			m.refreshViewport()
		}
		return m, cursorBlinkCmd(styles.CursorBlinkRate)
	case ResponseMsg:
		return m.handleResponse(msg)
	case RequestFailedMsg:
		return m.handleRequestFailed(msg)
	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case ConversationLoadedMsg:
		return m.handleConversationLoaded(msg)
	case ConversationDeletedMsg:
		if msg.Err != nil {
			m.statusNote = "Delete failed on the server"
		}
		return m, nil
	case SignInDoneMsg:
		return m.handleSignInDone(msg)
	case UpgradeDoneMsg:
		if msg.Err == nil && msg.Result.IsPremium {
			m.sessions.SetPremium(true)
			m.statusNote = "Premium unlocked"
		}
		return m, nil
	case HealthMsg:
		m.online = msg.Err == nil
		if msg.Err != nil {
			m.statusNote = api.UserMessage(msg.Err)
		}
		return m, nil
	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	content := m.contentWidth()
	m.renderer.SetWidth(content)
	m.input.Width = content - 4
	m.viewport.Width = content
	m.viewport.Height = m.chatHeight()
	m.ready = true

	m.rerenderAll()
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// KEYS
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseSignIn {
		return m.handleSignInKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persist()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Send):
		return m, m.handleSend()

	case key.Matches(msg, m.keys.Stop):
		return m.handleStop()

	case key.Matches(msg, m.keys.NewChat):
		m.startConversation()
		m.settlePhase()
		m.showWelcome = false
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.NextConv):
		return m, m.moveSelection(1)

	case key.Matches(msg, m.keys.PrevConv):
		return m, m.moveSelection(-1)

	case key.Matches(msg, m.keys.DeleteConv):
		return m.handleDelete()

	case key.Matches(msg, m.keys.CycleTheme):
		name := m.sessions.CycleTheme()
		m.theme.SetPalette(name)
		m.rerenderAll()
		m.refreshViewport()
		m.statusNote = "Theme: " + name
		return m, nil

	case key.Matches(msg, m.keys.ToggleCode):
		on := m.sessions.ToggleSyntaxHighlighting()
		m.applyRenderPrefs()
		if on {
			m.statusNote = "Syntax highlighting on"
		} else {
			m.statusNote = "Syntax highlighting off"
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleRich):
		on := m.sessions.ToggleEnhancedRendering()
		m.applyRenderPrefs()
		if on {
			m.statusNote = "Rich text on"
		} else {
			m.statusNote = "Rich text off"
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyLast):
		m.copyLastReply()
		return m, nil

	case key.Matches(msg, m.keys.Upgrade):
		sess := m.sessions.Session()
		if sess.IsPremium {
			m.statusNote = "Already premium"
			return m, nil
		}
		if sess.IsAnonymous() {
			m.statusNote = "Sign in before upgrading"
			return m, nil
		}
		m.statusNote = "Upgrading..."
		return m, upgradeCmd(m.client, sess.UserID, m.cfg.API.Timeout())

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persist()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Send):
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, nil
		}
		m.input.Reset()
		m.statusNote = "Creating your account..."
		return m, signInCmd(m.client, m.sessions.Session().UserID, name, m.cfg.API.Timeout())

	case key.Matches(msg, m.keys.Stop):
		// Back to the composer; the gate re-prompts on the next send.
		m.phase = phaseIdle
		m.input.Reset()
		m.input.Placeholder = "Message Dark..."
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SENDING
// =============================================================================

// handleSend validates and fires the current composer text. At most one
// request may be outstanding per conversation; a second Enter while
// waiting is refused before anything touches the wire.
func (m *Model) handleSend() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	if m.busy() || m.phase == phaseTyping {
		m.statusNote = "Waiting for the current reply"
		return nil
	}
	if m.sessions.NeedsSignIn() {
		m.phase = phaseSignIn
		m.input.Reset()
		m.input.Placeholder = "Pick a name to continue..."
		return nil
	}

	m.current.AddUserMessage(text)
	m.sessions.RecordMessage()
	m.input.Reset()
	m.showWelcome = false
	m.statusNote = ""

	m.inflight[m.current.ID] = true
	m.phase = phaseWaiting
	m.syncLedger()
	m.refreshViewport()

	req := api.ChatRequest{
		Message:        text,
		ConversationID: m.current.ID,
		UserID:         m.sessions.Session().UserID,
	}
	return tea.Batch(
		sendCmd(m.client, m.cancelMgr, req, m.cfg.API.Timeout()),
		m.spin.Tick,
	)
}

func (m *Model) handleStop() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseTyping:
		// Freeze the animation and jump straight to the final render.
		m.cancelMgr.stop()
		m.finalizeTyping()
	case phaseWaiting:
		m.cancelMgr.stop()
		if m.current != nil {
			delete(m.inflight, m.current.ID)
		}
		m.phase = phaseIdle
		m.statusNote = "Stopped"
	}
	return m, nil
}

// =============================================================================
// RESPONSES
// =============================================================================

func (m *Model) handleResponse(msg ResponseMsg) (tea.Model, tea.Cmd) {
	delete(m.inflight, msg.LocalID)

	// No entry means the conversation was deleted while the request was
	// in flight; its reply is dropped, not reparented.
	conv := m.conversations[msg.LocalID]
	if conv == nil {
		m.settlePhase()
		return m, nil
	}

	// The backend may assign its own conversation ID on the first
	// exchange; adopt it so history lines up across restarts.
	if msg.ConversationID != "" && msg.ConversationID != conv.ID {
		delete(m.conversations, conv.ID)
		m.ledger.Remove(conv.ID)
		conv.ID = msg.ConversationID
		m.conversations[conv.ID] = conv
	}

	// Animate only when the reply belongs to the conversation on
	// screen; background replies land fully rendered.
	if conv != m.current {
		conv.AddMessage(model.NewAssistantMessage(msg.Response, m.renderer.Render(msg.Response)))
		m.ledger.UpsertFront(conv.Record())
		m.persist()
		m.settlePhase()
		return m, nil
	}

	p := typing.NewPresenter(msg.Response)
	m.presenter = p
	m.typingConvID = conv.ID
	m.cancelMgr.setPresenter(p)
	m.phase = phaseTyping
	m.refreshViewport()
	return m, typeTickCmd(m.cfg.Typing.Interval())
}

func (m *Model) handleTypeTick() (tea.Model, tea.Cmd) {
	if m.phase != phaseTyping || m.presenter == nil {
		return m, nil
	}
	if !m.presenter.Step() {
		m.finalizeTyping()
		return m, nil
	}
	m.refreshViewport()
	return m, typeTickCmd(m.cfg.Typing.Interval())
}

// finalizeTyping replaces the animated surrogate with the real message:
// the original response text rendered through the formatting pipeline
// exactly once.
func (m *Model) finalizeTyping() {
	p := m.presenter
	m.presenter = nil
	m.phase = phaseIdle
	if p == nil {
		return
	}

	// A conversation deleted mid-animation takes its reply with it.
	conv := m.conversations[m.typingConvID]
	m.typingConvID = ""
	if conv == nil {
		m.refreshViewport()
		return
	}

	raw := p.Raw()
	conv.AddMessage(model.NewAssistantMessage(raw, m.renderer.Render(raw)))
	m.ledger.UpsertFront(conv.Record())
	m.persist()
	m.refreshViewport()
}

func (m *Model) handleRequestFailed(msg RequestFailedMsg) (tea.Model, tea.Cmd) {
	delete(m.inflight, msg.ConversationID)

	// An abandoned request (Esc while waiting) ends quietly; only real
	// failures surface an error bubble.
	if errors.Is(msg.Err, context.Canceled) {
		m.settlePhase()
		return m, nil
	}

	conv := m.conversations[msg.ConversationID]
	if conv == nil {
		m.settlePhase()
		return m, nil
	}
	conv.AddMessage(model.NewErrorMessage(api.UserMessage(msg.Err)))
	if conv == m.current {
		m.phase = phaseIdle
		m.refreshViewport()
	} else {
		m.settlePhase()
	}
	return m, nil
}

// =============================================================================
// BACKGROUND RESULTS
// =============================================================================

func (m *Model) handleHistoryLoaded(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Offline history is already seeded from the state store.
		return m, nil
	}
	for i := len(msg.Summaries) - 1; i >= 0; i-- {
		s := msg.Summaries[i]
		if _, exists := m.ledger.Get(s.ID); exists {
			continue
		}
		m.ledger.UpsertFront(historyRecord(s))
	}
	return m, nil
}

// handleConversationLoaded fills a sidebar shell with its transcript.
// Messages the user already typed into the shell stay ahead of the
// fetched history only when the fetch fails; a successful load replaces
// the shell's contents wholesale.
func (m *Model) handleConversationLoaded(msg ConversationLoadedMsg) (tea.Model, tea.Cmd) {
	conv := m.conversations[msg.ConversationID]
	if conv == nil {
		return m, nil
	}
	if msg.Err != nil {
		if conv.IsEmpty() {
			conv.AddMessage(model.NewErrorMessage("Could not load this conversation's history."))
			if conv == m.current {
				m.refreshViewport()
			}
		}
		return m, nil
	}

	messages := make([]model.Message, 0, len(msg.Messages))
	for _, wire := range msg.Messages {
		switch wire.Role {
		case "user":
			messages = append(messages, model.NewUserMessage(wire.Content))
		case "assistant":
			messages = append(messages, model.NewAssistantMessage(wire.Content, m.renderer.Render(wire.Content)))
		}
	}
	conv.Messages = messages
	if conv == m.current {
		m.refreshViewport()
	}
	return m, nil
}

func (m *Model) handleSignInDone(msg SignInDoneMsg) (tea.Model, tea.Cmd) {
	m.input.Placeholder = "Message Dark..."
	m.phase = phaseIdle
	if msg.Err != nil {
		m.statusNote = api.UserMessage(msg.Err)
		return m, nil
	}
	m.sessions.SignIn(msg.Profile.UserID, msg.Profile.Name)
	m.statusNote = "Welcome, " + msg.Profile.Name
	return m, nil
}

func (m *Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	m.cfg = msg.Config
	m.theme.SetPalette(msg.Config.UI.Theme)
	m.sessions.SetTheme(msg.Config.UI.Theme)
	m.rerenderAll()
	m.refreshViewport()
	m.statusNote = "Config reloaded"
	return m, nil
}

// =============================================================================
// SIDEBAR
// =============================================================================

func (m *Model) moveSelection(delta int) tea.Cmd {
	visible := m.ledger.VisibleSlice()
	if len(visible) == 0 {
		return nil
	}
	m.selected = (m.selected + delta + len(visible)) % len(visible)
	cmd := m.switchTo(visible[m.selected])
	m.settlePhase()
	m.showWelcome = false
	m.refreshViewport()
	return cmd
}

func (m *Model) handleDelete() (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}
	id := m.current.ID
	userID := m.sessions.Session().UserID

	m.ledger.Remove(id)
	delete(m.conversations, id)
	delete(m.inflight, id)

	// A reply mid-animation for the doomed conversation dies with it.
	if id == m.typingConvID {
		m.cancelMgr.stop()
		m.presenter = nil
		m.typingConvID = ""
		if m.phase == phaseTyping {
			m.phase = phaseIdle
		}
	}
	m.persist()

	var cmd tea.Cmd
	if visible := m.ledger.VisibleSlice(); len(visible) > 0 {
		if m.selected >= len(visible) {
			m.selected = len(visible) - 1
		}
		cmd = m.switchTo(visible[m.selected])
	} else {
		m.startConversation()
	}
	m.settlePhase()
	m.refreshViewport()

	return m, tea.Batch(cmd, deleteConversationCmd(m.client, userID, id, m.cfg.API.Timeout()))
}

// =============================================================================
// HELPERS
// =============================================================================

// settlePhase drops the waiting indicator once the conversation on
// screen has no request in flight. Called whenever the current
// conversation changes or a background request settles.
func (m *Model) settlePhase() {
	if m.phase == phaseWaiting && (m.current == nil || !m.inflight[m.current.ID]) {
		m.phase = phaseIdle
	}
}

// applyRenderPrefs pushes the session's display preferences into the
// renderer and rebuilds every rendered message under them.
func (m *Model) applyRenderPrefs() {
	prefs := m.sessions.Prefs()
	m.renderer.SetOptions(render.Options{
		Width:              m.contentWidth(),
		SyntaxHighlighting: prefs.SyntaxHighlighting,
		Enhanced:           prefs.EnhancedRendering,
	})
	m.rerenderAll()
	m.refreshViewport()
}

// rerenderAll rebuilds the display form of every assistant message from
// its raw content. Error messages keep their plain text.
func (m *Model) rerenderAll() {
	for _, conv := range m.conversations {
		for i := range conv.Messages {
			msg := &conv.Messages[i]
			if msg.Role == model.RoleAssistant && !msg.IsError {
				msg.Rendered = m.renderer.Render(msg.Content)
			}
		}
	}
}

// copyLastReply writes the last assistant reply's raw text to the
// system clipboard via OSC 52.
func (m *Model) copyLastReply() {
	if m.current == nil {
		return
	}
	for i := len(m.current.Messages) - 1; i >= 0; i-- {
		msg := m.current.Messages[i]
		if msg.Role == model.RoleAssistant && !msg.IsError {
			termenv.Copy(msg.Content)
			m.statusNote = "Copied reply"
			return
		}
	}
	m.statusNote = "Nothing to copy"
}

// persist mirrors the ledger to the state store. Best effort; the UI
// never blocks on persistence errors.
func (m *Model) persist() {
	if m.state == nil {
		return
	}
	m.state.SaveRecords(m.ledger.All())
}

// historyRecord converts a backend summary to a ledger record. The
// backend's timestamp is RFC 3339; a malformed one stays zero so the
// ledger stamps it on insert.
func historyRecord(s api.ConversationSummary) history.Record {
	rec := history.Record{ID: s.ID, Title: s.Title}
	if t, err := time.Parse(time.RFC3339, s.UpdatedAt); err == nil {
		rec.UpdatedAt = t
	}
	return rec
}
