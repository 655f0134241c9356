// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// model.go - Chat screen state.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/config"
	"github.com/darkvoid-labs/dark-tui/internal/history"
	"github.com/darkvoid-labs/dark-tui/internal/model"
	"github.com/darkvoid-labs/dark-tui/internal/render"
	"github.com/darkvoid-labs/dark-tui/internal/session"
	"github.com/darkvoid-labs/dark-tui/internal/store"
	"github.com/darkvoid-labs/dark-tui/internal/typing"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// =============================================================================
// PHASES
// =============================================================================

// phase is the chat screen's interaction state.
type phase int

const (
	// phaseIdle - accepting input.
	phaseIdle phase = iota
	// phaseWaiting - a chat request is in flight.
	phaseWaiting
	// phaseTyping - the typing animation is running.
	phaseTyping
	// phaseSignIn - prompting for a name after the anonymous allowance.
	phaseSignIn
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	// Collaborators
	cfg      *config.Config
	theme    *styles.Theme
	client   *api.Client
	sessions *session.Manager
	renderer *render.Renderer
	ledger   *history.Ledger
	state    *store.Store

	// Conversations
	conversations map[string]*model.Conversation
	current       *model.Conversation
	selected      int // sidebar cursor into the visible slice

	// Request / animation state
	cancelMgr    *cancelManager
	presenter    *typing.Presenter
	typingConvID string          // conversation the animation belongs to
	inflight     map[string]bool // conversation ID -> request pending
	phase        phase
	cursorOn     bool

	// Components
	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model
	keys     KeyMap

	// Layout
	width  int
	height int
	ready  bool

	// Transient UI state
	showWelcome bool
	statusNote  string
	online      bool
	version     string
}

// New builds the chat screen.
func New(cfg *config.Config, theme *styles.Theme, client *api.Client, sessions *session.Manager, ledger *history.Ledger, state *store.Store) *Model {
	input := textinput.New()
	input.Placeholder = "Message Dark..."
	input.Prompt = "> "
	input.CharLimit = 4096
	input.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.LineSpinner.Frames,
		FPS:    styles.LineSpinner.Duration(),
	}
	sp.Style = theme.Spinner

	prefs := sessions.Prefs()
	renderer := render.New(theme, render.Options{
		Width:              80,
		SyntaxHighlighting: prefs.SyntaxHighlighting,
		Enhanced:           prefs.EnhancedRendering,
	})

	m := &Model{
		cfg:           cfg,
		theme:         theme,
		client:        client,
		sessions:      sessions,
		renderer:      renderer,
		ledger:        ledger,
		state:         state,
		conversations: make(map[string]*model.Conversation),
		cancelMgr:     newCancelManager(),
		inflight:      make(map[string]bool),
		input:         input,
		viewport:      vp,
		spin:          sp,
		keys:          DefaultKeyMap(),
		showWelcome:   true,
		online:        true,
		version:       "dev",
	}
	m.startConversation()
	return m
}

// SetVersion sets the build version shown on the welcome screen.
func (m *Model) SetVersion(v string) {
	if v != "" {
		m.version = v
	}
}

// Init starts background work: the liveness probe, history fetch, and
// the cursor blink loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		healthCmd(m.client, m.cfg.API.Timeout()),
		loadHistoryCmd(m.client, m.sessions.Session().UserID, m.cfg.API.Timeout()),
		cursorBlinkCmd(styles.CursorBlinkRate),
	)
}

// =============================================================================
// CONVERSATION MANAGEMENT
// =============================================================================

// startConversation opens a fresh conversation and makes it current.
func (m *Model) startConversation() {
	conv := model.NewConversation()
	m.conversations[conv.ID] = conv
	m.current = conv
	m.selected = 0
}

// switchTo makes an existing ledger entry the current conversation.
// When its messages are not loaded it creates a local shell and returns
// a command that fetches the transcript from the backend.
func (m *Model) switchTo(rec history.Record) tea.Cmd {
	if conv, ok := m.conversations[rec.ID]; ok {
		m.current = conv
		return nil
	}
	conv := &model.Conversation{ID: rec.ID, Title: rec.Title, UpdatedAt: rec.UpdatedAt}
	m.conversations[conv.ID] = conv
	m.current = conv
	return loadConversationCmd(m.client, conv.ID, m.cfg.API.Timeout())
}

// busy reports whether the current conversation has a request in flight.
// This is the duplicate-send guard: one outstanding request per
// conversation, enforced before anything touches the wire.
func (m *Model) busy() bool {
	return m.current != nil && m.inflight[m.current.ID]
}

// syncLedger pushes the current conversation to the front of the ledger
// and mirrors the ledger to the state store.
func (m *Model) syncLedger() {
	if m.current == nil {
		return
	}
	m.ledger.UpsertFront(m.current.Record())
	m.ledger.UpdateTitleIfGeneric(m.current.ID, m.current.Title)
	if m.state != nil {
		m.state.SaveRecords(m.ledger.All())
	}
}
