// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the user's identity and display preferences.
//
// A Manager loads state from the local store at startup and writes it
// back after every mutation, so the rest of the application treats it
// as plain in-memory state. Loading can never fail the program: missing
// or corrupt state yields a fresh anonymous session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/darkvoid-labs/dark-tui/internal/store"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// AnonymousMessageLimit is how many messages an unnamed session may
// send before the sign-in prompt appears.
const AnonymousMessageLimit = 5

// =============================================================================
// TYPES
// =============================================================================

// UserSession identifies the user to the backend.
type UserSession struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	IsPremium    bool      `json:"is_premium"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAnonymous reports whether the user has not signed in with a name.
func (u UserSession) IsAnonymous() bool {
	return u.Name == ""
}

// Preferences are the persisted display settings.
type Preferences struct {
	Theme              string `json:"theme"`
	SyntaxHighlighting bool   `json:"syntax_highlighting"`
	EnhancedRendering  bool   `json:"enhanced_rendering"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:              "dark",
		SyntaxHighlighting: true,
		EnhancedRendering:  true,
	}
}

// =============================================================================
// MANAGER
// =============================================================================

// Manager is the single owner of session and preference state. Safe for
// concurrent use.
type Manager struct {
	mu      sync.Mutex
	store   *store.Store
	session UserSession
	prefs   Preferences
}

// NewManager loads state from st, creating a fresh anonymous session
// and default preferences where nothing usable is stored.
func NewManager(st *store.Store) *Manager {
	m := &Manager{store: st, prefs: DefaultPreferences()}

	var sess UserSession
	if found, err := st.GetJSON(store.KeySession, &sess); err == nil && found && sess.UserID != "" {
		m.session = sess
	} else {
		m.session = UserSession{
			UserID:    uuid.NewString(),
			CreatedAt: time.Now(),
		}
		m.saveSession()
	}

	var prefs Preferences
	if found, err := st.GetJSON(store.KeyPrefs, &prefs); err == nil && found && prefs.Theme != "" {
		m.prefs = prefs
	}

	return m
}

// Session returns a copy of the current session.
func (m *Manager) Session() UserSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Prefs returns a copy of the current preferences.
func (m *Manager) Prefs() Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs
}

// RecordMessage bumps the sent-message counter and returns the new
// count.
func (m *Manager) RecordMessage() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.MessageCount++
	m.saveSession()
	return m.session.MessageCount
}

// NeedsSignIn reports whether the anonymous message allowance is spent.
func (m *Manager) NeedsSignIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.IsAnonymous() && m.session.MessageCount >= AnonymousMessageLimit
}

// SignIn records the server-assigned identity after account creation.
func (m *Manager) SignIn(userID, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if userID != "" {
		m.session.UserID = userID
	}
	m.session.Name = name
	m.saveSession()
}

// SetPremium records a plan change.
func (m *Manager) SetPremium(premium bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.IsPremium = premium
	m.saveSession()
}

// SetTheme persists a theme choice.
func (m *Manager) SetTheme(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.Theme = name
	m.savePrefs()
}

// CycleTheme advances to the next theme and returns its name.
func (m *Manager) CycleTheme() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.Theme = styles.NextTheme(m.prefs.Theme)
	m.savePrefs()
	return m.prefs.Theme
}

// ToggleSyntaxHighlighting flips the code highlighting preference.
func (m *Manager) ToggleSyntaxHighlighting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.SyntaxHighlighting = !m.prefs.SyntaxHighlighting
	m.savePrefs()
	return m.prefs.SyntaxHighlighting
}

// ToggleEnhancedRendering flips the markdown rendering preference.
func (m *Manager) ToggleEnhancedRendering() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.EnhancedRendering = !m.prefs.EnhancedRendering
	m.savePrefs()
	return m.prefs.EnhancedRendering
}

// Reset discards the stored identity, returning to a fresh anonymous
// session. Preferences are kept.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = UserSession{
		UserID:    uuid.NewString(),
		CreatedAt: time.Now(),
	}
	m.saveSession()
}

// saveSession persists the session. Persistence failures are ignored;
// the in-memory session stays authoritative for this run.
func (m *Manager) saveSession() {
	if m.store != nil {
		m.store.PutJSON(store.KeySession, m.session)
	}
}

func (m *Manager) savePrefs() {
	if m.store != nil {
		m.store.PutJSON(store.KeyPrefs, m.prefs)
	}
}
