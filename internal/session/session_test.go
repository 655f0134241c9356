// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"path/filepath"
	"testing"

	"github.com/darkvoid-labs/dark-tui/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewManagerCreatesAnonymousSession(t *testing.T) {
	st := openTestStore(t)
	m := NewManager(st)

	sess := m.Session()
	if sess.UserID == "" {
		t.Error("UserID is empty")
	}
	if !sess.IsAnonymous() {
		t.Error("fresh session is not anonymous")
	}
	if sess.MessageCount != 0 {
		t.Errorf("MessageCount = %d, want 0", sess.MessageCount)
	}

	prefs := m.Prefs()
	if prefs.Theme != "dark" || !prefs.SyntaxHighlighting || !prefs.EnhancedRendering {
		t.Errorf("default prefs = %+v", prefs)
	}
}

func TestManagerStateSurvivesReload(t *testing.T) {
	st := openTestStore(t)

	m := NewManager(st)
	userID := m.Session().UserID
	m.SignIn("", "Ada")
	m.RecordMessage()
	m.RecordMessage()
	m.SetTheme("blue")

	// A second manager over the same store sees the persisted state.
	m2 := NewManager(st)
	sess := m2.Session()
	if sess.UserID != userID {
		t.Errorf("UserID = %q, want %q", sess.UserID, userID)
	}
	if sess.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", sess.Name)
	}
	if sess.MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", sess.MessageCount)
	}
	if m2.Prefs().Theme != "blue" {
		t.Errorf("Theme = %q, want blue", m2.Prefs().Theme)
	}
}

func TestNeedsSignIn(t *testing.T) {
	m := NewManager(openTestStore(t))

	for i := 0; i < AnonymousMessageLimit-1; i++ {
		m.RecordMessage()
	}
	if m.NeedsSignIn() {
		t.Errorf("NeedsSignIn() = true after %d messages", AnonymousMessageLimit-1)
	}

	m.RecordMessage()
	if !m.NeedsSignIn() {
		t.Errorf("NeedsSignIn() = false after %d messages", AnonymousMessageLimit)
	}

	// Named sessions are never gated.
	m.SignIn("u-server", "Ada")
	if m.NeedsSignIn() {
		t.Error("NeedsSignIn() = true for named session")
	}
	if m.Session().UserID != "u-server" {
		t.Errorf("UserID = %q, want server-assigned id", m.Session().UserID)
	}
}

func TestCycleTheme(t *testing.T) {
	m := NewManager(openTestStore(t))

	if got := m.CycleTheme(); got != "light" {
		t.Errorf("CycleTheme() = %q, want light", got)
	}
	if got := m.CycleTheme(); got != "blue" {
		t.Errorf("CycleTheme() = %q, want blue", got)
	}
	if got := m.CycleTheme(); got != "dark" {
		t.Errorf("CycleTheme() = %q, want dark", got)
	}
}

func TestToggles(t *testing.T) {
	m := NewManager(openTestStore(t))

	if m.ToggleSyntaxHighlighting() {
		t.Error("first toggle should turn highlighting off")
	}
	if !m.ToggleSyntaxHighlighting() {
		t.Error("second toggle should turn highlighting back on")
	}
	if m.ToggleEnhancedRendering() {
		t.Error("first toggle should turn enhanced rendering off")
	}
}

func TestReset(t *testing.T) {
	m := NewManager(openTestStore(t))
	m.SignIn("u-1", "Ada")
	old := m.Session().UserID

	m.Reset()
	sess := m.Session()
	if !sess.IsAnonymous() {
		t.Error("session still named after Reset")
	}
	if sess.UserID == old {
		t.Error("UserID unchanged after Reset")
	}
	if sess.MessageCount != 0 {
		t.Errorf("MessageCount = %d after Reset, want 0", sess.MessageCount)
	}
}

func TestSetPremium(t *testing.T) {
	st := openTestStore(t)
	m := NewManager(st)
	m.SetPremium(true)

	if !NewManager(st).Session().IsPremium {
		t.Error("premium flag not persisted")
	}
}
