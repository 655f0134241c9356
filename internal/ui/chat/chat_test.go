// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/config"
	"github.com/darkvoid-labs/dark-tui/internal/history"
	"github.com/darkvoid-labs/dark-tui/internal/model"
	"github.com/darkvoid-labs/dark-tui/internal/session"
	"github.com/darkvoid-labs/dark-tui/internal/store"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := config.Default()
	theme := styles.NewTheme("dark")
	client := api.NewClient(api.Config{BaseURL: "http://127.0.0.1:1"})
	sessions := session.NewManager(st)
	ledger := history.New()

	m := New(cfg, theme, client, sessions, ledger, st)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestSendRequiresText(t *testing.T) {
	m := newTestModel(t)

	if cmd := m.handleSend(); cmd != nil {
		t.Error("empty composer should not produce a command")
	}
	if !m.current.IsEmpty() {
		t.Error("empty send should not add a message")
	}
}

func TestSendGuardBlocksSecondRequest(t *testing.T) {
	m := newTestModel(t)
	m.inflight[m.current.ID] = true

	m.input.SetValue("second message")
	if cmd := m.handleSend(); cmd != nil {
		t.Error("send should be refused while a request is in flight")
	}
	if !m.current.IsEmpty() {
		t.Error("blocked send must not touch the conversation")
	}
}

func TestSendStartsRequest(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("hello there")
	cmd := m.handleSend()
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if m.phase != phaseWaiting {
		t.Errorf("phase = %v, want phaseWaiting", m.phase)
	}
	if !m.inflight[m.current.ID] {
		t.Error("in-flight guard not set")
	}
	if got := len(m.current.Messages); got != 1 {
		t.Fatalf("messages = %d, want 1", got)
	}
	if m.current.Messages[0].Content != "hello there" {
		t.Errorf("content = %q", m.current.Messages[0].Content)
	}
	if m.input.Value() != "" {
		t.Error("composer should be cleared after send")
	}
}

func TestAnonymousGateAfterFiveMessages(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < session.AnonymousMessageLimit; i++ {
		m.sessions.RecordMessage()
	}

	m.input.SetValue("one more")
	if cmd := m.handleSend(); cmd != nil {
		t.Error("gated send should not produce a command")
	}
	if m.phase != phaseSignIn {
		t.Errorf("phase = %v, want phaseSignIn", m.phase)
	}
	if !m.current.IsEmpty() {
		t.Error("gated send must not add a message")
	}
}

func TestResponseStartsTypingAnimation(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.inflight[m.current.ID] = true
	m.phase = phaseWaiting

	_, cmd := m.handleResponse(ResponseMsg{
		ConversationID: m.current.ID,
		LocalID:        m.current.ID,
		Response:       "hello back",
	})
	if cmd == nil {
		t.Fatal("expected a typing tick command")
	}
	if m.phase != phaseTyping {
		t.Errorf("phase = %v, want phaseTyping", m.phase)
	}
	if m.presenter == nil {
		t.Fatal("presenter not installed")
	}
	if m.inflight[m.current.ID] {
		t.Error("in-flight guard should be cleared")
	}
}

func TestFinalizeTypingUsesOriginalText(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.handleResponse(ResponseMsg{
		ConversationID: m.current.ID,
		LocalID:        m.current.ID,
		Response:       "the full reply",
	})

	m.finalizeTyping()

	if m.phase != phaseIdle {
		t.Errorf("phase = %v, want phaseIdle", m.phase)
	}
	last := m.current.LastMessage()
	if last == nil {
		t.Fatal("no message appended")
	}
	if last.Content != "the full reply" {
		t.Errorf("content = %q, want the original text", last.Content)
	}
	if want := m.renderer.Render("the full reply"); last.Rendered != want {
		t.Error("rendered form should come from the formatting pipeline")
	}
}

func TestStopDuringTypingFinalizesImmediately(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.handleResponse(ResponseMsg{
		ConversationID: m.current.ID,
		LocalID:        m.current.ID,
		Response:       "a long reply the user skipped",
	})

	m.handleStop()

	if m.phase != phaseIdle {
		t.Errorf("phase = %v, want phaseIdle", m.phase)
	}
	last := m.current.LastMessage()
	if last == nil || last.Content != "a long reply the user skipped" {
		t.Error("stop should land the full original reply")
	}
}

func TestResponseAdoptsServerConversationID(t *testing.T) {
	m := newTestModel(t)
	localID := m.current.ID
	m.current.AddUserMessage("hi")
	m.syncLedger()

	m.handleResponse(ResponseMsg{
		ConversationID: "srv-42",
		LocalID:        localID,
		Response:       "ok",
	})

	if m.current.ID != "srv-42" {
		t.Errorf("conversation ID = %q, want srv-42", m.current.ID)
	}
	if _, ok := m.conversations[localID]; ok {
		t.Error("stale local ID still mapped")
	}
	if _, ok := m.conversations["srv-42"]; !ok {
		t.Error("server ID not mapped")
	}
}

func TestRequestFailedShowsUserMessage(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.inflight[m.current.ID] = true
	m.phase = phaseWaiting

	m.handleRequestFailed(RequestFailedMsg{
		ConversationID: m.current.ID,
		Err:            errors.New("dial tcp: nope"),
	})

	if m.phase != phaseIdle {
		t.Errorf("phase = %v, want phaseIdle", m.phase)
	}
	last := m.current.LastMessage()
	if last == nil || !last.IsError {
		t.Fatal("expected an error message")
	}
	if last.Content != "Something went wrong. Please try again." {
		t.Errorf("content = %q", last.Content)
	}
}

func TestMoveSelectionWraps(t *testing.T) {
	m := newTestModel(t)
	for _, id := range []string{"a", "b", "c"} {
		m.ledger.UpsertFront(history.Record{ID: id, Title: "chat " + id})
	}

	m.moveSelection(-1)
	if m.selected != 2 {
		t.Errorf("selected = %d, want 2 after wrapping up", m.selected)
	}
	m.moveSelection(1)
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0 after wrapping down", m.selected)
	}
}

func TestDeleteSwitchesAway(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.syncLedger()
	doomed := m.current.ID

	_, cmd := m.handleDelete()
	if cmd == nil {
		t.Error("expected a backend delete command")
	}
	if m.current.ID == doomed {
		t.Error("current conversation should change after delete")
	}
	if _, ok := m.ledger.Get(doomed); ok {
		t.Error("deleted conversation still in ledger")
	}
}

func TestHistoryRecordTimestamp(t *testing.T) {
	rec := historyRecord(api.ConversationSummary{
		ID:        "c1",
		Title:     "Old chat",
		UpdatedAt: "2025-06-01T10:30:00Z",
	})
	want := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	if !rec.UpdatedAt.Equal(want) {
		t.Errorf("UpdatedAt = %v, want %v", rec.UpdatedAt, want)
	}

	rec = historyRecord(api.ConversationSummary{ID: "c2", UpdatedAt: "garbage"})
	if !rec.UpdatedAt.IsZero() {
		t.Error("malformed timestamp should stay zero for the ledger to fill")
	}
}

func TestSwitchToFetchesTranscript(t *testing.T) {
	m := newTestModel(t)
	rec := history.Record{ID: "srv-7", Title: "Old chat"}
	m.ledger.UpsertFront(rec)

	cmd := m.switchTo(rec)
	if cmd == nil {
		t.Fatal("switching to an unloaded conversation should fetch its transcript")
	}
	if m.current.ID != "srv-7" {
		t.Errorf("current = %q, want srv-7", m.current.ID)
	}

	// A second switch finds the conversation in memory.
	if cmd := m.switchTo(rec); cmd != nil {
		t.Error("loaded conversation should not be fetched again")
	}
}

func TestConversationLoadedPopulatesMessages(t *testing.T) {
	m := newTestModel(t)
	rec := history.Record{ID: "srv-7", Title: "Old chat"}
	m.ledger.UpsertFront(rec)
	m.switchTo(rec)

	m.handleConversationLoaded(ConversationLoadedMsg{
		ConversationID: "srv-7",
		Messages: []api.ChatMessage{
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "hi there"},
		},
	})

	if got := len(m.current.Messages); got != 2 {
		t.Fatalf("messages = %d, want 2", got)
	}
	if m.current.Messages[0].Role != model.RoleUser || m.current.Messages[0].Content != "hello" {
		t.Errorf("first message = %+v", m.current.Messages[0])
	}
	last := m.current.Messages[1]
	if last.Role != model.RoleAssistant || last.Content != "hi there" {
		t.Errorf("second message = %+v", last)
	}
	if want := m.renderer.Render("hi there"); last.Rendered != want {
		t.Error("assistant message should go through the formatting pipeline")
	}
}

func TestConversationLoadFailureShowsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	rec := history.Record{ID: "srv-7", Title: "Old chat"}
	m.ledger.UpsertFront(rec)
	m.switchTo(rec)

	m.handleConversationLoaded(ConversationLoadedMsg{
		ConversationID: "srv-7",
		Err:            errors.New("dial tcp: nope"),
	})

	last := m.current.LastMessage()
	if last == nil || !last.IsError {
		t.Fatal("expected a placeholder message")
	}
	if last.Content != "Could not load this conversation's history." {
		t.Errorf("content = %q", last.Content)
	}
}

func TestDeleteDuringTypingDropsReply(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.syncLedger()
	m.handleResponse(ResponseMsg{
		ConversationID: m.current.ID,
		LocalID:        m.current.ID,
		Response:       "a doomed reply",
	})
	doomed := m.current.ID

	m.handleDelete()
	m.finalizeTyping()

	if m.typingConvID != "" {
		t.Errorf("typingConvID = %q, want empty", m.typingConvID)
	}
	if m.presenter != nil {
		t.Error("presenter should be dropped with its conversation")
	}
	if m.phase != phaseIdle {
		t.Errorf("phase = %v, want phaseIdle", m.phase)
	}
	for _, msg := range m.current.Messages {
		if msg.Content == "a doomed reply" {
			t.Fatal("deleted conversation's reply landed in the new conversation")
		}
	}
	if _, ok := m.ledger.Get(doomed); ok {
		t.Error("deleted conversation came back to the ledger")
	}
}

func TestResponseForDeletedConversationIsDropped(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.inflight[m.current.ID] = true
	m.phase = phaseWaiting
	doomed := m.current.ID

	m.handleDelete()
	m.handleResponse(ResponseMsg{
		ConversationID: doomed,
		LocalID:        doomed,
		Response:       "too late",
	})

	if m.phase != phaseIdle {
		t.Errorf("phase = %v, want phaseIdle", m.phase)
	}
	if !m.current.IsEmpty() {
		t.Error("late reply must not land in the replacement conversation")
	}
	if _, ok := m.conversations[doomed]; ok {
		t.Error("deleted conversation resurrected")
	}
}

func TestStopWhileWaitingStaysQuiet(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.inflight[m.current.ID] = true
	m.phase = phaseWaiting

	// Esc cancels the request context; the failure arrives wrapped.
	m.handleRequestFailed(RequestFailedMsg{
		ConversationID: m.current.ID,
		Err:            &api.ClientError{Type: api.ErrTypeNetwork, Message: "request failed", Cause: context.Canceled},
	})

	if m.phase != phaseIdle {
		t.Errorf("phase = %v, want phaseIdle", m.phase)
	}
	if last := m.current.LastMessage(); last != nil && last.IsError {
		t.Error("an abandoned request must not surface an error bubble")
	}
}

func TestBackgroundResponseSettlesPhase(t *testing.T) {
	m := newTestModel(t)
	m.current.AddUserMessage("hi")
	m.syncLedger()
	first := m.current
	m.inflight[first.ID] = true
	m.phase = phaseWaiting

	m.startConversation()
	m.handleResponse(ResponseMsg{
		ConversationID: first.ID,
		LocalID:        first.ID,
		Response:       "late reply",
	})

	if m.phase != phaseIdle {
		t.Errorf("phase = %v, want phaseIdle once nothing is in flight for the current conversation", m.phase)
	}
	last := first.LastMessage()
	if last == nil || last.Content != "late reply" {
		t.Error("background reply should land in its own conversation")
	}
	if !m.current.IsEmpty() {
		t.Error("background reply leaked into the current conversation")
	}
}

func TestHealthResultDrivesOnlineFlag(t *testing.T) {
	m := newTestModel(t)

	m.Update(HealthMsg{Err: errors.New("dial tcp: nope")})
	if m.online {
		t.Error("failed health check should mark the header offline")
	}

	m.Update(HealthMsg{})
	if !m.online {
		t.Error("successful health check should mark the header online")
	}
}

func TestWelcomeShowsVersion(t *testing.T) {
	m := newTestModel(t)
	m.SetVersion("9.9.9")

	if out := m.renderChat(); !strings.Contains(out, "v9.9.9") {
		t.Error("welcome banner should show the build version")
	}
}
