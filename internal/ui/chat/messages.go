// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// messages.go - Bubble Tea messages and commands for the chat screen.
//
// Every asynchronous result enters the Update loop as one of these
// message types. Commands are the only place goroutines are spawned.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/config"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// ResponseMsg carries a successful chat response. LocalID is the
// conversation ID the request was sent under; ConversationID is the
// backend's, which may differ on the first exchange.
type ResponseMsg struct {
	ConversationID string
	LocalID        string
	Response       string
}

// RequestFailedMsg carries a failed chat request.
type RequestFailedMsg struct {
	ConversationID string
	Err            error
}

// TypeTickMsg advances the typing animation by one character.
type TypeTickMsg struct {
	Time time.Time
}

// CursorBlinkMsg toggles the typing cursor.
type CursorBlinkMsg struct{}

// ConversationLoadedMsg carries the transcript of one conversation
// fetched after a sidebar switch.
type ConversationLoadedMsg struct {
	ConversationID string
	Messages       []api.ChatMessage
	Err            error
}

// HistoryLoadedMsg carries the backend's recent conversations.
type HistoryLoadedMsg struct {
	Summaries []api.ConversationSummary
	Err       error
}

// ConversationDeletedMsg reports a sidebar delete.
type ConversationDeletedMsg struct {
	ConversationID string
	Err            error
}

// SignInDoneMsg reports account creation.
type SignInDoneMsg struct {
	Profile api.Profile
	Err     error
}

// UpgradeDoneMsg reports a premium upgrade.
type UpgradeDoneMsg struct {
	Result api.UpgradeResult
	Err    error
}

// HealthMsg reports the startup liveness probe.
type HealthMsg struct {
	Err error
}

// ConfigReloadedMsg arrives when the config watcher sees a change.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// COMMANDS
// =============================================================================

// sendCmd fires the chat request for one user message. The request
// context is registered with the cancel manager so Esc can abort it.
func sendCmd(client *api.Client, cm *cancelManager, req api.ChatRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		cm.setRequest(cancel)
		defer cm.finishRequest()

		resp, err := client.Chat(ctx, req)
		if err != nil {
			return RequestFailedMsg{ConversationID: req.ConversationID, Err: err}
		}
		return ResponseMsg{
			ConversationID: resp.ConversationID,
			LocalID:        req.ConversationID,
			Response:       resp.Response,
		}
	}
}

// typeTickCmd schedules the next typing animation step.
func typeTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TypeTickMsg{Time: t}
	})
}

// cursorBlinkCmd schedules the next cursor toggle.
func cursorBlinkCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return CursorBlinkMsg{}
	})
}

// loadHistoryCmd fetches recent conversations for the sidebar.
func loadHistoryCmd(client *api.Client, userID string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		summaries, err := client.History(ctx, userID)
		return HistoryLoadedMsg{Summaries: summaries, Err: err}
	}
}

// loadConversationCmd fetches one conversation's transcript.
func loadConversationCmd(client *api.Client, conversationID string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		messages, err := client.Conversation(ctx, conversationID)
		return ConversationLoadedMsg{ConversationID: conversationID, Messages: messages, Err: err}
	}
}

// deleteConversationCmd removes a conversation from the backend.
func deleteConversationCmd(client *api.Client, userID, conversationID string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.DeleteConversation(ctx, userID, conversationID)
		return ConversationDeletedMsg{ConversationID: conversationID, Err: err}
	}
}

// signInCmd registers a named user, carrying the current user ID so
// the anonymous message count survives sign-in.
func signInCmd(client *api.Client, userID, name string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		profile, err := client.CreateUser(ctx, userID, name)
		return SignInDoneMsg{Profile: profile, Err: err}
	}
}

// upgradeCmd requests a premium upgrade.
func upgradeCmd(client *api.Client, userID string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := client.Upgrade(ctx, userID, "premium")
		return UpgradeDoneMsg{Result: result, Err: err}
	}
}

// healthCmd probes the backend once at startup.
func healthCmd(client *api.Client, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return HealthMsg{Err: client.Health(ctx)}
	}
}
