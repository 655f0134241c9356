// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// message.go - Chat message data model.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/darkvoid-labs/dark-tui/internal/util"
)

// =============================================================================
// ROLE
// =============================================================================

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// =============================================================================
// MESSAGE
// =============================================================================

// Message is one chat message. Content always holds the raw text;
// Rendered holds the styled display form for assistant messages and is
// rebuilt (never persisted) whenever display preferences change.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Rendered  string
	IsError   bool
	CreatedAt time.Time
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message with its rendered
// display form.
func NewAssistantMessage(content, rendered string) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Content:   content,
		Rendered:  rendered,
		CreatedAt: time.Now(),
	}
}

// NewErrorMessage creates an assistant-side message carrying user-facing
// error text.
func NewErrorMessage(text string) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Content:   text,
		IsError:   true,
		CreatedAt: time.Now(),
	}
}

// Display returns the text to show: the rendered form when present,
// raw content otherwise.
func (m Message) Display() string {
	if m.Rendered != "" {
		return m.Rendered
	}
	return m.Content
}

// Preview returns a single-line preview of the message content.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.CollapseSpace(m.Content), maxRunes)
}

// generateID creates a unique message ID using crypto/rand.
func generateID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "msg__" + time.Now().Format("20060102150405.000000")
	}
	return "msg_" + hex.EncodeToString(buf)
}
