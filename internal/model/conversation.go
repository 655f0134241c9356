// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// conversation.go - Conversation data model.
package model

import (
	"time"

	"github.com/darkvoid-labs/dark-tui/internal/history"
)

// Conversation is one chat thread. The ID is assigned locally and
// confirmed (or replaced) by the backend on the first exchange.
type Conversation struct {
	ID        string
	Title     string
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewConversation creates an empty conversation with a generated ID and
// the generic title.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        history.GenerateID(),
		Title:     history.TitleNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddUserMessage appends a user message. The first user message names
// the conversation when it still carries a generic title.
func (c *Conversation) AddUserMessage(content string) *Message {
	msg := NewUserMessage(content)
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()

	if c.Title == history.TitleNew || c.Title == history.TitleGeneral {
		c.Title = history.TitleFromMessage(content)
	}
	return &c.Messages[len(c.Messages)-1]
}

// AddMessage appends an already-built message.
func (c *Conversation) AddMessage(msg Message) *Message {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
	return &c.Messages[len(c.Messages)-1]
}

// LastMessage returns the most recent message, or nil for an empty
// conversation.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// Record converts the conversation to its ledger form.
func (c *Conversation) Record() history.Record {
	return history.Record{
		ID:        c.ID,
		Title:     c.Title,
		UpdatedAt: c.UpdatedAt,
	}
}

// IsEmpty reports whether no messages have been exchanged.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}
