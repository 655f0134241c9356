// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history maintains the recent-conversation ledger shown in the
// sidebar. The ledger keeps the ten most recently touched conversations
// in most-recent-first order and exposes the first five for display.
package history

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"github.com/darkvoid-labs/dark-tui/internal/util"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// MaxRecords is the ledger capacity; older records are evicted.
	MaxRecords = 10

	// VisibleRecords is how many records the sidebar shows.
	VisibleRecords = 5

	// maxTitleRunes bounds generated conversation titles.
	maxTitleRunes = 30
)

// Generic titles that UpdateTitleIfGeneric will replace.
const (
	TitleGeneral = "General Conversation"
	TitleNew     = "New Conversation"
)

// =============================================================================
// TYPES
// =============================================================================

// Record is one conversation in the ledger.
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ledger is the ordered set of recent conversations. Most recent first.
// Safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	records []Record
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Load creates a ledger seeded with records, most recent first. Excess
// records beyond capacity are dropped.
func Load(records []Record) *Ledger {
	l := &Ledger{}
	for i := len(records) - 1; i >= 0; i-- {
		l.UpsertFront(records[i])
	}
	return l
}

// =============================================================================
// OPERATIONS
// =============================================================================

// UpsertFront inserts a record at the front of the ledger. If a record
// with the same ID already exists it moves to the front, taking the new
// title and timestamp. When a new ID pushes the ledger past capacity,
// the oldest record is evicted.
func (l *Ledger) UpsertFront(rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now()
	}

	for i, r := range l.records {
		if r.ID == rec.ID {
			if rec.Title == "" {
				rec.Title = r.Title
			}
			l.records = append(l.records[:i], l.records[i+1:]...)
			l.records = append([]Record{rec}, l.records...)
			return
		}
	}

	l.records = append([]Record{rec}, l.records...)
	if len(l.records) > MaxRecords {
		l.records = l.records[:MaxRecords]
	}
}

// Rename changes a record's title in place. No-op when the ID is absent.
func (l *Ledger) Rename(id, title string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID == id {
			l.records[i].Title = title
			return
		}
	}
}

// Remove deletes a record. No-op when the ID is absent.
func (l *Ledger) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.records {
		if r.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return
		}
	}
}

// UpdateTitleIfGeneric replaces a record's title only while it still
// carries one of the generic placeholders. A title the user chose, or
// one already derived from a message, is never overwritten.
func (l *Ledger) UpdateTitleIfGeneric(id, title string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID == id {
			if l.records[i].Title == TitleGeneral || l.records[i].Title == TitleNew {
				l.records[i].Title = title
			}
			return
		}
	}
}

// VisibleSlice returns the records the sidebar shows: the first
// VisibleRecords entries, fewer when the ledger holds fewer.
func (l *Ledger) VisibleSlice() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.records)
	if n > VisibleRecords {
		n = VisibleRecords
	}
	out := make([]Record, n)
	copy(out, l.records[:n])
	return out
}

// All returns a copy of every record, most recent first.
func (l *Ledger) All() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Get returns the record with the given ID.
func (l *Ledger) Get(id string) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// =============================================================================
// HELPERS
// =============================================================================

// GenerateID creates a conversation ID: a millisecond timestamp plus
// random hex, prefixed for greppable logs.
func GenerateID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// Timestamp alone still yields a usable ID.
		return "chat-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return "chat-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + hex.EncodeToString(buf)
}

// TitleFromMessage derives a conversation title from the first user
// message: trimmed and truncated to a display-friendly length. Empty
// input yields the generic new-conversation title.
func TitleFromMessage(message string) string {
	trimmed := util.CollapseSpace(message)
	if trimmed == "" {
		return TitleNew
	}
	return util.TruncateRunes(trimmed, maxTitleRunes)
}
