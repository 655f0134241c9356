// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package typing animates assistant responses character by character.
//
// The animation never types the real response. Code fences and stories
// are replaced by placeholders (the surrogate) so the effect stays
// smooth, and when the animation finishes the message is swapped for
// the fully rendered original text. The surrogate is presentation-only
// and is never persisted anywhere.
package typing

import (
	"strings"
	"sync"

	"github.com/darkvoid-labs/dark-tui/internal/classify"
	"github.com/darkvoid-labs/dark-tui/internal/render"
)

// Placeholders typed in place of content that animates poorly.
const (
	CodePlaceholder  = "【Code Block】"
	StoryPlaceholder = "【Story】"
)

// Surrogate returns the text the animation actually types. Each fenced
// code block collapses to CodePlaceholder; a story response collapses
// to StoryPlaceholder plus its title; plain responses type verbatim.
func Surrogate(raw string) string {
	c := classify.Classify(raw)
	switch c.Category {
	case classify.CategoryStory:
		return StoryPlaceholder + " " + c.Title

	case classify.CategoryCode:
		var b strings.Builder
		for _, seg := range render.ExtractSegments(raw) {
			if seg.Code {
				if b.Len() > 0 {
					b.WriteString("\n")
				}
				b.WriteString(CodePlaceholder)
				continue
			}
			if text := strings.TrimSpace(seg.Text); text != "" {
				if b.Len() > 0 {
					b.WriteString("\n")
				}
				b.WriteString(text)
			}
		}
		return b.String()

	default:
		return raw
	}
}

// Presenter is the typing animation state machine for one response.
// The cancelled flag is checked on every step, so a cancel from any
// goroutine stops the animation at the next tick.
type Presenter struct {
	mu        sync.Mutex
	raw       string
	surrogate []rune
	index     int
	cancelled bool
}

// NewPresenter starts a presenter for a raw response.
func NewPresenter(raw string) *Presenter {
	return &Presenter{
		raw:       raw,
		surrogate: []rune(Surrogate(raw)),
	}
}

// Step reveals one more character. It returns true while the animation
// should keep ticking and false once finished or cancelled.
func (p *Presenter) Step() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancelled || p.index >= len(p.surrogate) {
		return false
	}
	p.index++
	return p.index < len(p.surrogate)
}

// Visible returns the currently revealed prefix of the surrogate.
func (p *Presenter) Visible() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return string(p.surrogate[:p.index])
}

// Cancel stops the animation. Safe to call from any goroutine and
// more than once.
func (p *Presenter) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelled = true
}

// Cancelled reports whether the animation was cancelled.
func (p *Presenter) Cancelled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancelled
}

// Done reports whether the animation has finished or been cancelled.
func (p *Presenter) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancelled || p.index >= len(p.surrogate)
}

// Raw returns the original response text. The final message content is
// always the rendered original, regardless of how far the animation got.
func (p *Presenter) Raw() string {
	return p.raw
}

// Progress returns revealed and total character counts.
func (p *Presenter) Progress() (revealed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index, len(p.surrogate)
}
