// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typing

import (
	"strings"
	"testing"
)

func TestSurrogate(t *testing.T) {
	story := "The Lost Crown\n" +
		strings.Repeat("Once upon a time a princess guarded the kingdom's castle. ", 5)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain passes through", "The answer is 42.", "The answer is 42."},
		{
			"code fence collapses",
			"Here:\n```python\nprint(1)\n```",
			"Here:\n" + CodePlaceholder,
		},
		{
			"two fences collapse separately",
			"```go\na()\n```\nand\n```js\nb()\n```",
			CodePlaceholder + "\nand\n" + CodePlaceholder,
		},
		{"story collapses to placeholder and title", story, StoryPlaceholder + " The Lost Crown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Surrogate(tt.input); got != tt.want {
				t.Errorf("Surrogate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresenterSteps(t *testing.T) {
	p := NewPresenter("abc")

	if p.Done() {
		t.Fatal("new presenter reports done")
	}
	if got := p.Visible(); got != "" {
		t.Errorf("Visible() before stepping = %q, want empty", got)
	}

	if !p.Step() {
		t.Error("Step() = false on first step, want true")
	}
	if got := p.Visible(); got != "a" {
		t.Errorf("Visible() = %q, want %q", got, "a")
	}

	p.Step()
	// Final step returns false: nothing left to reveal afterwards.
	if p.Step() {
		t.Error("Step() = true on final step, want false")
	}
	if got := p.Visible(); got != "abc" {
		t.Errorf("Visible() = %q, want %q", got, "abc")
	}
	if !p.Done() {
		t.Error("Done() = false after full reveal")
	}
}

func TestPresenterCancel(t *testing.T) {
	p := NewPresenter("hello world")
	p.Step()
	p.Step()

	p.Cancel()
	if !p.Cancelled() || !p.Done() {
		t.Fatal("presenter not done after Cancel")
	}
	if p.Step() {
		t.Error("Step() after Cancel = true, want false")
	}
	if got := p.Visible(); got != "he" {
		t.Errorf("Visible() advanced after cancel: %q", got)
	}

	// Raw survives cancellation so the full response can still be rendered.
	if p.Raw() != "hello world" {
		t.Errorf("Raw() = %q", p.Raw())
	}
}

func TestPresenterMultibyte(t *testing.T) {
	p := NewPresenter("日本語")
	p.Step()
	if got := p.Visible(); got != "日" {
		t.Errorf("Visible() = %q, want one full rune", got)
	}
	_, total := p.Progress()
	if total != 3 {
		t.Errorf("total = %d, want 3 runes", total)
	}
}

func TestPresenterEmpty(t *testing.T) {
	p := NewPresenter("")
	if !p.Done() {
		t.Error("empty presenter not done")
	}
	if p.Step() {
		t.Error("Step() on empty = true")
	}
}
