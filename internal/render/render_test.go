// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"

	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "hello world", "hello world"},
		{"newlines and tabs kept", "a\n\tb", "a\n\tb"},
		{"escape byte stripped", "safe\x1b[31mred", "safe[31mred"},
		{"csi byte stripped", "a\x9bb", "ab"},
		{"csi rune stripped", "a\u009bb", "ab"},
		{"control chars stripped", "a\x00\x07b", "ab"},
		{"delete stripped", "a\x7fb", "ab"},
		{"multibyte text kept", "日本語 ok", "日本語 ok"},
		{"continuation byte not confused with csi", "aٛb", "aٛb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Sanitizing already-sanitized text must be a no-op.
func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"with\x1bescape",
		"multi\nline\twith\x00junk",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestExtractSegments(t *testing.T) {
	t.Run("no fences", func(t *testing.T) {
		segs := ExtractSegments("just prose")
		if len(segs) != 1 || segs[0].Code {
			t.Fatalf("segments = %+v, want single prose segment", segs)
		}
		if segs[0].Text != "just prose" {
			t.Errorf("Text = %q", segs[0].Text)
		}
	})

	t.Run("single tagged fence", func(t *testing.T) {
		segs := ExtractSegments("before\n```python\nprint(1)\n```\nafter")
		if len(segs) != 3 {
			t.Fatalf("got %d segments, want 3", len(segs))
		}
		if segs[0].Code || !strings.Contains(segs[0].Text, "before") {
			t.Errorf("first segment = %+v", segs[0])
		}
		if !segs[1].Code || segs[1].Language != "python" || segs[1].Text != "print(1)" {
			t.Errorf("code segment = %+v", segs[1])
		}
		if segs[2].Code || !strings.Contains(segs[2].Text, "after") {
			t.Errorf("last segment = %+v", segs[2])
		}
	})

	t.Run("two fences", func(t *testing.T) {
		segs := ExtractSegments("```go\na()\n```\nmiddle\n```js\nb()\n```")
		var codes int
		for _, s := range segs {
			if s.Code {
				codes++
			}
		}
		if codes != 2 {
			t.Errorf("got %d code segments, want 2", codes)
		}
	})

	t.Run("uppercase tag normalized", func(t *testing.T) {
		segs := ExtractSegments("```SQL\nselect 1\n```")
		if segs[0].Language != "sql" {
			t.Errorf("Language = %q, want sql", segs[0].Language)
		}
	})

	t.Run("unterminated fence runs to end", func(t *testing.T) {
		segs := ExtractSegments("```python\nprint(1)\nprint(2)")
		if len(segs) != 1 || !segs[0].Code {
			t.Fatalf("segments = %+v", segs)
		}
		if segs[0].Text != "print(1)\nprint(2)" {
			t.Errorf("Text = %q", segs[0].Text)
		}
	})
}

func TestPlainTransform(t *testing.T) {
	// Marker style makes the inline transforms observable without ANSI.
	style := PlainStyle{
		Bold:        func(s string) string { return "<b>" + s + "</b>" },
		Italic:      func(s string) string { return "<i>" + s + "</i>" },
		Bullet:      "• ",
		QuotePrefix: "│ ",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line unchanged", "hello world", "hello world"},
		{"paragraph break preserved", "one\n\ntwo", "one\n\ntwo"},
		{"dash list", "- first\n- second", "• first\n• second"},
		{"star list", "* item", "• item"},
		{"indented list keeps indent", "  - nested", "  • nested"},
		{"numbered list normalized", "1.  first", "1. first"},
		{"blockquote", "> quoted line", "│ quoted line"},
		{"bold span", "this is **important** text", "this is <b>important</b> text"},
		{"italic span", "an *emphasis* here", "an <i>emphasis</i> here"},
		{"bold not eaten by italic", "**a** and *b*", "<b>a</b> and <i>b</i>"},
		{"unterminated bold left alone", "keep **this", "keep **this"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlainTransform(tt.input, style)
			if got != tt.want {
				t.Errorf("PlainTransform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// The zero PlainStyle strips markers without adding any styling.
func TestPlainTransformZeroStyle(t *testing.T) {
	got := PlainTransform("**bold** and *italic*\n- item", PlainStyle{})
	want := "bold and italic\n• item"
	if got != want {
		t.Errorf("PlainTransform = %q, want %q", got, want)
	}
}

// The themed renderer must route prose through the transforms: markers
// consumed, bullets normalized, output stable across repeated renders.
func TestRendererPlainPath(t *testing.T) {
	r := New(styles.NewTheme("dark"), Options{Width: 60})

	got := r.Render("some **bold** text\n- item")
	if strings.Contains(got, "**") {
		t.Errorf("bold markers survived: %q", got)
	}
	if !strings.Contains(got, "•") {
		t.Errorf("list bullet missing: %q", got)
	}
	if again := r.Render("some **bold** text\n- item"); again != got {
		t.Error("repeated renders of the same input should match")
	}
}
