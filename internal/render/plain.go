// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// plain.go - Line-oriented prose formatting.
//
// Plain responses get a light markdown-ish treatment: list bullets,
// blockquote indentation, and inline bold/italic spans. The transforms
// run exactly once over the raw text; the output is display text and is
// never parsed again.
package render

import (
	"regexp"
	"strings"
)

// PlainStyle injects the styling hooks used by PlainTransform. The zero
// value formats structure only (bullets and quote prefixes) and leaves
// inline spans unstyled, which is what the tests and dumb terminals use.
type PlainStyle struct {
	// Bold and Italic wrap inline spans. Nil means strip the markers
	// and keep the span text as-is.
	Bold   func(string) string
	Italic func(string) string

	// Bullet replaces "- " / "* " list markers. Empty means "• ".
	Bullet string

	// QuotePrefix replaces "> " on blockquote lines. Empty means "│ ".
	QuotePrefix string
}

var (
	boldSpan   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicSpan = regexp.MustCompile(`\*([^*\n]+)\*`)
	listItem   = regexp.MustCompile(`^(\s*)[-*]\s+`)
	numberItem = regexp.MustCompile(`^(\s*)(\d+)\.\s+`)
)

// PlainTransform formats prose for display. Transforms, in order:
// paragraph breaks preserved, "- " / "* " / "1. " list items bulleted
// or indented, "> " blockquotes prefixed, then **bold** and *italic*
// inline spans styled. Calling it on its own output is not supported;
// format raw text once.
func PlainTransform(text string, style PlainStyle) string {
	bullet := style.Bullet
	if bullet == "" {
		bullet = "• "
	}
	quote := style.QuotePrefix
	if quote == "" {
		quote = "│ "
	}

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "> "):
			trimmed := strings.TrimPrefix(strings.TrimSpace(line), "> ")
			line = quote + trimmed
		case listItem.MatchString(line):
			line = listItem.ReplaceAllString(line, "${1}"+bullet)
		case numberItem.MatchString(line):
			line = numberItem.ReplaceAllString(line, "${1}${2}. ")
		}
		out[i] = styleInline(line, style)
	}
	return strings.Join(out, "\n")
}

// styleInline applies bold first so that ** pairs are consumed before
// the single-asterisk italic pass can see them.
func styleInline(line string, style PlainStyle) string {
	line = boldSpan.ReplaceAllStringFunc(line, func(m string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(m, "**"), "**")
		if style.Bold != nil {
			return style.Bold(inner)
		}
		return inner
	})
	line = italicSpan.ReplaceAllStringFunc(line, func(m string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(m, "*"), "*")
		if style.Italic != nil {
			return style.Italic(inner)
		}
		return inner
	})
	return line
}
