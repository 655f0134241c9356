// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sanitize.go - Model output sanitization.
//
// Assistant responses are untrusted text headed for a terminal. Raw
// escape bytes in the response could move the cursor, retitle the
// window, or worse, so they are stripped before any styling is applied.
package render

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes terminal control bytes from model output. Newlines
// and tabs survive; every other C0 control character, DEL, the CSI
// rune, and any byte that is not valid UTF-8 (which covers a raw 0x9b)
// are dropped. Sanitizing already-sanitized text is a no-op.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if dropRune(r, size) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if dropRune(r, size) {
			return true
		}
		i += size
	}
	return false
}

// dropRune reports whether a decoded rune should be stripped. A
// RuneError of size 1 marks an invalid byte, not a literal U+FFFD.
func dropRune(r rune, size int) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	if r == utf8.RuneError && size == 1 {
		return true
	}
	return r < 0x20 || r == 0x7f || r == 0x9b
}
