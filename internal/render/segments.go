// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// segments.go - Fenced code block extraction.
//
// Splits a response into an alternating sequence of prose and code
// segments so that a single answer mixing explanation and several
// fenced blocks renders each piece appropriately.
package render

import "strings"

// Segment is one piece of a response: either prose or a fenced code
// block with its language tag.
type Segment struct {
	Code     bool
	Language string
	Text     string
}

// ExtractSegments splits text on ``` fences. An unterminated fence runs
// to the end of the input and is still treated as code. The fence
// markers themselves are not part of any segment.
func ExtractSegments(text string) []Segment {
	var segs []Segment
	rest := text

	for {
		idx := strings.Index(rest, "```")
		if idx < 0 {
			break
		}

		if prose := rest[:idx]; strings.TrimSpace(prose) != "" {
			segs = append(segs, Segment{Text: prose})
		}
		rest = rest[idx+3:]

		// Language tag is whatever sits between the fence and the
		// first newline.
		lang, body, found := strings.Cut(rest, "\n")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if !found {
			// Fence at end of input with no body.
			segs = append(segs, Segment{Code: true, Language: lang})
			return segs
		}

		end := strings.Index(body, "```")
		if end < 0 {
			segs = append(segs, Segment{Code: true, Language: lang, Text: strings.TrimRight(body, "\n")})
			return segs
		}
		segs = append(segs, Segment{Code: true, Language: lang, Text: strings.TrimRight(body[:end], "\n")})
		rest = body[end+3:]
	}

	if strings.TrimSpace(rest) != "" {
		segs = append(segs, Segment{Text: rest})
	}
	if segs == nil {
		segs = []Segment{{Text: text}}
	}
	return segs
}
