// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// classify.go - Response categorization.
//
// Decides whether an assistant response is a code answer, a story, or
// plain prose. The decision is ordered: code indicators are checked
// first, then story indicators (which also require length > 200 bytes),
// and everything else is plain.
package classify

import (
	"regexp"
	"strings"
)

// =============================================================================
// TYPES
// =============================================================================

// Category is the presentation category of a response.
type Category int

const (
	// CategoryPlain is ordinary prose with light inline formatting.
	CategoryPlain Category = iota

	// CategoryCode is a response carrying source code.
	CategoryCode

	// CategoryStory is long-form narrative fiction.
	CategoryStory
)

// String returns the category name for logging and tests.
func (c Category) String() string {
	switch c {
	case CategoryCode:
		return "code"
	case CategoryStory:
		return "story"
	default:
		return "plain"
	}
}

// Classification is the result of classifying a response.
type Classification struct {
	Category Category

	// Language is the primary programming language for code responses.
	// Taken from the first fence tag when present, detected otherwise.
	Language string

	// Title is the display title for story responses.
	Title string
}

// =============================================================================
// INDICATORS
// =============================================================================

// storyMinLength is the minimum response length for the story category.
// Anything shorter renders as plain prose even when it reads like one.
const storyMinLength = 200

// codeIndicators are plain substrings whose presence marks a response as
// code. Matching is case-insensitive.
var codeIndicators = []string{
	"```",
	"#include",
	"console.log",
	"print(",
	"public static",
	"<?php",
}

// codePatterns are structural code shapes that need more than a
// substring check.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfunction\b[^\n]*\{`),
	regexp.MustCompile(`(?i)\bdef\s+\w+\s*\(`),
	regexp.MustCompile(`(?i)\bclass\s+\w+`),
	regexp.MustCompile(`(?im)^\s*import\s+\w`),
	regexp.MustCompile(`(?i)\bselect\s+.+\s+from\b`),
}

// storyIndicators mark narrative fiction. Matching is case-insensitive.
var storyIndicators = []string{
	"once upon a time",
	"kingdom",
	"castle",
	"princess",
	"dragon",
	"chapter",
	"the end",
	"moral of the story",
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify analyzes a response and returns its presentation category
// with any extracted metadata. The checks are ordered: code wins over
// story, story wins over plain.
func Classify(text string) Classification {
	if IsCode(text) {
		return Classification{
			Category: CategoryCode,
			Language: PrimaryLanguage(text),
		}
	}
	if IsStory(text) {
		return Classification{
			Category: CategoryStory,
			Title:    StoryTitle(text),
		}
	}
	return Classification{Category: CategoryPlain}
}

// IsCode reports whether the response carries source code.
func IsCode(text string) bool {
	lower := strings.ToLower(text)
	for _, ind := range codeIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	for _, pat := range codePatterns {
		if pat.MatchString(text) {
			return true
		}
	}
	return false
}

// IsStory reports whether the response is long-form narrative. Short
// responses are never stories regardless of content.
func IsStory(text string) bool {
	if len(text) <= storyMinLength {
		return false
	}
	lower := strings.ToLower(text)
	for _, ind := range storyIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// StoryTitle derives a display title for a story response. The first
// line is used when it is short and carries no terminal punctuation,
// which catches model output like "The Dragon's Gift" followed by the
// body. Anything else falls back to a fixed title.
func StoryTitle(text string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	first = strings.TrimSpace(first)
	if first == "" || len([]rune(first)) >= 60 {
		return "A Story"
	}
	if strings.ContainsAny(first, ".!?") {
		return "A Story"
	}
	return strings.Trim(first, "*# ")
}

// PrimaryLanguage returns the language of the first fenced block when a
// tag is present, or falls back to detection on the fence body (or the
// whole response when there is no fence).
func PrimaryLanguage(text string) string {
	idx := strings.Index(text, "```")
	if idx < 0 {
		return DetectLanguage(text)
	}
	rest := text[idx+3:]
	tag, body, _ := strings.Cut(rest, "\n")
	tag = strings.TrimSpace(tag)
	if tag != "" {
		return strings.ToLower(tag)
	}
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return DetectLanguage(body)
}
