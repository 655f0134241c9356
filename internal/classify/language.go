// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// language.go - Programming language detection for untagged code.
//
// A small substring chain that covers the languages the backend model
// actually emits. First match wins, so the order of the branches is
// load-bearing.
package classify

import "strings"

// DetectLanguage guesses the language of a code snippet that arrived
// without a fence tag. Returns "text" when nothing matches.
func DetectLanguage(code string) string {
	lower := strings.ToLower(code)

	switch {
	case strings.Contains(lower, "def ") ||
		strings.Contains(lower, "import ") ||
		strings.Contains(lower, "print("):
		return "python"

	case strings.Contains(lower, "function") ||
		strings.Contains(lower, "console.log") ||
		strings.Contains(lower, "=>") ||
		strings.Contains(lower, "const ") ||
		strings.Contains(lower, "let "):
		return "javascript"

	case strings.Contains(lower, "public class") ||
		strings.Contains(lower, "public static void"):
		return "java"

	case strings.Contains(lower, "#include") ||
		strings.Contains(lower, "std::"):
		return "cpp"

	case strings.Contains(lower, "<?php"):
		return "php"

	case strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<div") ||
		strings.Contains(lower, "<!doctype"):
		return "html"

	case strings.Contains(lower, "{") &&
		strings.Contains(lower, ":") &&
		strings.Contains(lower, ";"):
		return "css"

	case strings.Contains(lower, "select ") ||
		strings.Contains(lower, "insert ") ||
		strings.Contains(lower, "create table"):
		return "sql"
	}

	return "text"
}
