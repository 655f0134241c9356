// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"strings"
	"testing"
)

func TestClassifyCategory(t *testing.T) {
	longStory := "Once upon a time there was a brave knight who lived in a " +
		"great castle at the edge of a dark forest. Every morning he rode " +
		"out across the fields to watch the sun rise over the kingdom, and " +
		"every evening he returned to tell the children what he had seen."

	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{"fenced block", "Here you go:\n```python\nprint('hi')\n```", CategoryCode},
		{"python def", "def add(a, b):\n    return a + b", CategoryCode},
		{"js function", "function greet() { return 'hi'; }", CategoryCode},
		{"c include", "#include <stdio.h>\nint main() {}", CategoryCode},
		{"sql query", "SELECT name FROM users WHERE id = 1", CategoryCode},
		{"import line", "import os\nos.getcwd()", CategoryCode},
		{"long story", longStory, CategoryStory},
		{"story keyword but short", "Once upon a time, the end.", CategoryPlain},
		{"long text without story words", strings.Repeat("the weather is nice today. ", 12), CategoryPlain},
		{"plain answer", "The capital of France is Paris.", CategoryPlain},
		{"empty", "", CategoryPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got.Category != tt.want {
				t.Errorf("Classify(%q).Category = %v, want %v", tt.input, got.Category, tt.want)
			}
		})
	}
}

// Code indicators must win even when the response also reads like a story.
func TestClassifyCodeBeatsStory(t *testing.T) {
	text := "Once upon a time in a kingdom far away, a programmer wrote:\n" +
		"```python\nprint('dragon')\n```\n" +
		strings.Repeat("And the castle compiled happily ever after. ", 6)

	got := Classify(text)
	if got.Category != CategoryCode {
		t.Errorf("Category = %v, want %v", got.Category, CategoryCode)
	}
}

func TestClassifyExtractsLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tagged fence", "```go\nfmt.Println(1)\n```", "go"},
		{"uppercase tag normalized", "```Python\nprint(1)\n```", "python"},
		{"untagged fence detected", "```\ndef f():\n    pass\n```", "python"},
		{"no fence detected", "function f() { return 1; }", "javascript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got.Language != tt.want {
				t.Errorf("Classify(%q).Language = %q, want %q", tt.input, got.Language, tt.want)
			}
		})
	}
}

func TestStoryTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short unpunctuated first line", "The Dragon's Gift\nOnce upon a time...", "The Dragon's Gift"},
		{"markdown heading stripped", "# The Lost Kingdom\nbody", "The Lost Kingdom"},
		{"punctuated first line falls back", "It began at dawn.\nThe rest follows.", "A Story"},
		{"long first line falls back", strings.Repeat("word ", 20) + "\nbody", "A Story"},
		{"empty input", "", "A Story"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StoryTitle(tt.input); got != tt.want {
				t.Errorf("StoryTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsStoryLengthGate(t *testing.T) {
	short := "A dragon lived in the castle."
	if IsStory(short) {
		t.Errorf("IsStory(short) = true, want false")
	}

	long := short + strings.Repeat(" It guarded the kingdom with great care.", 6)
	if len(long) <= storyMinLength {
		t.Fatalf("test input must exceed %d bytes, got %d", storyMinLength, len(long))
	}
	if !IsStory(long) {
		t.Errorf("IsStory(long) = false, want true")
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"python def", "def main():\n    print('x')", "python"},
		{"python import", "import json", "python"},
		{"javascript arrow", "const f = (x) => x * 2", "javascript"},
		{"javascript console", "console.log('hi')", "javascript"},
		{"java class", "public class Main {}", "java"},
		{"cpp include", "#include <vector>", "cpp"},
		{"cpp namespace", "std::cout << 1;", "cpp"},
		{"php tag", "<?php echo 1; ?>", "php"},
		{"html doctype", "<!DOCTYPE html>", "html"},
		{"html div", "<div class=\"x\"></div>", "html"},
		{"css rule", ".box { color: red; }", "css"},
		{"sql select", "select id from t", "sql"},
		{"sql create", "CREATE TABLE users (id int)", "sql"},
		{"unknown", "hello world", "text"},
		{"empty", "", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.code); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
