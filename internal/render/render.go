// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Styled response rendering.
//
// The Renderer dispatches a classified response to the code, story, or
// plain path and dresses the result with the active theme. Rendering
// always starts from the raw response text; output is display-only.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/darkvoid-labs/dark-tui/internal/classify"
	"github.com/darkvoid-labs/dark-tui/internal/ui/components"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// Options carry the user's display preferences into the renderer.
type Options struct {
	Width int

	// SyntaxHighlighting enables chroma highlighting inside code blocks.
	SyntaxHighlighting bool

	// Enhanced routes plain prose through glamour's markdown renderer
	// instead of the line-oriented transforms.
	Enhanced bool
}

// Renderer renders classified responses for the terminal.
type Renderer struct {
	theme *styles.Theme
	opts  Options
	glam  *glamour.TermRenderer
}

// New creates a renderer. The glamour renderer is built lazily on the
// first enhanced render so plain configurations pay nothing for it.
func New(theme *styles.Theme, opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	return &Renderer{theme: theme, opts: opts}
}

// SetWidth updates the render width after a terminal resize.
func (r *Renderer) SetWidth(width int) {
	if width <= 0 {
		return
	}
	if width != r.opts.Width {
		r.opts.Width = width
		r.glam = nil
	}
}

// SetOptions swaps display preferences, invalidating cached state.
func (r *Renderer) SetOptions(opts Options) {
	if opts.Width <= 0 {
		opts.Width = r.opts.Width
	}
	r.opts = opts
	r.glam = nil
}

// Render classifies raw response text and renders it. This is the single
// formatting entry point: callers hand in the original text exactly once
// and display the result verbatim.
func (r *Renderer) Render(raw string) string {
	return r.RenderClassified(raw, classify.Classify(raw))
}

// RenderClassified renders raw text under an already-computed
// classification.
func (r *Renderer) RenderClassified(raw string, c classify.Classification) string {
	clean := Sanitize(raw)

	switch c.Category {
	case classify.CategoryCode:
		return r.renderCode(clean)
	case classify.CategoryStory:
		return r.renderStory(clean, c.Title)
	default:
		return r.renderPlain(clean)
	}
}

// renderCode renders each fenced block in its own container and the
// prose around them through the plain path.
func (r *Renderer) renderCode(text string) string {
	var parts []string
	for _, seg := range ExtractSegments(text) {
		if !seg.Code {
			if trimmed := strings.TrimSpace(seg.Text); trimmed != "" {
				parts = append(parts, r.renderPlain(trimmed))
			}
			continue
		}
		lang := seg.Language
		if lang == "" {
			lang = classify.DetectLanguage(seg.Text)
		}
		cb := components.NewCodeBlock(lang, seg.Text)
		cb.MaxWidth = r.opts.Width
		cb.Highlight = r.opts.SyntaxHighlighting
		parts = append(parts, cb.Render(r.theme))
	}
	return strings.Join(parts, "\n")
}

// renderStory strips the title line from the body when the title was
// derived from it, then renders the themed story container.
func (r *Renderer) renderStory(text, title string) string {
	body := strings.TrimSpace(text)
	if title == "" {
		title = classify.StoryTitle(text)
	}
	first, rest, found := strings.Cut(body, "\n")
	if found && strings.Trim(strings.TrimSpace(first), "*# ") == title {
		body = strings.TrimSpace(rest)
	}

	sb := components.NewStoryBlock(title, body)
	sb.MaxWidth = r.opts.Width
	return sb.Render(r.theme)
}

// renderPlain formats prose, preferring glamour when enhanced rendering
// is on and falling back to the deterministic transforms on any error.
func (r *Renderer) renderPlain(text string) string {
	if r.opts.Enhanced {
		if out, err := r.glamourRender(text); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return PlainTransform(text, PlainStyle{
		Bold:        func(s string) string { return r.theme.BoldText.Render(s) },
		Italic:      func(s string) string { return r.theme.ItalicText.Render(s) },
		QuotePrefix: r.theme.Blockquote.Render("│ "),
	})
}

func (r *Renderer) glamourRender(text string) (string, error) {
	if r.glam == nil {
		g, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.opts.Width-4),
		)
		if err != nil {
			return "", err
		}
		r.glam = g
	}
	return r.glam.Render(text)
}
