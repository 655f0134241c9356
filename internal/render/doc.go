// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns classified assistant responses into styled
// terminal output.
//
// The package has two layers. The pure layer (Sanitize, ExtractSegments,
// PlainTransform) is deterministic string manipulation with no terminal
// dependency, which is where every formatting rule lives and where the
// tests bite. The styled layer (Renderer) dresses the pure output with
// lipgloss, chroma syntax highlighting, and optionally glamour markdown
// rendering, according to the user's display preferences.
//
// Formatting is applied exactly once, at render time, to the raw
// response text. Rendered output is never fed back through the
// renderer.
package render
