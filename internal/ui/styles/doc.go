// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for dark-tui.
//
// The package is organized around three ideas:
//
//   - Palette: a complete color scheme. Three ship with the client
//     ("dark", "light", "blue") and the user can cycle between them at
//     runtime. Colors are lipgloss.AdaptiveColor values so each palette
//     still degrades sensibly on light terminals.
//
//   - Theme: every lipgloss.Style the UI uses, built from the active
//     palette by initStyles. Swapping palettes rebuilds the styles in
//     place, so components holding a *Theme pick up the change on the
//     next render.
//
//   - Layout: width thresholds that decide whether the sidebar and
//     other chrome are shown.
//
// Spinner frames and typing-effect timing also live here so that the
// TUI and the plain REPL animate identically.
package styles
