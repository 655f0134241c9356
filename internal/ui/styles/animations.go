// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for dark-tui.
package styles

import "time"

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// LineSpinner - simple line rotation, used by the thinking indicator.
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - classic three-dot animation for the plain REPL.
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// PulseSpinner - pulsing indicator for network waits.
var PulseSpinner = SpinnerConfig{
	Frames: []string{"( )", "(.)", "(o)", "(O)", "(o)", "(.)", "( )", "   "},
	FPS:    8,
}

// =============================================================================
// TYPING EFFECT
// =============================================================================

// TypingCursor frames for the blinking cursor shown while a response is
// being typed out.
var TypingCursor = []string{"▌", " "}

// CursorBlinkRate matches common terminal cursor timing.
var CursorBlinkRate = 530 * time.Millisecond

// TypingInterval is the delay between revealed characters during the
// typing animation.
var TypingInterval = 20 * time.Millisecond
