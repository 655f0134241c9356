// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify categorizes assistant responses before rendering.
//
// Every response falls into exactly one category: code, story, or plain
// prose. The category drives both how the response is rendered and which
// placeholder the typing animation uses. Classification is pure string
// analysis with no I/O, so it is safe to call from any goroutine.
//
// The checks are ordered and first-match-wins: code indicators are
// checked before story indicators, and a story additionally requires the
// response to be longer than 200 bytes. Anything else is plain prose.
package classify
