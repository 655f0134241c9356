// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the main chat screen: the composer, the
// conversation viewport with the typing animation, the recent-chats
// sidebar, and the sign-in gate for anonymous users.
//
// The screen is a single Bubble Tea model. All asynchronous work
// (requests, animation ticks, history loading) flows through the
// commands in messages.go; Update is the only place state changes.
package chat
