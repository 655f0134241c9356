// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the styled UI components for the dark TUI.

Components are built on Lip Gloss and take the active theme at render
time, so a theme switch restyles everything on the next frame.

Header (header.go) and StatusBar (statusbar.go) frame the screen.
Sidebar (sidebar.go) lists recent conversations. MessageView
(message.go) draws chat bubbles. CodeBlock (codeblock.go) and
StoryBlock (storyblock.go) are the framed containers for classified
responses. Welcome (welcome.go) is the empty-state banner.
*/
package components
