// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command line surface of dark: argument
// parsing, the one-shot ask command, the line-mode REPL, and the
// status and config subcommands. The TUI itself lives in ui/chat and
// is launched from main.
package cli
