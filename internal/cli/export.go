// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export.go - Conversation export for the REPL's /export command.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/darkvoid-labs/dark-tui/internal/model"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
	"github.com/darkvoid-labs/dark-tui/internal/util"
)

// exportMarkdown serializes a conversation to a markdown transcript.
// Raw message text goes in verbatim so code fences survive.
func exportMarkdown(conv *model.Conversation) string {
	var b strings.Builder
	b.WriteString("# " + conv.Title + "\n\n")
	b.WriteString("_Exported " + conv.UpdatedAt.Format("2006-01-02 15:04") + "_\n\n")

	for _, msg := range conv.Messages {
		switch msg.Role {
		case model.RoleUser:
			b.WriteString("**You:**\n\n")
		default:
			b.WriteString("**Dark:**\n\n")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n\n---\n\n")
	}
	return b.String()
}

// exportConversation writes the transcript to target, or previews it
// through glamour when no target was given.
func exportConversation(conv *model.Conversation, target string, theme *styles.Theme) {
	if conv.IsEmpty() {
		fmt.Println(theme.InfoStyle.Render("Nothing to export yet"))
		return
	}
	md := exportMarkdown(conv)

	if target == "" {
		out, err := glamour.Render(md, "auto")
		if err != nil {
			fmt.Print(md)
			return
		}
		fmt.Print(out)
		return
	}

	if err := util.AtomicWriteFile(target, []byte(md), 0o644); err != nil {
		fmt.Println(theme.ErrorStyle.Render("Export failed: " + err.Error()))
		return
	}
	fmt.Println(theme.InfoStyle.Render("Exported to " + target))
}
