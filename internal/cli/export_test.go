// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"

	"github.com/darkvoid-labs/dark-tui/internal/model"
)

func TestExportMarkdown(t *testing.T) {
	conv := model.NewConversation()
	conv.AddUserMessage("show me a loop")
	conv.AddMessage(model.NewAssistantMessage("```python\nfor i in range(3):\n    print(i)\n```", ""))

	md := exportMarkdown(conv)

	if !strings.HasPrefix(md, "# ") {
		t.Error("export should start with the title heading")
	}
	if !strings.Contains(md, "**You:**") || !strings.Contains(md, "**Dark:**") {
		t.Error("export should label both speakers")
	}
	if !strings.Contains(md, "```python") {
		t.Error("code fences must survive export verbatim")
	}
}
