// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-mode chat REPL.
//
// Handles "dark chat" (and "dark --plain"), a plain-terminal
// alternative to the TUI for dumb terminals and SSH sessions.
//
// Interactive commands:
//   /help, /h      Show available commands
//   /new, /n       Start a new conversation
//   /history       List recent conversations
//   /rename TITLE  Rename the current conversation
//   /export [FILE] Export the conversation as markdown
//   /attach [PATH] Attach a file (no path: list attachments)
//   /detach N      Remove attachment N
//   /theme NAME    Switch theme for this session
//   /quit, /q      Exit (also Ctrl+D)
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/darkvoid-labs/dark-tui/internal/api"
	"github.com/darkvoid-labs/dark-tui/internal/config"
	"github.com/darkvoid-labs/dark-tui/internal/history"
	"github.com/darkvoid-labs/dark-tui/internal/model"
	"github.com/darkvoid-labs/dark-tui/internal/render"
	"github.com/darkvoid-labs/dark-tui/internal/session"
	"github.com/darkvoid-labs/dark-tui/internal/store"
	"github.com/darkvoid-labs/dark-tui/internal/ui/styles"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// lineReader wraps liner with persistent input history.
type lineReader struct {
	line        *liner.State
	historyFile string
}

func newLineReader() *lineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile, err := config.HistoryPath()
	if err != nil {
		historyFile = filepath.Join(os.TempDir(), "dark_history")
	}

	r := &lineReader{line: line, historyFile: historyFile}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
	return r
}

func (r *lineReader) read(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *lineReader) close() {
	if f, err := os.Create(r.historyFile); err == nil {
		r.line.WriteHistory(f)
		f.Close()
	}
	r.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// HandleChat runs the line-mode REPL.
func HandleChat(args Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}

	statePath, err := config.StatePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "state: %v\n", err)
		os.Exit(1)
	}
	st, err := store.Open(statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "state: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	sessions := session.NewManager(st)
	records, _ := st.LoadRecords()
	ledger := history.Load(records)
	client := api.NewClient(api.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout()})

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.SetSize(TerminalWidth(), 24)
	prefs := sessions.Prefs()
	renderer := render.New(theme, render.Options{
		Width:              TerminalWidth(),
		SyntaxHighlighting: prefs.SyntaxHighlighting && IsStdoutTTY(),
		Enhanced:           false,
	})

	if !args.Quiet {
		fmt.Println(theme.HeaderTitle.Render("dark") + theme.HeaderSubtitle.Render("  line mode, /help for commands"))
	}

	reader := newLineReader()
	defer reader.close()

	conv := model.NewConversation()
	var files attachmentList

	for {
		input, err := reader.read("> ")
		if err != nil {
			// liner returns ErrPromptAborted on Ctrl+C and io.EOF on Ctrl+D.
			fmt.Println()
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := handleSlashCommand(input, &conv, ledger, &files, theme); quit {
				break
			}
			continue
		}

		if sessions.NeedsSignIn() {
			name, err := reader.read("Five free messages used. Pick a name to continue: ")
			if err != nil || strings.TrimSpace(name) == "" {
				continue
			}
			profile, err := client.CreateUser(context.Background(), sessions.Session().UserID, strings.TrimSpace(name))
			if err != nil {
				fmt.Println(theme.ErrorStyle.Render(api.UserMessage(err)))
				continue
			}
			sessions.SignIn(profile.UserID, profile.Name)
			fmt.Println(theme.SuccessStyle.Render("Welcome, " + profile.Name))
		}

		conv.AddUserMessage(input)
		sessions.RecordMessage()

		stop := startDotsSpinner()
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout())
		resp, err := client.Chat(ctx, api.ChatRequest{
			Message:        input,
			ConversationID: conv.ID,
			UserID:         sessions.Session().UserID,
		})
		cancel()
		stop()

		if err != nil {
			fmt.Println(theme.ErrorStyle.Render(api.UserMessage(err)))
			continue
		}
		if resp.ConversationID != "" {
			conv.ID = resp.ConversationID
		}

		rendered := renderer.Render(resp.Response)
		conv.AddMessage(model.NewAssistantMessage(resp.Response, rendered))
		fmt.Println(rendered)
		fmt.Println()

		ledger.UpsertFront(conv.Record())
		ledger.UpdateTitleIfGeneric(conv.ID, conv.Title)
		st.SaveRecords(ledger.All())
	}
}

// handleSlashCommand executes an interactive command. Returns true when
// the REPL should exit.
func handleSlashCommand(input string, conv **model.Conversation, ledger *history.Ledger, files *attachmentList, theme *styles.Theme) bool {
	cmd, rest, _ := strings.Cut(input, " ")

	switch cmd {
	case "/quit", "/q", "/exit":
		return true

	case "/new", "/n":
		*conv = model.NewConversation()
		files.clear()
		fmt.Println(theme.InfoStyle.Render("Started a new conversation"))

	case "/history":
		records := ledger.VisibleSlice()
		if len(records) == 0 {
			fmt.Println(theme.InfoStyle.Render("No conversations yet"))
			return false
		}
		for _, rec := range records {
			fmt.Printf("  %s  %s\n",
				theme.SidebarMeta.Render(rec.UpdatedAt.Format("Jan 02 15:04")),
				rec.Title)
		}

	case "/export":
		exportConversation(*conv, strings.TrimSpace(rest), theme)

	case "/rename":
		title := strings.TrimSpace(rest)
		if title == "" {
			fmt.Println(theme.InfoStyle.Render("usage: /rename NEW TITLE"))
			return false
		}
		(*conv).Title = title
		ledger.Rename((*conv).ID, title)
		fmt.Println(theme.InfoStyle.Render("Renamed to " + title))

	case "/attach":
		path := strings.TrimSpace(rest)
		if path == "" {
			if files.empty() {
				fmt.Println(theme.InfoStyle.Render("No attachments"))
				return false
			}
			for i, f := range files.files {
				fmt.Printf("  %d  %s\n", i+1, f.Name)
			}
			return false
		}
		a, err := loadAttachment(path)
		if err != nil {
			fmt.Println(theme.ErrorStyle.Render("Could not attach: " + err.Error()))
			return false
		}
		files.add(a)
		fmt.Println(theme.InfoStyle.Render("Attached " + a.Name))

	case "/detach":
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || !files.removeAt(n-1) {
			fmt.Println(theme.InfoStyle.Render("usage: /detach N (see /attach for the list)"))
			return false
		}
		fmt.Println(theme.InfoStyle.Render("Removed attachment"))

	case "/theme":
		name := strings.TrimSpace(rest)
		if name == "" {
			fmt.Println(theme.InfoStyle.Render("Themes: " + strings.Join(styles.ThemeNames(), ", ")))
			return false
		}
		theme.SetPalette(name)
		fmt.Println(theme.InfoStyle.Render("Theme: " + name))

	case "/help", "/h":
		fmt.Println(`  /new, /n       Start a new conversation
  /history       List recent conversations
  /rename TITLE  Rename the current conversation
  /export [FILE] Export as markdown (no file: preview)
  /attach [PATH] Attach a file (no path: list attachments)
  /detach N      Remove attachment N
  /theme NAME    Switch theme (dark, light, blue)
  /quit, /q      Exit`)

	default:
		fmt.Println(theme.WarningStyle.Render("Unknown command: " + cmd))
	}
	return false
}

// startDotsSpinner animates a waiting indicator on stderr until the
// returned stop function is called. No-op when stderr is not a TTY.
func startDotsSpinner() func() {
	if !IsStderrTTY() {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		frame := 0
		ticker := time.NewTicker(styles.DotsSpinner.Duration())
		defer ticker.Stop()
		for {
			select {
			case <-done:
				fmt.Fprint(os.Stderr, "\r    \r")
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r%s", styles.DotsSpinner.Frames[frame%len(styles.DotsSpinner.Frames)])
				frame++
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}
