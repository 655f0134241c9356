// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for dark-tui.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// LAYOUT MODES
// =============================================================================

// LayoutMode describes how much horizontal room the terminal offers.
type LayoutMode int

const (
	// LayoutNarrow hides the sidebar and collapses chrome (< 60 cols).
	LayoutNarrow LayoutMode = iota
	// LayoutMedium shows the chat with a compact sidebar (< 100 cols).
	LayoutMedium
	// LayoutWide shows everything.
	LayoutWide
)

// LayoutFor picks the layout mode for a terminal width.
func LayoutFor(width int) LayoutMode {
	switch {
	case width < 60:
		return LayoutNarrow
	case width < 100:
		return LayoutMedium
	default:
		return LayoutWide
	}
}

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application, built from
// the active palette. It detects the terminal's color capability and
// adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Active palette
	Palette Palette

	// Layout dimensions
	Width  int
	Height int

	// Application container
	App       lipgloss.Style
	Container lipgloss.Style

	// Header
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// Message bubbles
	UserBubble  lipgloss.Style
	BotBubble   lipgloss.Style
	ErrorBubble lipgloss.Style

	// Input area
	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	CharCount        lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	PremiumBadge lipgloss.Style

	// Sidebar (recent conversations)
	Sidebar             lipgloss.Style
	SidebarTitle        lipgloss.Style
	SidebarItem         lipgloss.Style
	SidebarItemSelected lipgloss.Style
	SidebarMeta         lipgloss.Style

	// Thinking indicator
	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// Code blocks
	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style
	CodeLineNum   lipgloss.Style

	// Story blocks
	StoryBlock lipgloss.Style
	StoryTitle lipgloss.Style

	// Blockquotes and inline prose styling
	Blockquote lipgloss.Style
	BoldText   lipgloss.Style
	ItalicText lipgloss.Style

	// Welcome screen
	WelcomeBox   lipgloss.Style
	WelcomeLogo  lipgloss.Style
	WelcomeHint  lipgloss.Style
	WelcomeKey   lipgloss.Style

	// Semantic states
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a theme from a palette name with all styles
// configured for the detected terminal.
func NewTheme(paletteName string) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		Palette:      PaletteFor(paletteName),
	}

	t.initStyles()
	return t
}

// SetPalette switches the active palette and rebuilds every style.
// Called when the user cycles themes at runtime.
func (t *Theme) SetPalette(paletteName string) {
	t.Palette = PaletteFor(paletteName)
	t.initStyles()
}

// SetSize records the terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// Layout returns the layout mode for the current width.
func (t *Theme) Layout() LayoutMode {
	return LayoutFor(t.Width)
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.AccentDeep).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(p.BotBubbleFg).
		Background(p.BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.BotBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(p.Error).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(p.Error).
		PaddingLeft(2)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Info).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.CharCount = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Align(lipgloss.Right)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Info).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.PremiumBadge = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Warning).
		Padding(0, 1).
		Bold(true)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.SidebarItemSelected = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Accent).
		Padding(0, 1).
		Bold(true)

	t.SidebarMeta = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Thinking indicator
	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Code blocks
	t.CodeBlock = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(1, 2)

	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Background(p.OverlayDim).
		Padding(0, 1).
		Bold(true)

	t.CodeLineNum = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	// Story blocks
	t.StoryBlock = lipgloss.NewStyle().
		Background(p.StoryBlockBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.StoryBlockBorder).
		Padding(1, 3)

	t.StoryTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Warning).
		Align(lipgloss.Center)

	// Prose styling
	t.Blockquote = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	t.BoldText = lipgloss.NewStyle().Bold(true)
	t.ItalicText = lipgloss.NewStyle().Italic(true)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.AccentDeep).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.WelcomeHint = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.WelcomeKey = lipgloss.NewStyle().
		Foreground(p.Info).
		Bold(true)

	// Semantic states
	t.SuccessStyle = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	t.WarningStyle = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	t.InfoStyle = lipgloss.NewStyle().Foreground(p.Info)
}
