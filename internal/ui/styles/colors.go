// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the dark-tui
// client. All colors use Lip Gloss AdaptiveColor for automatic
// light/dark terminal detection, and the active palette can be swapped
// at runtime when the user cycles themes.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Palette is one complete color scheme. The client ships three:
// "dark" (default), "light", and "blue".
type Palette struct {
	Name string

	// Accents
	Accent     lipgloss.AdaptiveColor // assistant accent, selections
	AccentDeep lipgloss.AdaptiveColor
	Info       lipgloss.AdaptiveColor // commands, hints
	Success    lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// Surfaces
	Surface       lipgloss.AdaptiveColor
	SurfaceDim    lipgloss.AdaptiveColor
	SurfaceBright lipgloss.AdaptiveColor
	Overlay       lipgloss.AdaptiveColor
	OverlayDim    lipgloss.AdaptiveColor

	// Text
	TextPrimary   lipgloss.AdaptiveColor
	TextSecondary lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextInverse   lipgloss.AdaptiveColor

	// Message bubbles
	UserBubbleBg     lipgloss.AdaptiveColor
	UserBubbleFg     lipgloss.AdaptiveColor
	UserBubbleBorder lipgloss.AdaptiveColor
	BotBubbleBg      lipgloss.AdaptiveColor
	BotBubbleFg      lipgloss.AdaptiveColor
	BotBubbleBorder  lipgloss.AdaptiveColor
	StoryBlockBg     lipgloss.AdaptiveColor
	StoryBlockBorder lipgloss.AdaptiveColor
}

// DarkPalette is the default scheme, deep violet accents on near-black.
var DarkPalette = Palette{
	Name:       "dark",
	Accent:     lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
	AccentDeep: lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#4C1D95"},
	Info:       lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"},
	Success:    lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"},
	Error:      lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"},
	Warning:    lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"},

	Surface:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#121218"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#0C0C10"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#24242E"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2C2C38"},
	OverlayDim:    lipgloss.AdaptiveColor{Light: "#D4D4D4", Dark: "#3A3A48"},

	TextPrimary:   lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E1F0"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6A1BE"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C6880"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#121218"},

	UserBubbleBg:     lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#3B2E6E"},
	UserBubbleFg:     lipgloss.AdaptiveColor{Light: "#4C1D95", Dark: "#EDE9FE"},
	UserBubbleBorder: lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#8B5CF6"},
	BotBubbleBg:      lipgloss.AdaptiveColor{Light: "#F5F3FF", Dark: "#1E1E2A"},
	BotBubbleFg:      lipgloss.AdaptiveColor{Light: "#3F3356", Dark: "#E5E1F0"},
	BotBubbleBorder:  lipgloss.AdaptiveColor{Light: "#C4B5FD", Dark: "#4C4670"},
	StoryBlockBg:     lipgloss.AdaptiveColor{Light: "#FDF8F0", Dark: "#1C1A24"},
	StoryBlockBorder: lipgloss.AdaptiveColor{Light: "#D4B483", Dark: "#8A7A52"},
}

// LightPalette keeps the same hues on bright surfaces for users who run
// light terminals regardless of the adaptive detection.
var LightPalette = Palette{
	Name:       "light",
	Accent:     lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#7C3AED"},
	AccentDeep: lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#5B21B6"},
	Info:       lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#0891B2"},
	Success:    lipgloss.AdaptiveColor{Light: "#047857", Dark: "#059669"},
	Error:      lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#E11D48"},
	Warning:    lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#D97706"},

	Surface:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#F8F8FC"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#F1F1F6", Dark: "#ECECF2"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#DEDEE8", Dark: "#DEDEE8"},
	OverlayDim:    lipgloss.AdaptiveColor{Light: "#C8C8D6", Dark: "#C8C8D6"},

	TextPrimary:   lipgloss.AdaptiveColor{Light: "#1F2430", Dark: "#1F2430"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#5A6072", Dark: "#5A6072"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#9AA0B4", Dark: "#9AA0B4"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},

	UserBubbleBg:     lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#EDE9FE"},
	UserBubbleFg:     lipgloss.AdaptiveColor{Light: "#4C1D95", Dark: "#4C1D95"},
	UserBubbleBorder: lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#8B5CF6"},
	BotBubbleBg:      lipgloss.AdaptiveColor{Light: "#F6F6FA", Dark: "#F6F6FA"},
	BotBubbleFg:      lipgloss.AdaptiveColor{Light: "#2A2438", Dark: "#2A2438"},
	BotBubbleBorder:  lipgloss.AdaptiveColor{Light: "#C8C2E0", Dark: "#C8C2E0"},
	StoryBlockBg:     lipgloss.AdaptiveColor{Light: "#FBF6EC", Dark: "#FBF6EC"},
	StoryBlockBorder: lipgloss.AdaptiveColor{Light: "#C9A86A", Dark: "#C9A86A"},
}

// BluePalette is a cool, ocean-tinted dark scheme.
var BluePalette = Palette{
	Name:       "blue",
	Accent:     lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
	AccentDeep: lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#1E3A8A"},
	Info:       lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"},
	Success:    lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"},
	Error:      lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"},
	Warning:    lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"},

	Surface:       lipgloss.AdaptiveColor{Light: "#F8FAFF", Dark: "#0B1220"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#EFF4FF", Dark: "#070D18"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#14203A"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#DBE4F6", Dark: "#1D2C4C"},
	OverlayDim:    lipgloss.AdaptiveColor{Light: "#C4D2EC", Dark: "#2A3C64"},

	TextPrimary:   lipgloss.AdaptiveColor{Light: "#16223A", Dark: "#DCE6F8"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#4A5A7A", Dark: "#9DB0D0"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#8094B8", Dark: "#5A6C90"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B1220"},

	UserBubbleBg:     lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1D4ED8"},
	UserBubbleFg:     lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#E0F2FE"},
	UserBubbleBorder: lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"},
	BotBubbleBg:      lipgloss.AdaptiveColor{Light: "#EFF4FF", Dark: "#101C32"},
	BotBubbleFg:      lipgloss.AdaptiveColor{Light: "#1C2A48", Dark: "#DCE6F8"},
	BotBubbleBorder:  lipgloss.AdaptiveColor{Light: "#93B4E8", Dark: "#2E4470"},
	StoryBlockBg:     lipgloss.AdaptiveColor{Light: "#F4F8FF", Dark: "#0F1828"},
	StoryBlockBorder: lipgloss.AdaptiveColor{Light: "#7AA2D8", Dark: "#3E5A8C"},
}

// PaletteFor resolves a theme name to its palette. Unknown names fall
// back to the dark palette so a stale preference can never break startup.
func PaletteFor(name string) Palette {
	switch name {
	case "light":
		return LightPalette
	case "blue":
		return BluePalette
	default:
		return DarkPalette
	}
}

// ThemeNames lists the selectable themes in cycle order.
func ThemeNames() []string {
	return []string{"dark", "light", "blue"}
}

// NextTheme returns the theme after name in cycle order.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
