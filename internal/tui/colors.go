package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/balkashynov/swatch/internal/models"
)

// ThemeColors is the set of UI colors for one display mode
type ThemeColors struct {
	Background lipgloss.Color
	Card       lipgloss.Color
	Border     lipgloss.Color

	PrimaryText   lipgloss.Color
	SecondaryText lipgloss.Color
	HelpText      lipgloss.Color

	AccentMain   lipgloss.Color
	AccentBright lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color
}

var darkColors = ThemeColors{
	Background:    "#111827", // Near black
	Card:          "#1B1530", // Dark purple
	Border:        "#3A3F55", // Grey-blue
	PrimaryText:   "#E6EAF2",
	SecondaryText: "#B1B8C7",
	HelpText:      "#6D7383",
	AccentMain:    "#7C3AED",
	AccentBright:  "#A78BFA",
	Error:         "#EF4444",
	Success:       "#22C55E",
}

var lightColors = ThemeColors{
	Background:    "#F9FAFB", // Near white
	Card:          "#EDE9FE", // Pale violet
	Border:        "#CBD5E1",
	PrimaryText:   "#111827",
	SecondaryText: "#4B5563",
	HelpText:      "#9CA3AF",
	AccentMain:    "#6D28D9",
	AccentBright:  "#7C3AED",
	Error:         "#DC2626",
	Success:       "#16A34A",
}

// Theme switches the UI between dark and light colors
type Theme struct {
	dark bool
}

// NewTheme creates a theme in the given mode
func NewTheme(mode models.DisplayMode) *Theme {
	return &Theme{dark: bool(mode)}
}

// SetDark switches the theme
func (t *Theme) SetDark(dark bool) {
	t.dark = dark
}

// IsDark reports whether the dark colors are active
func (t *Theme) IsDark() bool {
	return t.dark
}

// Colors returns the active UI colors
func (t *Theme) Colors() ThemeColors {
	if t.dark {
		return darkColors
	}
	return lightColors
}

// labelColor returns black or white, whichever reads better on c
func labelColor(c models.Color) lipgloss.Color {
	col, err := colorful.Hex(c.Hash())
	if err != nil {
		return lipgloss.Color("#000000")
	}
	l, _, _ := col.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
