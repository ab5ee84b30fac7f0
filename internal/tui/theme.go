package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme names recognized by the settings form. Anything else falls back
// to day.
const (
	ThemeDay   = "day"
	ThemeNight = "night"
)

// Theme maps a theme name to its two color tokens. Every style in the
// browser derives from this pair: Dark is the text/foreground token,
// Light the surface/background token. Night simply swaps the pair.
type Theme struct {
	Name  string
	Dark  lipgloss.Color
	Light lipgloss.Color
}

var (
	dayTheme = Theme{
		Name:  ThemeDay,
		Dark:  lipgloss.Color("#0a0a14"),
		Light: lipgloss.Color("#ffffff"),
	}

	nightTheme = Theme{
		Name:  ThemeNight,
		Dark:  lipgloss.Color("#ffffff"),
		Light: lipgloss.Color("#0a0a14"),
	}
)

// ThemeByName resolves a theme name to its token pair. Unrecognized
// names resolve to the day theme.
func ThemeByName(name string) Theme {
	if name == ThemeNight {
		return nightTheme
	}
	return dayTheme
}

// DefaultThemeName picks the initial theme from the terminal's dark
// background signal, the TUI equivalent of the platform's dark-mode
// preference.
func DefaultThemeName() string {
	if lipgloss.HasDarkBackground() {
		return ThemeNight
	}
	return ThemeDay
}
