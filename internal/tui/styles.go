package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// accentColor is theme-independent; everything else derives from the
// active theme's token pair.
var accentColor = lipgloss.Color("99")

// Styles is the full style set for one theme. The model rebuilds it
// whenever the settings form applies a theme, which is how the token
// pair reaches every rendered region at once.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	ItemMeta     lipgloss.Style
	Banner       lipgloss.Style
	Footer       lipgloss.Style
	ShowMore     lipgloss.Style
	ShowMoreOff  lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	FieldLabel   lipgloss.Style
	FocusedField lipgloss.Style
	DetailMeta   lipgloss.Style
}

func newStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(2).
			PaddingRight(2),

		Header: lipgloss.NewStyle().
			Foreground(theme.Dark).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Dark).
			PaddingBottom(1).
			MarginBottom(1),

		Item: lipgloss.NewStyle().
			Foreground(theme.Dark).
			PaddingLeft(2).
			PaddingRight(2),

		SelectedItem: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			PaddingLeft(2).
			PaddingRight(2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(accentColor),

		ItemMeta: lipgloss.NewStyle().
			Foreground(theme.Dark).
			Faint(true),

		Banner: lipgloss.NewStyle().
			Foreground(theme.Dark).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(2).
			PaddingBottom(2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Dark).
			Faint(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(theme.Dark).
			PaddingTop(1).
			MarginTop(1),

		ShowMore: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Light).
			Background(theme.Dark).
			Padding(0, 2),

		ShowMoreOff: lipgloss.NewStyle().
			Faint(true).
			Foreground(theme.Dark).
			Padding(0, 2),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Foreground(theme.Dark).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(theme.Dark).
			Bold(true),

		FocusedField: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true),

		DetailMeta: lipgloss.NewStyle().
			Foreground(theme.Dark).
			Faint(true),
	}
}
