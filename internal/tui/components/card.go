package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Card assembles one detached UI node from its content lines. The tag
// carries a record identifier so selection handling can resolve which
// record a rendered card stands for; it is never displayed.
type Card struct {
	tag   string
	lines []string
}

// NewCard constructs a card tagged with an identifier. Empty lines are
// dropped; absent parts are simply not rendered.
func NewCard(tag string, lines ...string) Card {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return Card{tag: tag, lines: kept}
}

// Tag returns the identifier the card was built with.
func (c Card) Tag() string {
	return c.tag
}

// Lines returns the card's content lines in order.
func (c Card) Lines() []string {
	cloned := make([]string, len(c.lines))
	copy(cloned, c.lines)
	return cloned
}

// Render produces the card's visual form using the supplied style.
func (c Card) Render(style lipgloss.Style) string {
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, c.lines...))
}
