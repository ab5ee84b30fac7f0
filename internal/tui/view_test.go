package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewBrowseShowsPreviews(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	out := m.View()

	assert.Contains(t, out, "Test Library")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "The Dispossessed")
	assert.Contains(t, out, "Ursula K. Le Guin")
}

func TestViewShowMoreLabelTracksRemaining(t *testing.T) {
	t.Parallel()

	m := NewModel(testCatalog(5, 2), nil, ThemeDay)
	assert.Contains(t, m.View(), "Show more (3)")

	m = press(t, m, "m")
	assert.Contains(t, m.View(), "Show more (1)")

	m = press(t, m, "m")
	assert.Contains(t, m.View(), "Show more (0)")
}

func TestViewEmptyResultSetShowsBanner(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "/")
	m = typeText(t, m, "zzzz")
	m = press(t, m, "enter")

	out := m.View()
	assert.Contains(t, out, emptyResultsMessage)
	assert.NotContains(t, out, "1. ", "no preview cards are rendered")
}

func TestViewSearchOverlay(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "/")

	out := m.View()
	assert.Contains(t, out, "Search the catalog")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Author")
	assert.Contains(t, out, "Genre")
	assert.Contains(t, out, "All Authors")
	assert.Contains(t, out, "All Genres")
}

func TestViewSettingsOverlay(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "t")

	out := m.View()
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Day")
	assert.Contains(t, out, "Night")
}

func TestViewDetailOverlay(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "enter")
	require.Equal(t, ViewDetail, m.GetViewMode())

	out := m.View()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert (1965)")
	assert.Contains(t, out, "covers/dune.jpg")
	assert.Contains(t, out, "desert planet")
	assert.NotContains(t, out, "<em>", "markup is stripped from descriptions")
}

func TestViewHelpOverlay(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "?")

	out := m.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "Apply filters")
}
