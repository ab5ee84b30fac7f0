package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, key := range keys {
		updated, _ := m.Update(keyMsg(key))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestUpdateWindowSizeMsg(t *testing.T) {
	t.Parallel()

	m := NewModel(testCatalog(3, 2), nil, ThemeDay)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	resized, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, 100, resized.width)
	assert.Equal(t, 40, resized.height)
}

func TestUpdateLoadMoreScenario(t *testing.T) {
	t.Parallel()

	// pageSize=2, catalog of 5 books, one load-more after initial render.
	m := NewModel(testCatalog(5, 2), nil, ThemeDay)

	m = press(t, m, "m")

	assert.Equal(t, 2, m.State().Page())
	assert.Equal(t, 1, m.State().Remaining())
	assert.Len(t, m.State().Visible(), 4)
}

func TestUpdateLoadMoreKeepsEarlierPagesVisible(t *testing.T) {
	t.Parallel()

	m := NewModel(testCatalog(5, 2), nil, ThemeDay)
	m = press(t, m, "m")

	visible := m.State().Visible()
	require.Len(t, visible, 4)
	assert.Equal(t, "b1", visible[0].ID)
	assert.Equal(t, "b4", visible[3].ID)
}

func TestUpdateLoadMoreExhausted(t *testing.T) {
	t.Parallel()

	m := NewModel(testCatalog(3, 2), nil, ThemeDay)

	m = press(t, m, "m", "m", "m")

	assert.Equal(t, 2, m.State().Page())
	assert.Equal(t, 0, m.State().Remaining())
	assert.Len(t, m.State().Visible(), 3)
}

func TestUpdateSearchSubmitFiltersAndResetsCursor(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "/")
	require.Equal(t, ViewSearch, m.GetViewMode())

	m = typeText(t, m, "dune")
	m = press(t, m, "enter")

	assert.Equal(t, ViewBrowse, m.GetViewMode())
	assert.Equal(t, 1, m.State().Page())
	require.Len(t, m.State().Results(), 1)
	assert.Equal(t, "b1", m.State().Results()[0].ID)
}

func TestUpdateSearchSubmitAlwaysResetsPageCursor(t *testing.T) {
	t.Parallel()

	m := NewModel(testCatalog(10, 2), nil, ThemeDay)
	m = press(t, m, "m", "m")
	require.Equal(t, 3, m.State().Page())

	m = press(t, m, "/", "enter")

	assert.Equal(t, 1, m.State().Page())
	assert.Len(t, m.State().Results(), 10, "blank criteria matches the whole catalog")
}

func TestUpdateSearchAuthorDropdown(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)

	// Focus the author dropdown and pick the second author.
	m = press(t, m, "/", "tab", "down", "down", "enter")

	require.Len(t, m.State().Results(), 1)
	assert.Equal(t, "b2", m.State().Results()[0].ID)
}

func TestUpdateSearchEscClosesWithoutApplying(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "/")
	m = typeText(t, m, "dune")
	m = press(t, m, "esc")

	assert.Equal(t, ViewBrowse, m.GetViewMode())
	assert.Len(t, m.State().Results(), 2, "criteria are only applied on submit")
}

func TestUpdateSearchFocusCycles(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)
	m = press(t, m, "/")
	assert.Equal(t, fieldTitle, m.searchFocus)

	m = press(t, m, "tab")
	assert.Equal(t, fieldAuthor, m.searchFocus)

	m = press(t, m, "tab")
	assert.Equal(t, fieldGenre, m.searchFocus)

	m = press(t, m, "tab")
	assert.Equal(t, fieldTitle, m.searchFocus)

	m = press(t, m, "shift+tab")
	assert.Equal(t, fieldGenre, m.searchFocus)
}

func TestUpdateSettingsAppliesTheme(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)

	m = press(t, m, "t")
	require.Equal(t, ViewSettings, m.GetViewMode())

	m = press(t, m, "down", "enter")

	assert.Equal(t, ViewBrowse, m.GetViewMode())
	assert.Equal(t, ThemeNight, m.Theme().Name)
}

func TestUpdateDetailOpensForSelectedBook(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)

	m = press(t, m, "enter")
	require.Equal(t, ViewDetail, m.GetViewMode())
	assert.Equal(t, "b1", m.detailID)

	m = press(t, m, "esc")
	assert.Equal(t, ViewBrowse, m.GetViewMode())
	assert.Equal(t, "", m.detailID)
}

func TestUpdateDetailIgnoredWithoutSelection(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)

	// Empty the result set so no preview is under the cursor.
	m = press(t, m, "/")
	m = typeText(t, m, "no such book")
	m = press(t, m, "enter")
	require.True(t, m.State().Empty())

	m = press(t, m, "enter")
	assert.Equal(t, ViewBrowse, m.GetViewMode(), "selection without a record is silently ignored")
}

func TestUpdateHelpToggles(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)

	m = press(t, m, "?")
	assert.Equal(t, ViewHelp, m.GetViewMode())

	m = press(t, m, "?")
	assert.Equal(t, ViewBrowse, m.GetViewMode())
}

func TestUpdateQuitKeys(t *testing.T) {
	t.Parallel()

	m := NewModel(duneCatalog(), nil, ThemeDay)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
