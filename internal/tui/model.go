package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfbrowse/shelfbrowse/internal/browse"
	"github.com/shelfbrowse/shelfbrowse/internal/catalog"
	"github.com/shelfbrowse/shelfbrowse/internal/logger"
	"github.com/shelfbrowse/shelfbrowse/internal/tui/components"
)

// Model contains the Bubble Tea state for a browse session. All mutation
// happens inside Update on the single event loop.
type Model struct {
	catalog *catalog.Catalog
	state   *browse.State
	log     *logger.Logger

	// UI state
	viewMode     ViewMode
	cursor       int
	scrollOffset int

	// Search overlay
	titleInput  textinput.Model
	authorList  components.OptionList
	genreList   components.OptionList
	searchFocus searchField

	// Settings overlay
	themeList components.OptionList

	// Detail overlay
	detailID   string
	detailBody viewport.Model

	theme  Theme
	styles Styles

	width  int
	height int
}

// NewModel constructs the browser model over a parsed catalog. The
// themeName usually comes from DefaultThemeName at startup.
func NewModel(cat *catalog.Catalog, log *logger.Logger, themeName string) Model {
	input := textinput.New()
	input.Placeholder = "Title contains..."
	input.CharLimit = 120
	input.Width = 32

	theme := ThemeByName(themeName)

	m := Model{
		catalog:    cat,
		state:      browse.NewState(cat.Books, cat.PageSize),
		log:        log,
		viewMode:   ViewBrowse,
		titleInput: input,
		authorList: components.NewOptionList("All Authors", cat.Authors),
		genreList:  components.NewOptionList("All Genres", cat.Genres),
		themeList: components.NewPlainOptionList([]components.Option{
			{Value: ThemeDay, Label: "Day"},
			{Value: ThemeNight, Label: "Night"},
		}),
		detailBody: viewport.New(72, 12),
		theme:      theme,
		styles:     newStyles(theme),
		width:      80,
		height:     24,
	}
	m.themeList.Select(theme.Name)

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ApplyTheme switches the active theme and rebuilds every style from its
// token pair. Unknown names fall back to day.
func (m *Model) ApplyTheme(name string) {
	m.theme = ThemeByName(name)
	m.styles = newStyles(m.theme)
	m.themeList.Select(m.theme.Name)
}

// Theme returns the active theme.
func (m *Model) Theme() Theme {
	return m.theme
}

// State exposes the browse state, mainly for tests.
func (m *Model) State() *browse.State {
	return m.state
}

// GetViewMode returns the current view mode.
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// SelectedBook returns the book under the cursor in the visible window.
func (m *Model) SelectedBook() (catalog.Book, bool) {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return catalog.Book{}, false
	}
	return visible[m.cursor], true
}

// MoveCursorUp moves the list cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(visible) - 1
	}
	m.ensureCursorVisible()
}

// MoveCursorDown moves the list cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(visible) {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// visibleRows is how many preview cards fit the current terminal height.
func (m *Model) visibleRows() int {
	rows := (m.height - 9) / previewLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
}
