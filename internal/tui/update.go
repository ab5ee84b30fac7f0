package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfbrowse/shelfbrowse/internal/browse"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.detailBody.Width = min(m.width-8, 76)
		m.detailBody.Height = max(m.height-12, 3)
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	// Remaining messages (cursor blink and the like) belong to whichever
	// component currently owns input.
	switch m.viewMode {
	case ViewSearch:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	case ViewDetail:
		var cmd tea.Cmd
		m.detailBody, cmd = m.detailBody.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewBrowse:
		return m.handleBrowseKeys(msg)
	case ViewSearch:
		return m.handleSearchKeys(msg)
	case ViewSettings:
		return m.handleSettingsKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	case "enter", " ":
		return m.openDetail(), nil

	case "m":
		if m.state.LoadMore() {
			m.log.WithFields(map[string]any{
				"page":      m.state.Page(),
				"remaining": m.state.Remaining(),
			}).Debug("revealed next page")
		}
		return m, nil

	case "/", "f":
		m.viewMode = ViewSearch
		m.searchFocus = fieldTitle
		return m, m.titleInput.Focus()

	case "t":
		m.viewMode = ViewSettings
		m.themeList.Select(m.theme.Name)
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewMode = ViewBrowse
		m.titleInput.Blur()
		return m, nil

	case "tab":
		return m.cycleSearchFocus(1)

	case "shift+tab":
		return m.cycleSearchFocus(-1)

	case "enter":
		return m.submitSearch()

	case "up":
		switch m.searchFocus {
		case fieldAuthor:
			m.authorList.MoveUp()
			return m, nil
		case fieldGenre:
			m.genreList.MoveUp()
			return m, nil
		}

	case "down":
		switch m.searchFocus {
		case fieldAuthor:
			m.authorList.MoveDown()
			return m, nil
		case fieldGenre:
			m.genreList.MoveDown()
			return m, nil
		}
	}

	if m.searchFocus == fieldTitle {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) cycleSearchFocus(delta int) (tea.Model, tea.Cmd) {
	m.searchFocus = searchField((int(m.searchFocus) + delta + searchFieldCount) % searchFieldCount)

	if m.searchFocus == fieldTitle {
		return m, m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m, nil
}

// submitSearch applies the form to the browse state: recompute the
// active result set, reset the page cursor, scroll back to the top, and
// close the overlay.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	criteria := browse.Criteria{
		Title:  m.titleInput.Value(),
		Author: m.authorList.Selected().Value,
		Genre:  m.genreList.Selected().Value,
	}

	m.state.Search(criteria)
	m.cursor = 0
	m.scrollOffset = 0
	m.viewMode = ViewBrowse
	m.titleInput.Blur()

	m.log.WithFields(map[string]any{
		"title":   criteria.Title,
		"author":  criteria.Author,
		"genre":   criteria.Genre,
		"matched": len(m.state.Results()),
	}).Debug("search applied")

	return m, nil
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewMode = ViewBrowse
		return m, nil

	case "up", "k":
		m.themeList.MoveUp()
		return m, nil

	case "down", "j":
		m.themeList.MoveDown()
		return m, nil

	case "enter":
		m.ApplyTheme(m.themeList.Selected().Value)
		m.viewMode = ViewBrowse
		m.log.WithFields(map[string]any{"theme": m.theme.Name}).Debug("theme applied")
		return m, nil
	}

	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "backspace":
		m.viewMode = ViewBrowse
		m.detailID = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.detailBody, cmd = m.detailBody.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = ViewBrowse
		return m, nil
	}
	return m, nil
}

// openDetail resolves the record under the cursor and opens the detail
// overlay. A selection that lands outside the list, or a tag no catalog
// record answers to, is silently ignored.
func (m Model) openDetail() Model {
	selected, ok := m.SelectedBook()
	if !ok {
		return m
	}

	book, ok := m.catalog.BookByID(selected.ID)
	if !ok {
		return m
	}

	m.detailID = book.ID
	m.detailBody.SetContent(book.PlainDescription())
	m.detailBody.GotoTop()
	m.viewMode = ViewDetail

	m.log.WithFields(map[string]any{"book": book.ID}).Debug(fmt.Sprintf("opened detail for %q", book.Title))

	return m
}
