package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shelfbrowse/shelfbrowse/internal/catalog"
	"github.com/shelfbrowse/shelfbrowse/internal/tui/components"
)

// previewLines is the vertical footprint of one preview card in the
// list, used to size the scroll window.
const previewLines = 4

// emptyResultsMessage is shown whenever the active result set is empty.
const emptyResultsMessage = "No results found. Your filters might be too narrow."

// View renders the current model state.
func (m Model) View() string {
	switch m.viewMode {
	case ViewSearch:
		return m.renderSearchView()
	case ViewSettings:
		return m.renderSettingsView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderBrowseView()
	}
}

func (m Model) renderBrowseView() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.state.Empty() {
		content.WriteString(m.styles.Banner.Render(emptyResultsMessage))
	} else {
		content.WriteString(m.renderBookList())
	}
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

func (m Model) renderHeader() string {
	name := m.catalog.Name
	if name == "" {
		name = "Shelfbrowse"
	}
	title := m.styles.Title.Render("📚 " + name)

	summary := fmt.Sprintf("%d of %d books shown",
		len(m.state.Visible()), len(m.state.Results()))

	return m.styles.Header.Render(lipgloss.JoinVertical(lipgloss.Left, title, summary))
}

// renderBookList projects the visible window of the active result set
// into preview cards, replacing the whole list region on every render.
func (m Model) renderBookList() string {
	visible := m.state.Visible()

	rows := m.visibleRows()
	start := m.scrollOffset
	end := min(start+rows, len(visible))

	var items []string
	for i := start; i < end; i++ {
		items = append(items, m.renderPreview(i, visible[i], i == m.cursor))
	}

	if start > 0 {
		items = append([]string{m.styles.ItemMeta.Render("▲ More above")}, items...)
	}
	if end < len(visible) {
		items = append(items, m.styles.ItemMeta.Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (m Model) renderPreview(index int, book catalog.Book, selected bool) string {
	author := m.catalog.AuthorName(book.Author)

	meta := book.Image
	if !book.Published.IsZero() {
		if meta != "" {
			meta += " · "
		}
		meta += fmt.Sprintf("%d", book.Published.Year())
	}

	card := components.NewCard(book.ID,
		fmt.Sprintf("%d. %s", index+1, book.Title),
		author,
		m.styles.ItemMeta.Render(meta),
	)

	if selected {
		return card.Render(m.styles.SelectedItem)
	}
	return card.Render(m.styles.Item)
}

func (m Model) renderFooter() string {
	remaining := m.state.Remaining()
	label := fmt.Sprintf("Show more (%d)", remaining)

	var button string
	if remaining > 0 {
		button = m.styles.ShowMore.Render(label)
	} else {
		button = m.styles.ShowMoreOff.Render(label)
	}

	hints := []string{
		"↑/↓: navigate",
		"enter: details",
		"m: show more",
		"/: search",
		"t: settings",
		"?: help",
		"q: quit",
	}

	return m.styles.Footer.Render(button + "\n" + strings.Join(hints, "  •  "))
}

func (m Model) renderSearchView() string {
	var content strings.Builder

	content.WriteString(m.styles.OverlayTitle.Render("Search the catalog"))
	content.WriteString("\n")

	content.WriteString(m.renderFieldLabel("Title", fieldTitle))
	content.WriteString("\n")
	content.WriteString(m.titleInput.View())
	content.WriteString("\n\n")

	content.WriteString(m.renderFieldLabel("Author", fieldAuthor))
	content.WriteString("\n")
	content.WriteString(m.renderOptionList(m.authorList, m.searchFocus == fieldAuthor))
	content.WriteString("\n")

	content.WriteString(m.renderFieldLabel("Genre", fieldGenre))
	content.WriteString("\n")
	content.WriteString(m.renderOptionList(m.genreList, m.searchFocus == fieldGenre))
	content.WriteString("\n")

	content.WriteString(m.styles.DetailMeta.Render("tab: next field  •  enter: apply  •  esc: cancel"))

	return m.placeOverlay(m.styles.Overlay.Render(content.String()))
}

func (m Model) renderFieldLabel(label string, field searchField) string {
	if m.searchFocus == field {
		return m.styles.FocusedField.Render("› " + label)
	}
	return m.styles.FieldLabel.Render("  " + label)
}

// renderOptionList shows a five-option window centered on the cursor so
// long author lists stay compact inside the overlay.
func (m Model) renderOptionList(list components.OptionList, focused bool) string {
	options := list.Options()
	cursor := list.Cursor()

	const window = 5
	start := 0
	if len(options) > window {
		start = cursor - window/2
		if start < 0 {
			start = 0
		}
		if start+window > len(options) {
			start = len(options) - window
		}
	}
	end := min(start+window, len(options))

	var lines []string
	for i := start; i < end; i++ {
		marker := "  "
		if i == cursor {
			marker = "› "
		}

		line := marker + options[i].Label
		if i == cursor && focused {
			line = m.styles.FocusedField.Render(line)
		}
		lines = append(lines, line)
	}

	if start > 0 {
		lines = append([]string{m.styles.ItemMeta.Render("  ▲")}, lines...)
	}
	if end < len(options) {
		lines = append(lines, m.styles.ItemMeta.Render("  ▼"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderSettingsView() string {
	var content strings.Builder

	content.WriteString(m.styles.OverlayTitle.Render("Settings"))
	content.WriteString("\n")
	content.WriteString(m.styles.FieldLabel.Render("Theme"))
	content.WriteString("\n")
	content.WriteString(m.renderOptionList(m.themeList, true))
	content.WriteString("\n")
	content.WriteString(m.styles.DetailMeta.Render("enter: apply  •  esc: cancel"))

	return m.placeOverlay(m.styles.Overlay.Render(content.String()))
}

func (m Model) renderDetailView() string {
	book, ok := m.catalog.BookByID(m.detailID)
	if !ok {
		return m.renderBrowseView()
	}

	var content strings.Builder

	if book.Image != "" {
		content.WriteString(m.styles.DetailMeta.Render(book.Image))
		content.WriteString("\n")
	}

	content.WriteString(m.styles.OverlayTitle.Render(book.Title))
	content.WriteString("\n")

	byline := m.catalog.AuthorName(book.Author)
	if !book.Published.IsZero() {
		byline = fmt.Sprintf("%s (%d)", byline, book.Published.Year())
	}
	content.WriteString(m.styles.FieldLabel.Render(byline))
	content.WriteString("\n\n")

	content.WriteString(m.detailBody.View())
	content.WriteString("\n\n")
	content.WriteString(m.styles.DetailMeta.Render("↑/↓: scroll  •  esc: back  •  q: quit"))

	return m.placeOverlay(m.styles.Overlay.Render(content.String()))
}

func (m Model) renderHelpView() string {
	title := m.styles.OverlayTitle.Render("Help")

	helpContent := `
Browse:
  ↑/↓, j/k      Move between previews
  Enter         Open book details
  m             Reveal the next page of results
  /             Open the search form
  t             Open settings
  ?             Toggle this help
  q, Ctrl+C     Quit

Search form:
  Tab           Next field
  Shift+Tab     Previous field
  ↑/↓           Change dropdown selection
  Enter         Apply filters
  Esc           Close without applying

Details:
  ↑/↓           Scroll the description
  Esc           Back to the list
`

	footer := m.styles.DetailMeta.Render("Press ? or Esc to close")

	return lipgloss.JoinVertical(lipgloss.Left, title, helpContent, footer)
}

func (m Model) placeOverlay(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
