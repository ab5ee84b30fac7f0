package tui

// ViewMode determines which screen to render.
type ViewMode int

const (
	ViewBrowse ViewMode = iota
	ViewSearch
	ViewSettings
	ViewDetail
	ViewHelp
)

// Search overlay focus slots, cycled with tab.
type searchField int

const (
	fieldTitle searchField = iota
	fieldAuthor
	fieldGenre
)

const searchFieldCount = 3
