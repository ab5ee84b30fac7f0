package browse

import (
	"github.com/shelfbrowse/shelfbrowse/internal/catalog"
)

// State owns the current browse position: the active result set and the
// page cursor. Both are mutated only through Search and LoadMore, and
// only ever from the UI event loop.
type State struct {
	books    []catalog.Book
	results  []catalog.Book
	page     int
	pageSize int
}

// NewState creates a browse state over the full catalog: the active
// result set starts as every book and the cursor at the first page.
func NewState(books []catalog.Book, pageSize int) *State {
	if pageSize < 1 {
		pageSize = 1
	}
	return &State{
		books:    books,
		results:  books,
		page:     1,
		pageSize: pageSize,
	}
}

// Search replaces the active result set with the books matching the
// criteria and resets the page cursor to 1.
func (s *State) Search(c Criteria) {
	matched := make([]catalog.Book, 0, len(s.books))
	for _, b := range s.books {
		if c.Match(b) {
			matched = append(matched, b)
		}
	}

	s.results = matched
	s.page = 1
}

// LoadMore advances the page cursor by one. It reports whether anything
// was revealed; with no remaining results the cursor stays put.
func (s *State) LoadMore() bool {
	if s.Remaining() <= 0 {
		return false
	}
	s.page++
	return true
}

// Visible returns the accumulated window of results up to the current
// page. Earlier pages stay visible after a LoadMore; the slice is
// clamped so the cursor can never reach past the result set.
func (s *State) Visible() []catalog.Book {
	end := s.page * s.pageSize
	if end > len(s.results) {
		end = len(s.results)
	}
	return s.results[:end]
}

// Remaining counts the results not yet revealed, never negative.
func (s *State) Remaining() int {
	remaining := len(s.results) - s.page*s.pageSize
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Empty reports whether the active result set has no books at all.
func (s *State) Empty() bool {
	return len(s.results) == 0
}

// Results returns the full active result set.
func (s *State) Results() []catalog.Book {
	return s.results
}

// Page returns the current page cursor, always at least 1.
func (s *State) Page() int {
	return s.page
}

// PageSize returns the number of previews revealed per page.
func (s *State) PageSize() int {
	return s.pageSize
}
