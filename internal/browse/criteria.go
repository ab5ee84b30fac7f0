package browse

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/shelfbrowse/shelfbrowse/internal/catalog"
)

// Any is the sentinel for author and genre filters that match everything.
// It doubles as the value of the leading option in the search dropdowns.
const Any = "any"

// Criteria is the filter submitted from the search overlay. A fresh value
// is built per submission; zero values mean "no constraint".
type Criteria struct {
	Title  string
	Author string
	Genre  string
}

// Match reports whether the book satisfies every filter. The title filter
// is a case-folded substring match, author is id equality, and genre is
// membership in the book's genre set.
func (c Criteria) Match(b catalog.Book) bool {
	if title := strings.TrimSpace(c.Title); title != "" {
		if !strings.Contains(fold(b.Title), fold(title)) {
			return false
		}
	}

	if c.Author != "" && c.Author != Any && b.Author != c.Author {
		return false
	}

	if c.Genre != "" && c.Genre != Any && !b.HasGenre(c.Genre) {
		return false
	}

	return true
}

// fold normalizes a string for caseless comparison. Unicode case folding
// handles titles beyond ASCII, which plain ToLower does not.
func fold(s string) string {
	return cases.Fold().String(s)
}
