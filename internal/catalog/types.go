package catalog

import (
	"time"
)

// DefaultPageSize is used when the catalog document does not set one.
const DefaultPageSize = 6

// Book is a single catalog record. Books are loaded once at startup and
// never mutated afterwards.
type Book struct {
	ID          string    `yaml:"id" validate:"required,entry_id"`
	Title       string    `yaml:"title" validate:"required,min=1,max=200"`
	Author      string    `yaml:"author" validate:"required,entry_id"`
	Genres      []string  `yaml:"genres,omitempty" validate:"omitempty,dive,entry_id"`
	Image       string    `yaml:"image,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Published   time.Time `yaml:"published,omitempty"`
}

// HasGenre reports whether the book carries the given genre id.
func (b Book) HasGenre(id string) bool {
	for _, g := range b.Genres {
		if g == id {
			return true
		}
	}
	return false
}

// Entry maps an identifier to a display name. Authors and genres are both
// plain entries; document order is preserved for option lists.
type Entry struct {
	ID   string `yaml:"id" validate:"required,entry_id"`
	Name string `yaml:"name" validate:"required,min=1,max=100"`
}

// Catalog is the full immutable data set backing a browse session.
type Catalog struct {
	Name     string  `yaml:"name,omitempty" validate:"omitempty,max=100"`
	PageSize int     `yaml:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
	Authors  []Entry `yaml:"authors" validate:"required,min=1,dive"`
	Genres   []Entry `yaml:"genres,omitempty" validate:"omitempty,dive"`
	Books    []Book  `yaml:"books" validate:"required,min=1,dive"`

	authorNames map[string]string
	genreNames  map[string]string
	booksByID   map[string]Book
}

// New assembles a catalog directly from its parts, bypassing the YAML
// front end. Callers are responsible for reference integrity; use
// ParseCatalog for untrusted documents.
func New(name string, authors, genres []Entry, books []Book, pageSize int) *Catalog {
	c := &Catalog{
		Name:     name,
		PageSize: pageSize,
		Authors:  authors,
		Genres:   genres,
		Books:    books,
	}
	c.buildIndexes()
	return c
}

// buildIndexes populates the lookup maps. Called once after a successful
// parse; the exported slices stay authoritative for ordering.
func (c *Catalog) buildIndexes() {
	c.authorNames = make(map[string]string, len(c.Authors))
	for _, a := range c.Authors {
		c.authorNames[a.ID] = a.Name
	}

	c.genreNames = make(map[string]string, len(c.Genres))
	for _, g := range c.Genres {
		c.genreNames[g.ID] = g.Name
	}

	c.booksByID = make(map[string]Book, len(c.Books))
	for _, b := range c.Books {
		c.booksByID[b.ID] = b
	}

	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
}

// AuthorName resolves an author id to its display name. Unknown ids
// resolve to the empty string rather than an error; previews render the
// missing label as-is.
func (c *Catalog) AuthorName(id string) string {
	return c.authorNames[id]
}

// GenreName resolves a genre id to its display name, empty when unknown.
func (c *Catalog) GenreName(id string) string {
	return c.genreNames[id]
}

// BookByID looks up a book record by identifier.
func (c *Catalog) BookByID(id string) (Book, bool) {
	b, ok := c.booksByID[id]
	return b, ok
}
