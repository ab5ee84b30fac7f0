package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	shelferrors "github.com/shelfbrowse/shelfbrowse/pkg/errors"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	validYAML := `name: "Test Library"
page_size: 4
authors:
  - id: a1
    name: "Frank Herbert"
  - id: a2
    name: "Ursula K. Le Guin"
genres:
  - id: g1
    name: "Science Fiction"
books:
  - id: b1
    title: "Dune"
    author: a1
    genres: [g1]
    published: 1965-08-01T00:00:00Z
  - id: b2
    title: "The Dispossessed"
    author: a2
    genres: [g1]
`

	invalidYAML := `name: [broken
authors:
`

	missingBooks := `name: "No Books"
authors:
  - id: a1
    name: "Someone"
`

	unknownAuthor := `authors:
  - id: a1
    name: "Frank Herbert"
books:
  - id: b1
    title: "Dune"
    author: a9
`

	unknownGenre := `authors:
  - id: a1
    name: "Frank Herbert"
genres:
  - id: g1
    name: "Science Fiction"
books:
  - id: b1
    title: "Dune"
    author: a1
    genres: [g7]
`

	duplicateBook := `authors:
  - id: a1
    name: "Frank Herbert"
books:
  - id: b1
    title: "Dune"
    author: a1
  - id: b1
    title: "Dune Messiah"
    author: a1
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cat *Catalog, err error)
	}{
		{
			name:     "valid catalog is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.NoError(t, err)
				require.NotNil(t, cat)
				require.Equal(t, "Test Library", cat.Name)
				require.Equal(t, 4, cat.PageSize)
				require.Len(t, cat.Books, 2)
				require.Equal(t, "Frank Herbert", cat.AuthorName("a1"))
				require.Equal(t, "Science Fiction", cat.GenreName("g1"))

				book, ok := cat.BookByID("b1")
				require.True(t, ok)
				require.Equal(t, "Dune", book.Title)
				require.Equal(t, 1965, book.Published.Year())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.Error(t, err)
				var parseErr *shelferrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "missing books returns validation error",
			contents: missingBooks,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.Error(t, err)
				var validationErr *shelferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "books")
			},
		},
		{
			name:     "unknown author reference is rejected",
			contents: unknownAuthor,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.Error(t, err)
				var refErr *shelferrors.ReferenceError
				require.ErrorAs(t, err, &refErr)
				require.Equal(t, "author", refErr.Kind)
				require.Equal(t, "a9", refErr.ID)
			},
		},
		{
			name:     "unknown genre reference is rejected",
			contents: unknownGenre,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.Error(t, err)
				var refErr *shelferrors.ReferenceError
				require.ErrorAs(t, err, &refErr)
				require.Equal(t, "genre", refErr.Kind)
			},
		},
		{
			name:     "duplicate book id is rejected",
			contents: duplicateBook,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.Error(t, err)
				var validationErr *shelferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "duplicate book id")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempCatalog(t, tc.contents)
			cat, err := ParseCatalog(path)
			tc.assert(t, cat, err)
		})
	}
}

func TestParseCatalogMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *shelferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseCatalogDefaultsPageSize(t *testing.T) {
	t.Parallel()

	contents := `authors:
  - id: a1
    name: "Someone"
books:
  - id: b1
    title: "A Book"
    author: a1
`

	cat, err := ParseCatalog(writeTempCatalog(t, contents))
	require.NoError(t, err)
	require.Equal(t, DefaultPageSize, cat.PageSize)
}

func TestAuthorNameMissingResolvesEmpty(t *testing.T) {
	t.Parallel()

	cat := &Catalog{}
	cat.buildIndexes()
	require.Equal(t, "", cat.AuthorName("nobody"))
}

func writeTempCatalog(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
