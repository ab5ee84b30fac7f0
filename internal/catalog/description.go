package catalog

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Catalog descriptions come from upstream book sources and frequently
// carry inline HTML (paragraphs, emphasis, line breaks). The terminal
// renders plain text only, so every tag is stripped.
var stripPolicy = bluemonday.StrictPolicy()

// PlainDescription returns the book description with all markup removed
// and entities decoded, ready for terminal display.
func (b Book) PlainDescription() string {
	stripped := stripPolicy.Sanitize(b.Description)
	return strings.TrimSpace(html.UnescapeString(stripped))
}
