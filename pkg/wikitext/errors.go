package wikitext

import "fmt"

// Structural elements reported by FormatError.
const (
	ElementTitle         = "title"
	ElementSecondHeading = "second heading"
	ElementSeparator     = "separator"
)

// FormatError reports a violation of the structural contract an article page
// is assumed to follow. It names the element that could not be located and
// the 1-based line where it was expected (0 when no position applies).
type FormatError struct {
	Element string
	Line    int
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("article format: %s not found at line %d", e.Element, e.Line)
	}
	return fmt.Sprintf("article format: %s not found", e.Element)
}
