// Package typing implements the character-level typed-input matching engine
// used during a race: it validates keystrokes against the canonical form of a
// paragraph and reports word-completion events.
package typing

import (
	"golang.org/x/text/unicode/norm"

	"github.com/Crazytieguy/type-harder/pkg/wikitext"
)

// DeriveTarget produces the canonical plain-text typing target from stored
// paragraph content: link syntax reduced to visible text, footnote and
// emphasis markers stripped, space runs collapsed, composed (NFC) form.
func DeriveTarget(content string) string {
	return norm.NFC.String(wikitext.CleanParagraph(wikitext.StripMarkup(content)))
}

// wordBoundaries returns the indices immediately following every
// space-then-non-space transition, plus the text length as the final
// boundary. The completed-word count at cursor position p is the number of
// boundaries at or below p.
func wordBoundaries(target []rune) []int {
	var boundaries []int
	for i := 1; i < len(target); i++ {
		if target[i-1] == ' ' && target[i] != ' ' {
			boundaries = append(boundaries, i)
		}
	}
	if len(target) > 0 {
		boundaries = append(boundaries, len(target))
	}
	return boundaries
}
