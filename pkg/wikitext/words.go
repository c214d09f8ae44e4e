package wikitext

import (
	"regexp"
	"strings"
)

var (
	// Invisible characters the wiki embeds for layout: soft hyphen,
	// zero-width space/non-joiner/joiner, BOM.
	invisibleReplacer = strings.NewReplacer(
		"\u00ad", "",
		"\u200b", "",
		"\u200c", "",
		"\u200d", "",
		"\ufeff", "",
	)
	whitespaceRe = regexp.MustCompile(`\s+`)
	inlineLinkRe = regexp.MustCompile(`\[([^\[\]]*)\]\(([^)]*)\)`)
	footnoteRe   = regexp.MustCompile(`\[\d+\]`)
	emphasisRe   = regexp.MustCompile(`\*+|'{2,}`)
)

// CleanParagraph strips invisible Unicode, normalizes all whitespace runs to
// a single space and trims. Idempotent.
func CleanParagraph(text string) string {
	text = invisibleReplacer.Replace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripMarkup removes the markdown syntax that survives in stored paragraph
// content: inline links collapse to their visible text, bare footnote markers
// disappear, bold/italic markers disappear.
func StripMarkup(text string) string {
	text = inlineLinkRe.ReplaceAllString(text, "$1")
	text = footnoteRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "")
	return text
}

// CountWords counts whitespace-separated tokens after stripping markup.
// This is the single word-count function used both when paragraphs are
// stored and whenever counts are verified; recomputing from stored content
// must reproduce the stored value.
func CountWords(text string) int {
	return len(strings.Fields(StripMarkup(text)))
}
