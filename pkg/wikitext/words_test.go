package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanParagraph(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "a  b\tc\nd", "a b c d"},
		{"trims", "  padded  ", "padded"},
		{"strips soft hyphen", "ratio\u00adnality", "rationality"},
		{"strips zero-width", "a\u200bb\u200cc\u200dd\ufeffe", "abcde"},
		{"empty", "   \n\t ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanParagraph(tc.in))
		})
	}
}

func TestCleanParagraphIdempotent(t *testing.T) {
	in := "  some\u00ad text \n with\u200b noise  "
	once := CleanParagraph(in)
	assert.Equal(t, once, CleanParagraph(once))
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "the quick brown fox", 4},
		{"inline link counts visible text", "see [the map](https://example.com/map) here", 4},
		{"footnote marker dropped", "a claim.[3] next", 3},
		{"asterisk emphasis dropped", "this is *really* important", 4},
		{"quote emphasis dropped", "this is ''really'' important", 4},
		{"bold quote emphasis", "'''bold''' words", 2},
		{"empty", "", 0},
		{"markers only", "[1] ** ''", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CountWords(tc.in))
		})
	}
}

func TestCountWordsMatchesStoredContent(t *testing.T) {
	// Counts recomputed from stored paragraph content must reproduce the
	// value computed at scrape time; cleaning first must not change it.
	content := "One with a [reference link](https://en.wikipedia.org/wiki/Rationality) and a footnote.[5]"
	assert.Equal(t, CountWords(content), CountWords(CleanParagraph(content)))
	assert.Equal(t, 8, CountWords(content))
}
