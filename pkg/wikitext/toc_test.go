package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tocFixture = `Table of contents.

*   [Book I: Map and Territory][5]
    1.  [Predictably Wrong][6]
        1.  [What Do I Mean By "Rationality"?][7]
        2.  [Feeling Rational][8]
    2.  [Fake Beliefs][9]
        1.  [Making Beliefs Pay Rent][10]
*   [Book II: How to Actually Change Your Mind][11]
    1.  [Overly Convenient Excuses][12]
        1.  [The Proper Use of Humility][13]

[5]: https://www.readthesequences.com/Book-I-Map-And-Territory
[6]: https://www.readthesequences.com/Predictably-Wrong-Sequence
[7]: https://www.readthesequences.com/What-Do-I-Mean-By-Rationality
[8]: https://www.readthesequences.com/Feeling-Rational
[9]: https://www.readthesequences.com/Fake-Beliefs-Sequence
[10]: https://www.readthesequences.com/Making-Beliefs-Pay-Rent-In-Anticipated-Experiences
[11]: https://www.readthesequences.com/Book-II-How-To-Actually-Change-Your-Mind
[12]: https://www.readthesequences.com/Overly-Convenient-Excuses-Sequence
[13]: https://www.readthesequences.com/The-Proper-Use-Of-Humility
`

const sitePrefix = "https://www.readthesequences.com"

func TestParseTOC(t *testing.T) {
	entries := ParseTOC(tocFixture, sitePrefix)
	require.Len(t, entries, 4)

	assert.Equal(t, TOCEntry{
		URL:           "https://www.readthesequences.com/What-Do-I-Mean-By-Rationality",
		BookTitle:     "Map and Territory",
		SequenceTitle: "Predictably Wrong",
	}, entries[0])
	assert.Equal(t, "https://www.readthesequences.com/Feeling-Rational", entries[1].URL)
	assert.Equal(t, "Predictably Wrong", entries[1].SequenceTitle)
	assert.Equal(t, "Fake Beliefs", entries[2].SequenceTitle)
	assert.Equal(t, "How to Actually Change Your Mind", entries[3].BookTitle)
	assert.Equal(t, "Overly Convenient Excuses", entries[3].SequenceTitle)
}

func TestParseTOCForeignRefsIgnored(t *testing.T) {
	markdown := `*   [Book I: Map and Territory][1]
    1.  [Predictably Wrong][2]
        1.  [Elsewhere][3]
        2.  [Here][4]

[1]: https://www.readthesequences.com/Book-I
[2]: https://www.readthesequences.com/Predictably-Wrong
[3]: https://en.wikipedia.org/wiki/Elsewhere
[4]: https://www.readthesequences.com/Here
`
	entries := ParseTOC(markdown, sitePrefix)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://www.readthesequences.com/Here", entries[0].URL)
}

func TestParseTOCDropsOrphans(t *testing.T) {
	// Article lines before any book or sequence context, and entries with
	// bad indentation, are dropped rather than reported.
	markdown := `        1.  [Orphan Article][1]
*   [Book I: Map and Territory][2]
        1.  [No Sequence Yet][3]
    1.  [Predictably Wrong][4]
      2.  [Six Spaces Is Neither Level][5]
        2.  [Kept][6]

[1]: https://www.readthesequences.com/Orphan
[2]: https://www.readthesequences.com/Book-I
[3]: https://www.readthesequences.com/No-Sequence
[4]: https://www.readthesequences.com/Predictably-Wrong
[5]: https://www.readthesequences.com/Six-Spaces
[6]: https://www.readthesequences.com/Kept
`
	entries := ParseTOC(markdown, sitePrefix)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://www.readthesequences.com/Kept", entries[0].URL)
	assert.Equal(t, "Predictably Wrong", entries[0].SequenceTitle)
}

func TestParseTOCMissingRefDropped(t *testing.T) {
	markdown := `*   [Book I: Map and Territory][1]
    1.  [Predictably Wrong][2]
        1.  [No Definition][99]

[1]: https://www.readthesequences.com/Book-I
[2]: https://www.readthesequences.com/Predictably-Wrong
`
	assert.Empty(t, ParseTOC(markdown, sitePrefix))
}

func TestAssignOrders(t *testing.T) {
	entries := ParseTOC(tocFixture, sitePrefix)
	descriptors := AssignOrders(entries)
	require.Len(t, descriptors, 4)

	// Article order is a running counter across the whole list.
	for i, d := range descriptors {
		assert.Equal(t, i+1, d.ArticleOrder)
	}

	// Book order increments on first appearance of each book title.
	assert.Equal(t, 1, descriptors[0].BookOrder)
	assert.Equal(t, 1, descriptors[2].BookOrder)
	assert.Equal(t, 2, descriptors[3].BookOrder)

	// Sequence order restarts per book.
	assert.Equal(t, 1, descriptors[0].SequenceOrder)
	assert.Equal(t, 1, descriptors[1].SequenceOrder)
	assert.Equal(t, 2, descriptors[2].SequenceOrder)
	assert.Equal(t, 1, descriptors[3].SequenceOrder)
}

func TestAssignOrdersSameSequenceTitleDifferentBooks(t *testing.T) {
	entries := []TOCEntry{
		{URL: "u1", BookTitle: "A", SequenceTitle: "Intro"},
		{URL: "u2", BookTitle: "A", SequenceTitle: "Depth"},
		{URL: "u3", BookTitle: "B", SequenceTitle: "Intro"},
	}
	descriptors := AssignOrders(entries)
	// "Intro" is the first sequence in both books independently.
	assert.Equal(t, 1, descriptors[0].SequenceOrder)
	assert.Equal(t, 2, descriptors[1].SequenceOrder)
	assert.Equal(t, 1, descriptors[2].SequenceOrder)
}
