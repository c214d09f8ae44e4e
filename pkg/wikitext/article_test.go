package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleFixture = `# Feeling Rational

« [Home][1] | [Sequences][2] »

# Feeling Rational

❦

A paragraph that spans
two source lines.

One with a [reference link][3], an anchor [note][4], and a footnote.[5]

` + "```" + `
code kept together

despite the blank line
` + "```" + `

The last paragraph.

[ ][6]

Trailing navigation that must not be collected.

[1]: https://www.readthesequences.com/Home
[2]: https://www.readthesequences.com/Contents
[3]: https://en.wikipedia.org/wiki/Rationality
[4]: #fn-1
[6]: https://www.readthesequences.com/Top
`

func TestParseArticle(t *testing.T) {
	article, err := ParseArticle(articleFixture)
	require.NoError(t, err)

	assert.Equal(t, "Feeling Rational", article.Title)
	assert.False(t, article.MissingEndMarker)

	require.Len(t, article.Paragraphs, 4)
	assert.Equal(t, "A paragraph that spans two source lines.", article.Paragraphs[0])
	assert.Equal(t,
		"One with a [reference link](https://en.wikipedia.org/wiki/Rationality), an anchor note, and a footnote.[5]",
		article.Paragraphs[1])
	assert.Equal(t, "``` code kept together despite the blank line ```", article.Paragraphs[2])
	assert.Equal(t, "The last paragraph.", article.Paragraphs[3])
}

func TestParseArticleTitleContinuation(t *testing.T) {
	article, err := ParseArticle(`# Rationality
(An Introduction)

« [Home][1] »

# Rationality
(An Introduction)

❦

Body.

[ ][2]

[1]: https://www.readthesequences.com/Home
[2]: https://www.readthesequences.com/Top
`)
	require.NoError(t, err)
	assert.Equal(t, "Rationality (An Introduction)", article.Title)
	require.Len(t, article.Paragraphs, 1)
	assert.Equal(t, "Body.", article.Paragraphs[0])
}

func TestParseArticleMissingEndMarker(t *testing.T) {
	article, err := ParseArticle(`# Title

# Title

❦

First.

Second.
`)
	require.NoError(t, err)
	assert.True(t, article.MissingEndMarker)
	assert.Equal(t, []string{"First.", "Second."}, article.Paragraphs)
}

func TestParseArticleFormatErrors(t *testing.T) {
	cases := []struct {
		name     string
		markdown string
		element  string
	}{
		{"no title", "just some text\nno heading anywhere\n", ElementTitle},
		{"no second heading", "# Title\n\n« [Home][1] »\n\nplain text\n", ElementSecondHeading},
		{"no separator", "# Title\n\n# Title\n\nBody without separator.\n", ElementSeparator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArticle(tc.markdown)
			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tc.element, formatErr.Element)
		})
	}
}

func TestParseArticleFormatErrorLine(t *testing.T) {
	_, err := ParseArticle("# Title\n\n# Title\n\nNot a separator.\n")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ElementSeparator, formatErr.Element)
	assert.Equal(t, 5, formatErr.Line)
}

func TestParseArticleDeterministic(t *testing.T) {
	first, err := ParseArticle(articleFixture)
	require.NoError(t, err)
	second, err := ParseArticle(articleFixture)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
