package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeHTML(t *testing.T) {
	cases := []struct {
		name string
		body string
		want bool
	}{
		{"doctype", "<!DOCTYPE html>\n<html><body>x</body></html>", true},
		{"html tag", "<html lang=\"en\"><head></head></html>", true},
		{"leading whitespace", "\n\n  <html><body></body></html>", true},
		{"markdown", "# Feeling Rational\n\nbody text", false},
		{"redirect directive", "(:redirect Main.Target quiet=1:)", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LooksLikeHTML(tc.body))
		})
	}
}

const htmlFixture = `<!DOCTYPE html>
<html lang="en">
<head><title>Feeling Rational</title></head>
<body>
<article>
<h1>Feeling Rational</h1>
<p>Since the dawn of time people have wondered whether feelings have any
place in the art of rationality, and whether a rationalist must abandon
them entirely to reason well about the world.</p>
<p>The answer turns out to be no: emotions that rest on true beliefs are
part of the map matching the territory, and only the ones resting on
false beliefs need to go.</p>
<p></p>
</article>
</body>
</html>`

func TestArticleFromHTML(t *testing.T) {
	article, err := Article("https://www.readthesequences.com/Feeling-Rational", htmlFixture)
	require.NoError(t, err)

	assert.Equal(t, "Feeling Rational", article.Title)
	require.Len(t, article.Paragraphs, 2)
	assert.Contains(t, article.Paragraphs[0], "Since the dawn of time")
	// Source line breaks inside a paragraph collapse to single spaces.
	assert.NotContains(t, article.Paragraphs[0], "\n")
	assert.False(t, article.MissingEndMarker)
}

func TestArticleBadURL(t *testing.T) {
	_, err := Article("://not-a-url", htmlFixture)
	require.Error(t, err)
}

func TestNormalizeText(t *testing.T) {
	in := "  first line\n\n  second line  \nthird\n"
	assert.Equal(t, "first line second line third", normalizeText(in))
}
