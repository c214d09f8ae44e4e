// Package extract recovers article content from rendered HTML pages. It is
// the fallback path for pages where the markdown source endpoint serves HTML
// instead of wiki markdown.
package extract

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/Crazytieguy/type-harder/pkg/wikitext"
)

// LooksLikeHTML reports whether a fetched body is an HTML document rather
// than wiki markdown.
func LooksLikeHTML(body string) bool {
	head := strings.ToLower(strings.TrimSpace(body))
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<head") || strings.Contains(head, "<body")
}

// Article distills the readable content of an HTML page and splits it into
// paragraphs. The result flows through the same clean/count/persist path as
// a markdown parse.
func Article(rawURL, html string) (*wikitext.ParsedArticle, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %s: %w", rawURL, err)
	}

	parser := readability.NewParser()
	readable, err := parser.Parse(strings.NewReader(html), pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to distill %s: %w", rawURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(readable.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse distilled content: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		text := wikitext.CleanParagraph(normalizeText(s.Text()))
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	title := wikitext.CleanParagraph(readable.Title)
	if title == "" {
		return nil, &wikitext.FormatError{Element: wikitext.ElementTitle}
	}

	return &wikitext.ParsedArticle{Title: title, Paragraphs: paragraphs}, nil
}

// normalizeText joins the non-empty lines of extracted text with single
// spaces.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
