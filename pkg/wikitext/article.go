package wikitext

import (
	"regexp"
	"strings"
)

// ParsedArticle is the structured result of parsing one article page.
// MissingEndMarker is set when the end-of-article marker was never found and
// parsing returned everything collected up to EOF; callers treat that as a
// warning, not a failure.
type ParsedArticle struct {
	Title            string
	Paragraphs       []string
	MissingEndMarker bool
}

var (
	headingRe   = regexp.MustCompile(`^#\s+(.*\S)\s*$`)
	endMarkerRe = regexp.MustCompile(`^\[ \]\[\d+\]\s*$`)

	// Lines containing these markers are the wiki's navigation chrome
	// between the title and the byline heading.
	navMarkers = []string{"«", "»", "[Home]", "[Sequences]"}
)

func isNavLine(line string) bool {
	for _, m := range navMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ParseArticle parses the wiki markdown of a single article page.
//
// The page is assumed to follow a strict structural contract, checked in
// order: an H1 title (with an optional parenthesized continuation on the next
// line), navigation and blank lines, a second H1 (duplicate byline title,
// its own continuation skipped), blank lines, a lone ❦ separator, blank
// lines, then the paragraph body. Violations return a *FormatError naming
// the missing element; the error is fatal for this article only.
//
// Body lines accumulate into the current paragraph; a blank line flushes the
// buffer as one paragraph. Triple-backtick fence lines toggle a mode in which
// blank lines no longer split. A line matching the end marker "[ ][N]"
// flushes any pending paragraph and stops collection.
func ParseArticle(markdown string) (*ParsedArticle, error) {
	lines := strings.Split(markdown, "\n")
	refs := collectRefs(lines, "")

	i := 0
	title, i, err := parseTitle(lines, i)
	if err != nil {
		return nil, err
	}

	for i < len(lines) && (isBlank(lines[i]) || isNavLine(lines[i])) {
		i++
	}
	if i >= len(lines) || headingRe.FindStringSubmatch(lines[i]) == nil {
		return nil, &FormatError{Element: ElementSecondHeading, Line: i + 1}
	}
	i++
	if i < len(lines) && strings.HasPrefix(lines[i], "(") {
		i++
	}

	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	if i >= len(lines) || strings.TrimSpace(lines[i]) != "❦" {
		return nil, &FormatError{Element: ElementSeparator, Line: i + 1}
	}
	i++
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}

	article := &ParsedArticle{Title: title}
	article.Paragraphs, article.MissingEndMarker = parseBody(lines[i:], refs)
	return article, nil
}

// parseTitle locates the first H1 anywhere in the document and returns the
// page title, appending an immediately-following parenthesized continuation
// line when present.
func parseTitle(lines []string, start int) (string, int, error) {
	for i := start; i < len(lines); i++ {
		m := headingRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		title := m[1]
		next := i + 1
		if next < len(lines) && strings.HasPrefix(lines[next], "(") {
			title += " " + strings.TrimSpace(lines[next])
			next++
		}
		return title, next, nil
	}
	return "", 0, &FormatError{Element: ElementTitle}
}

func parseBody(lines []string, refs map[int]string) (paragraphs []string, missingEnd bool) {
	var buffer []string
	inFence := false

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		paragraph := CleanParagraph(resolveRefLinks(strings.Join(buffer, "\n"), refs))
		if paragraph != "" {
			paragraphs = append(paragraphs, paragraph)
		}
		buffer = buffer[:0]
	}

	for _, line := range lines {
		if !inFence && endMarkerRe.MatchString(line) {
			flush()
			return paragraphs, false
		}
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			buffer = append(buffer, line)
			continue
		}
		if isBlank(line) && !inFence {
			flush()
			continue
		}
		buffer = append(buffer, line)
	}
	flush()
	return paragraphs, true
}
