package wikitext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Crazytieguy/type-harder/models"
)

// TOCEntry is one article discovered on the table of contents page, in
// document order.
type TOCEntry struct {
	URL           string
	BookTitle     string
	SequenceTitle string
}

var (
	tocBookRe     = regexp.MustCompile(`^\*\s+\[Book\s+[IVXLCDM]+:\s*(.+?)\]\[(\d+)\]`)
	tocSequenceRe = regexp.MustCompile(`^ {4}(\d+)\.\s+\[(.+?)\]\[(\d+)\]`)
	tocArticleRe  = regexp.MustCompile(`^ {8,}(\d+)\.\s+\[(.+?)\]\[(\d+)\]`)
)

// ParseTOC parses the markdown of the table of contents page into an ordered
// list of article entries. urlPrefix restricts which reference-link
// definitions count as article URLs (the site's canonical domain).
//
// Indentation depth is the sole discriminator between sequence-level (exactly
// 4 spaces) and article-level (8 or more spaces) entries. Entries with
// insufficient indentation or missing parent context are silently dropped;
// the parse is deliberately lossy rather than strict.
func ParseTOC(markdown, urlPrefix string) []TOCEntry {
	lines := strings.Split(markdown, "\n")
	refs := collectRefs(lines, urlPrefix)

	var entries []TOCEntry
	var currentBook, currentSequence string

	for _, line := range lines {
		if m := tocBookRe.FindStringSubmatch(line); m != nil {
			currentBook = m[1]
			currentSequence = ""
			continue
		}
		if m := tocArticleRe.FindStringSubmatch(line); m != nil {
			if currentBook == "" || currentSequence == "" {
				continue
			}
			n, _ := strconv.Atoi(m[3])
			url, ok := refs[n]
			if !ok {
				continue
			}
			entries = append(entries, TOCEntry{
				URL:           url,
				BookTitle:     currentBook,
				SequenceTitle: currentSequence,
			})
			continue
		}
		if m := tocSequenceRe.FindStringSubmatch(line); m != nil {
			if currentBook == "" {
				continue
			}
			currentSequence = m[2]
		}
	}
	return entries
}

// orderAccumulator threads the running order counters through a single pass
// over the TOC entries, so order assignment stays a pure function of its
// input.
type orderAccumulator struct {
	bookOrders     map[string]int
	sequenceOrders map[string]int
	sequencesSeen  map[string]int
	articleCount   int
}

func newOrderAccumulator() *orderAccumulator {
	return &orderAccumulator{
		bookOrders:     make(map[string]int),
		sequenceOrders: make(map[string]int),
		sequencesSeen:  make(map[string]int),
	}
}

func (a *orderAccumulator) next(e TOCEntry) models.ArticleDescriptor {
	if _, ok := a.bookOrders[e.BookTitle]; !ok {
		a.bookOrders[e.BookTitle] = len(a.bookOrders) + 1
	}
	seqKey := e.BookTitle + "|" + e.SequenceTitle
	if _, ok := a.sequenceOrders[seqKey]; !ok {
		a.sequencesSeen[e.BookTitle]++
		a.sequenceOrders[seqKey] = a.sequencesSeen[e.BookTitle]
	}
	a.articleCount++
	return models.ArticleDescriptor{
		URL:           e.URL,
		BookTitle:     e.BookTitle,
		SequenceTitle: e.SequenceTitle,
		BookOrder:     a.bookOrders[e.BookTitle],
		SequenceOrder: a.sequenceOrders[seqKey],
		ArticleOrder:  a.articleCount,
	}
}

// AssignOrders converts TOC entries into article descriptors, assigning book,
// sequence and article order by first-seen position: book order increments the
// first time a book title appears, sequence order is the sequence's first-seen
// position within its book, and article order is a running counter over all
// entries.
func AssignOrders(entries []TOCEntry) []models.ArticleDescriptor {
	acc := newOrderAccumulator()
	descriptors := make([]models.ArticleDescriptor, 0, len(entries))
	for _, e := range entries {
		descriptors = append(descriptors, acc.next(e))
	}
	return descriptors
}
