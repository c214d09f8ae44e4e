// Package models defines data structures shared across the scrape pipeline
// and the race runtime.
package models

import "time"

// ArticleDescriptor identifies one article discovered on the table of
// contents page, together with its position in the book/sequence hierarchy.
// Order fields are assigned in first-seen order during scrape initialization.
type ArticleDescriptor struct {
	URL           string
	BookTitle     string
	SequenceTitle string
	BookOrder     int
	SequenceOrder int
	ArticleOrder  int
}

// ProgressStatus is the lifecycle state of one URL in the scrape queue.
type ProgressStatus string

const (
	StatusPending    ProgressStatus = "pending"
	StatusProcessing ProgressStatus = "processing"
	StatusCompleted  ProgressStatus = "completed"
	StatusFailed     ProgressStatus = "failed"
)

// ProgressRecord tracks the scrape state of a single article URL. There is
// exactly one record per distinct URL; it is the sole source of what remains
// to be fetched.
type ProgressRecord struct {
	URL             string
	Status          ProgressStatus
	BookTitle       string
	SequenceTitle   string
	BookOrder       int
	SequenceOrder   int
	ArticleOrder    int
	ErrorMessage    string
	LastProcessedAt *time.Time
}

// Descriptor returns the article descriptor carried by the record.
func (r *ProgressRecord) Descriptor() ArticleDescriptor {
	return ArticleDescriptor{
		URL:           r.URL,
		BookTitle:     r.BookTitle,
		SequenceTitle: r.SequenceTitle,
		BookOrder:     r.BookOrder,
		SequenceOrder: r.SequenceOrder,
		ArticleOrder:  r.ArticleOrder,
	}
}

// Paragraph is one typing-race unit of text. IndexInArticle is the
// paragraph's 0-based position within its article as emitted by the parser;
// it is the stable identity used to match old and new paragraphs across
// re-scrapes. WordCount always equals CountWords(Content).
type Paragraph struct {
	ID             int64
	Content        string
	BookTitle      string
	SequenceTitle  string
	ArticleTitle   string
	ArticleURL     string
	IndexInArticle int
	WordCount      int
	Language       string
	BookOrder      int
	SequenceOrder  int
	ArticleOrder   int
}

// Article is the aggregate metadata row for one scraped article.
// ParagraphCount is kept in sync by the orchestrator and is always
// recomputable as the live count of paragraphs for the title.
type Article struct {
	BookTitle      string
	BookOrder      int
	SequenceTitle  string
	SequenceOrder  int
	ArticleTitle   string
	ArticleURL     string
	ArticleOrder   int
	ParagraphCount int
}
