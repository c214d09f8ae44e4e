package db

import (
	"errors"
	"testing"

	"github.com/Crazytieguy/type-harder/models"
)

func TestUpsertAndGetArticle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	article := models.Article{
		BookTitle:      "Map and Territory",
		BookOrder:      1,
		SequenceTitle:  "Predictably Wrong",
		SequenceOrder:  1,
		ArticleTitle:   "Feeling Rational",
		ArticleURL:     "https://www.readthesequences.com/Feeling-Rational",
		ArticleOrder:   2,
		ParagraphCount: 14,
	}
	if err := db.UpsertArticle(article); err != nil {
		t.Fatalf("UpsertArticle() failed: %v", err)
	}

	got, err := db.GetArticle("Feeling Rational")
	if err != nil {
		t.Fatalf("GetArticle() failed: %v", err)
	}
	if *got != article {
		t.Errorf("GetArticle() = %+v, want %+v", *got, article)
	}

	// Re-scrape refreshes the aggregate row in place.
	article.ParagraphCount = 12
	if err := db.UpsertArticle(article); err != nil {
		t.Fatalf("UpsertArticle() failed: %v", err)
	}
	got, err = db.GetArticle("Feeling Rational")
	if err != nil {
		t.Fatalf("GetArticle() failed: %v", err)
	}
	if got.ParagraphCount != 12 {
		t.Errorf("ParagraphCount = %d, want 12", got.ParagraphCount)
	}

	_, err = db.GetArticle("Unknown")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetArticle(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestStatsByBook(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	insert := func(book string, bookOrder int, article string, idx, words int) {
		t.Helper()
		p := testParagraph(idx, "text")
		p.BookTitle = book
		p.BookOrder = bookOrder
		p.ArticleTitle = article
		p.WordCount = words
		if _, err := db.InsertParagraph(p); err != nil {
			t.Fatalf("InsertParagraph() failed: %v", err)
		}
	}
	insert("How to Actually Change Your Mind", 2, "Humility", 0, 50)
	insert("Map and Territory", 1, "Feeling Rational", 0, 10)
	insert("Map and Territory", 1, "Feeling Rational", 1, 20)
	insert("Map and Territory", 1, "Rationality", 0, 30)

	stats, err := db.StatsByBook()
	if err != nil {
		t.Fatalf("StatsByBook() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d books, want 2", len(stats))
	}
	first := stats[0]
	if first.BookTitle != "Map and Territory" || first.Articles != 2 || first.Paragraphs != 3 || first.Words != 60 {
		t.Errorf("book 1 stats = %+v", first)
	}
	second := stats[1]
	if second.BookOrder != 2 || second.Words != 50 {
		t.Errorf("book 2 stats = %+v", second)
	}
}
