package db

import (
	"database/sql"
	"fmt"

	"github.com/Crazytieguy/type-harder/models"
)

// UpsertArticle stores or refreshes the aggregate row for one article.
func (db *DB) UpsertArticle(a models.Article) error {
	_, err := db.Exec(`
		INSERT INTO articles (article_title, article_url, book_title, sequence_title,
			book_order, sequence_order, article_order, paragraph_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(article_title) DO UPDATE SET
			article_url = excluded.article_url,
			book_title = excluded.book_title,
			sequence_title = excluded.sequence_title,
			book_order = excluded.book_order,
			sequence_order = excluded.sequence_order,
			article_order = excluded.article_order,
			paragraph_count = excluded.paragraph_count
	`, a.ArticleTitle, a.ArticleURL, a.BookTitle, a.SequenceTitle,
		a.BookOrder, a.SequenceOrder, a.ArticleOrder, a.ParagraphCount)
	if err != nil {
		return fmt.Errorf("failed to upsert article %q: %w", a.ArticleTitle, err)
	}
	return nil
}

// GetArticle returns the aggregate row for an article title, or ErrNotFound.
func (db *DB) GetArticle(articleTitle string) (*models.Article, error) {
	var a models.Article
	err := db.QueryRow(`
		SELECT article_title, article_url, book_title, sequence_title,
			book_order, sequence_order, article_order, paragraph_count
		FROM articles WHERE article_title = ?
	`, articleTitle).Scan(&a.ArticleTitle, &a.ArticleURL, &a.BookTitle, &a.SequenceTitle,
		&a.BookOrder, &a.SequenceOrder, &a.ArticleOrder, &a.ParagraphCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("article %q: %w", articleTitle, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %q: %w", articleTitle, err)
	}
	return &a, nil
}

// BookStats summarizes stored content for one book.
type BookStats struct {
	BookTitle  string
	BookOrder  int
	Articles   int
	Paragraphs int
	Words      int
}

// StatsByBook aggregates paragraph and word totals per book in book order.
func (db *DB) StatsByBook() ([]BookStats, error) {
	rows, err := db.Query(`
		SELECT book_title, book_order, COUNT(DISTINCT article_title), COUNT(*), COALESCE(SUM(word_count), 0)
		FROM paragraphs
		GROUP BY book_title, book_order
		ORDER BY book_order
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query book stats: %w", err)
	}
	defer rows.Close()

	var stats []BookStats
	for rows.Next() {
		var s BookStats
		if err := rows.Scan(&s.BookTitle, &s.BookOrder, &s.Articles, &s.Paragraphs, &s.Words); err != nil {
			return nil, fmt.Errorf("failed to scan book stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
