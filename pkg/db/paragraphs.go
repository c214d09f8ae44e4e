package db

import (
	"database/sql"
	"fmt"

	"github.com/Crazytieguy/type-harder/models"
)

// InsertParagraph stores a new paragraph and returns its id.
func (db *DB) InsertParagraph(p models.Paragraph) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO paragraphs (article_title, article_url, book_title, sequence_title, idx_in_article,
			content, word_count, language, book_order, sequence_order, article_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ArticleTitle, p.ArticleURL, p.BookTitle, p.SequenceTitle, p.IndexInArticle,
		p.Content, p.WordCount, p.Language, p.BookOrder, p.SequenceOrder, p.ArticleOrder)
	if err != nil {
		return 0, fmt.Errorf("failed to insert paragraph %d of %q: %w", p.IndexInArticle, p.ArticleTitle, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get paragraph id: %w", err)
	}
	return id, nil
}

// UpdateParagraph replaces the row with p.ID in place, preserving the row's
// identity for downstream references.
func (db *DB) UpdateParagraph(p models.Paragraph) error {
	_, err := db.Exec(`
		UPDATE paragraphs
		SET article_title = ?, article_url = ?, book_title = ?, sequence_title = ?, idx_in_article = ?,
			content = ?, word_count = ?, language = ?, book_order = ?, sequence_order = ?, article_order = ?
		WHERE paragraph_id = ?
	`, p.ArticleTitle, p.ArticleURL, p.BookTitle, p.SequenceTitle, p.IndexInArticle,
		p.Content, p.WordCount, p.Language, p.BookOrder, p.SequenceOrder, p.ArticleOrder, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update paragraph %d: %w", p.ID, err)
	}
	return nil
}

// DeleteParagraphs removes paragraphs by id.
func (db *DB) DeleteParagraphs(ids []int64) error {
	for _, id := range ids {
		if _, err := db.Exec("DELETE FROM paragraphs WHERE paragraph_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete paragraph %d: %w", id, err)
		}
	}
	return nil
}

func scanParagraphs(rows *sql.Rows) ([]models.Paragraph, error) {
	var paragraphs []models.Paragraph
	for rows.Next() {
		var p models.Paragraph
		if err := rows.Scan(&p.ID, &p.ArticleTitle, &p.ArticleURL, &p.BookTitle, &p.SequenceTitle,
			&p.IndexInArticle, &p.Content, &p.WordCount, &p.Language,
			&p.BookOrder, &p.SequenceOrder, &p.ArticleOrder); err != nil {
			return nil, fmt.Errorf("failed to scan paragraph: %w", err)
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs, rows.Err()
}

const paragraphColumns = `paragraph_id, article_title, article_url, book_title, sequence_title,
	idx_in_article, content, word_count, language, book_order, sequence_order, article_order`

// GetParagraphsByArticle returns an article's paragraphs ordered by position.
func (db *DB) GetParagraphsByArticle(articleTitle string) ([]models.Paragraph, error) {
	rows, err := db.Query(`
		SELECT `+paragraphColumns+`
		FROM paragraphs WHERE article_title = ? ORDER BY idx_in_article
	`, articleTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to query paragraphs for %q: %w", articleTitle, err)
	}
	defer rows.Close()
	return scanParagraphs(rows)
}

// CountParagraphs returns the live paragraph count for an article title.
func (db *DB) CountParagraphs(articleTitle string) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM paragraphs WHERE article_title = ?", articleTitle).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count paragraphs for %q: %w", articleTitle, err)
	}
	return n, nil
}

// RandomParagraph picks one stored paragraph in the given language,
// uniformly at random. Used to start a practice race.
func (db *DB) RandomParagraph(language string) (*models.Paragraph, error) {
	row := db.QueryRow(`
		SELECT `+paragraphColumns+`
		FROM paragraphs WHERE language = ? ORDER BY RANDOM() LIMIT 1
	`, language)

	var p models.Paragraph
	err := row.Scan(&p.ID, &p.ArticleTitle, &p.ArticleURL, &p.BookTitle, &p.SequenceTitle,
		&p.IndexInArticle, &p.Content, &p.WordCount, &p.Language,
		&p.BookOrder, &p.SequenceOrder, &p.ArticleOrder)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no paragraphs stored for language %q: %w", language, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick random paragraph: %w", err)
	}
	return &p, nil
}
