package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Crazytieguy/type-harder/models"
)

// ErrNotFound is returned by lookups that miss.
var ErrNotFound = errors.New("not found")

// UpsertProgress queues one article URL. An existing completed record is
// left untouched; an existing pending or failed record is reset to pending
// with refreshed order metadata and a cleared error.
func (db *DB) UpsertProgress(d models.ArticleDescriptor) error {
	_, err := db.Exec(`
		INSERT INTO scrape_progress (url, status, book_title, sequence_title, book_order, sequence_order, article_order)
		VALUES (?, 'pending', ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			status = 'pending',
			book_title = excluded.book_title,
			sequence_title = excluded.sequence_title,
			book_order = excluded.book_order,
			sequence_order = excluded.sequence_order,
			article_order = excluded.article_order,
			error_message = NULL
		WHERE scrape_progress.status != 'completed'
	`, d.URL, d.BookTitle, d.SequenceTitle, d.BookOrder, d.SequenceOrder, d.ArticleOrder)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for %s: %w", d.URL, err)
	}
	return nil
}

// ClaimPending atomically claims up to limit pending URLs in article order,
// marking them processing in the same transaction so concurrent batch
// triggers cannot claim the same work.
func (db *DB) ClaimPending(limit int) ([]models.ProgressRecord, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`
		SELECT url, status, book_title, sequence_title, book_order, sequence_order, article_order
		FROM scrape_progress
		WHERE status = 'pending'
		ORDER BY article_order
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending records: %w", err)
	}

	var claimed []models.ProgressRecord
	for rows.Next() {
		var r models.ProgressRecord
		if err := rows.Scan(&r.URL, &r.Status, &r.BookTitle, &r.SequenceTitle, &r.BookOrder, &r.SequenceOrder, &r.ArticleOrder); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}
		claimed = append(claimed, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending records: %w", err)
	}

	if len(claimed) == 0 {
		return nil, tx.Commit()
	}

	placeholders := make([]string, len(claimed))
	args := make([]any, len(claimed))
	for i, r := range claimed {
		placeholders[i] = "?"
		args[i] = r.URL
	}
	_, err = tx.Exec(
		"UPDATE scrape_progress SET status = 'processing' WHERE url IN ("+strings.Join(placeholders, ",")+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mark claimed records processing: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	for i := range claimed {
		claimed[i].Status = models.StatusProcessing
	}
	return claimed, nil
}

// MarkProcessing flags a single URL as being worked on. Batch work goes
// through ClaimPending instead; this is for targeted re-scrapes.
func (db *DB) MarkProcessing(url string) error {
	_, err := db.Exec("UPDATE scrape_progress SET status = 'processing' WHERE url = ?", url)
	if err != nil {
		return fmt.Errorf("failed to mark %s processing: %w", url, err)
	}
	return nil
}

// MarkCompleted records a successful scrape of the URL.
func (db *DB) MarkCompleted(url string) error {
	_, err := db.Exec(`
		UPDATE scrape_progress
		SET status = 'completed', error_message = NULL, last_processed_at = CURRENT_TIMESTAMP
		WHERE url = ?
	`, url)
	if err != nil {
		return fmt.Errorf("failed to mark %s completed: %w", url, err)
	}
	return nil
}

// MarkFailed records a failed scrape of the URL with the error message.
func (db *DB) MarkFailed(url, message string) error {
	_, err := db.Exec(`
		UPDATE scrape_progress
		SET status = 'failed', error_message = ?, last_processed_at = CURRENT_TIMESTAMP
		WHERE url = ?
	`, message, url)
	if err != nil {
		return fmt.Errorf("failed to mark %s failed: %w", url, err)
	}
	return nil
}

// ResetToPending re-queues a single URL regardless of its current status.
func (db *DB) ResetToPending(url string) error {
	res, err := db.Exec(`
		UPDATE scrape_progress SET status = 'pending', error_message = NULL WHERE url = ?
	`, url)
	if err != nil {
		return fmt.Errorf("failed to reset %s to pending: %w", url, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check reset result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("progress record for %s: %w", url, ErrNotFound)
	}
	return nil
}

// ResetFailed re-queues every failed URL and returns how many were reset.
func (db *DB) ResetFailed() (int64, error) {
	res, err := db.Exec(`
		UPDATE scrape_progress SET status = 'pending', error_message = NULL WHERE status = 'failed'
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset failed records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count reset records: %w", err)
	}
	return n, nil
}

// GetProgress returns the record for a URL, or ErrNotFound.
func (db *DB) GetProgress(url string) (*models.ProgressRecord, error) {
	var r models.ProgressRecord
	var errMsg sql.NullString
	var processedAt sql.NullTime
	err := db.QueryRow(`
		SELECT url, status, book_title, sequence_title, book_order, sequence_order, article_order, error_message, last_processed_at
		FROM scrape_progress WHERE url = ?
	`, url).Scan(&r.URL, &r.Status, &r.BookTitle, &r.SequenceTitle, &r.BookOrder, &r.SequenceOrder, &r.ArticleOrder, &errMsg, &processedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("progress record for %s: %w", url, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress for %s: %w", url, err)
	}
	r.ErrorMessage = errMsg.String
	if processedAt.Valid {
		r.LastProcessedAt = &processedAt.Time
	}
	return &r, nil
}

// CountByStatus returns how many records sit in each lifecycle state.
func (db *DB) CountByStatus() (map[models.ProgressStatus]int, error) {
	rows, err := db.Query("SELECT status, COUNT(*) FROM scrape_progress GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count progress by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ProgressStatus]int)
	for rows.Next() {
		var status models.ProgressStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// PendingCount returns how many URLs still await processing.
func (db *DB) PendingCount() (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM scrape_progress WHERE status = 'pending'").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return n, nil
}
