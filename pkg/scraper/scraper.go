// Package scraper drives the corpus scrape: TOC initialization, bounded
// batch processing with per-article fault isolation, and targeted
// re-scrapes. All completion state lives in the scrape_progress table, so
// every batch step is independently schedulable and resumable.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Crazytieguy/type-harder/models"
	"github.com/Crazytieguy/type-harder/pkg/db"
	"github.com/Crazytieguy/type-harder/pkg/detector"
	"github.com/Crazytieguy/type-harder/pkg/extract"
	"github.com/Crazytieguy/type-harder/pkg/fetcher"
	"github.com/Crazytieguy/type-harder/pkg/storage"
	"github.com/Crazytieguy/type-harder/pkg/wikitext"
)

// Scraper owns one scrape run. It is not safe for concurrent use; concurrent
// batch triggers are instead made safe by the atomic claim in the database.
type Scraper struct {
	log       *slog.Logger
	cfg       *models.Config
	db        *db.DB
	fetcher   *fetcher.Fetcher
	detector  *detector.Detector
	snapshots *storage.SnapshotStore
}

func New(log *slog.Logger, cfg *models.Config, database *db.DB) (*Scraper, error) {
	s := &Scraper{
		log:      log,
		cfg:      cfg,
		db:       database,
		fetcher:  fetcher.NewFetcher(cfg.UserAgent, cfg.SourceSuffix),
		detector: detector.New(),
	}
	if cfg.SnapshotDir != "" {
		snapshots, err := storage.NewSnapshotStore(cfg.SnapshotDir)
		if err != nil {
			return nil, err
		}
		s.snapshots = snapshots
	}
	return s, nil
}

// Init fetches and parses the table of contents, then queues one progress
// record per discovered URL. Completed records are left untouched; pending
// and failed ones are reset with refreshed order metadata. A TOC fetch
// failure aborts initialization; no partial TOC is acceptable.
func (s *Scraper) Init(ctx context.Context) (int, error) {
	tocURL := s.cfg.SiteURL + s.cfg.TOCPath
	body, err := s.fetcher.PageSource(ctx, tocURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch table of contents: %w", err)
	}

	entries := wikitext.ParseTOC(body, s.cfg.SiteURL)
	if len(entries) == 0 {
		return 0, fmt.Errorf("table of contents at %s yielded no articles", tocURL)
	}
	if s.cfg.PageLimit > 0 && len(entries) > s.cfg.PageLimit {
		entries = entries[:s.cfg.PageLimit]
	}

	descriptors := wikitext.AssignOrders(entries)
	for _, d := range descriptors {
		if err := s.db.UpsertProgress(d); err != nil {
			return 0, err
		}
	}

	s.log.Info("Scrape initialized", "articles", len(descriptors), "toc_url", tocURL)
	return len(descriptors), nil
}

// RunBatch claims up to BatchSize pending URLs and processes them strictly
// sequentially with a fixed delay between articles. Any error for one
// article marks that record failed and processing continues; the batch never
// aborts. Returns how many records were claimed; zero means no pending work
// remained.
func (s *Scraper) RunBatch(ctx context.Context) (int, error) {
	claimed, err := s.db.ClaimPending(s.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(claimed) == 0 {
		return 0, nil
	}

	for i, rec := range claimed {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		if err := s.processArticle(ctx, rec); err != nil {
			s.log.Error("Article failed", "url", rec.URL, "error", err)
			if dbErr := s.db.MarkFailed(rec.URL, err.Error()); dbErr != nil {
				return i, dbErr
			}
		} else {
			if dbErr := s.db.MarkCompleted(rec.URL); dbErr != nil {
				return i, dbErr
			}
		}

		if i < len(claimed)-1 {
			select {
			case <-time.After(s.cfg.Delay()):
			case <-ctx.Done():
				return i + 1, ctx.Err()
			}
		}
	}

	s.log.Info("Batch finished", "claimed", len(claimed))
	return len(claimed), nil
}

// Run executes batch steps until no pending work remains.
func (s *Scraper) Run(ctx context.Context) error {
	for {
		n, err := s.RunBatch(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
}

// Rescrape re-fetches a single known article and reconciles its paragraphs
// in place: rows matched by position keep their identity, and positions the
// new parse no longer produces are deleted. Old paragraphs stay intact
// unless the new parse succeeds.
func (s *Scraper) Rescrape(ctx context.Context, articleTitle string) error {
	article, err := s.db.GetArticle(articleTitle)
	if err != nil {
		return err
	}

	rec, err := s.db.GetProgress(article.ArticleURL)
	if err != nil {
		return err
	}

	if err := s.db.MarkProcessing(rec.URL); err != nil {
		return err
	}
	if err := s.processArticle(ctx, *rec); err != nil {
		if dbErr := s.db.MarkFailed(rec.URL, err.Error()); dbErr != nil {
			return dbErr
		}
		return err
	}
	return s.db.MarkCompleted(rec.URL)
}

// processArticle runs the full per-article pipeline: fetch, redirect
// resolution, parse (with HTML fallback), word counting, language tagging,
// reconcile and persist, aggregate refresh.
func (s *Scraper) processArticle(ctx context.Context, rec models.ProgressRecord) error {
	body, err := s.fetcher.PageSource(ctx, rec.URL)
	if err != nil {
		return err
	}

	markdown, finalURL, err := s.fetcher.ResolveRedirect(ctx, body, rec.URL, s.cfg.SiteURL)
	if err != nil {
		return fmt.Errorf("failed to resolve redirect: %w", err)
	}

	if s.snapshots != nil {
		if err := s.snapshots.Save(finalURL, []byte(markdown)); err != nil {
			s.log.Warn("Failed to save snapshot", "url", finalURL, "error", err)
		}
	}

	parsed, err := s.parse(finalURL, markdown)
	if err != nil {
		return err
	}
	if parsed.MissingEndMarker {
		s.log.Warn("End-of-article marker missing, collected to EOF", "url", finalURL)
	}

	fresh := make([]models.Paragraph, 0, len(parsed.Paragraphs))
	for i, content := range parsed.Paragraphs {
		fresh = append(fresh, models.Paragraph{
			Content:        content,
			BookTitle:      rec.BookTitle,
			SequenceTitle:  rec.SequenceTitle,
			ArticleTitle:   parsed.Title,
			ArticleURL:     finalURL,
			IndexInArticle: i,
			WordCount:      wikitext.CountWords(content),
			Language:       s.detector.Tag(content),
			BookOrder:      rec.BookOrder,
			SequenceOrder:  rec.SequenceOrder,
			ArticleOrder:   rec.ArticleOrder,
		})
	}

	old, err := s.db.GetParagraphsByArticle(parsed.Title)
	if err != nil {
		return err
	}
	oldByIndex := make(map[int]int64, len(old))
	for _, p := range old {
		oldByIndex[p.IndexInArticle] = p.ID
	}

	upserts, deleteIDs := Reconcile(oldByIndex, fresh)
	for _, p := range upserts {
		if p.ID > 0 {
			err = s.db.UpdateParagraph(p)
		} else {
			_, err = s.db.InsertParagraph(p)
		}
		if err != nil {
			return err
		}
	}
	if err := s.db.DeleteParagraphs(deleteIDs); err != nil {
		return err
	}

	if err := s.db.UpsertArticle(models.Article{
		BookTitle:      rec.BookTitle,
		BookOrder:      rec.BookOrder,
		SequenceTitle:  rec.SequenceTitle,
		SequenceOrder:  rec.SequenceOrder,
		ArticleTitle:   parsed.Title,
		ArticleURL:     finalURL,
		ArticleOrder:   rec.ArticleOrder,
		ParagraphCount: len(fresh),
	}); err != nil {
		return err
	}

	s.log.Info("Article scraped", "url", finalURL, "title", parsed.Title, "paragraphs", len(fresh))
	return nil
}

// parse tries the markdown structural parse first and falls back to HTML
// extraction when the source endpoint served a rendered page.
func (s *Scraper) parse(finalURL, body string) (*wikitext.ParsedArticle, error) {
	parsed, err := wikitext.ParseArticle(body)
	if err == nil {
		return parsed, nil
	}

	var formatErr *wikitext.FormatError
	if errors.As(err, &formatErr) && extract.LooksLikeHTML(body) {
		s.log.Warn("Markdown parse failed on HTML body, using fallback extractor", "url", finalURL, "error", err)
		return extract.Article(finalURL, body)
	}
	return nil, err
}
