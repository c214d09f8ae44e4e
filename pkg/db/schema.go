package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Scrape queue: exactly one row per distinct article URL. This table is the
-- sole source of what remains to be fetched.
CREATE TABLE IF NOT EXISTS scrape_progress (
    url TEXT PRIMARY KEY,
    status TEXT NOT NULL DEFAULT 'pending',  -- pending, processing, completed, failed
    book_title TEXT NOT NULL,
    sequence_title TEXT NOT NULL,
    book_order INTEGER NOT NULL,
    sequence_order INTEGER NOT NULL,
    article_order INTEGER NOT NULL,
    error_message TEXT,
    last_processed_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_progress_status ON scrape_progress(status);
CREATE INDEX IF NOT EXISTS idx_progress_order ON scrape_progress(article_order);

-- Paragraphs: the typing-race content units. idx_in_article is the stable
-- identity across re-scrapes.
CREATE TABLE IF NOT EXISTS paragraphs (
    paragraph_id INTEGER PRIMARY KEY AUTOINCREMENT,
    article_title TEXT NOT NULL,
    article_url TEXT NOT NULL,
    book_title TEXT NOT NULL,
    sequence_title TEXT NOT NULL,
    idx_in_article INTEGER NOT NULL,
    content TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    language TEXT NOT NULL DEFAULT 'en',
    book_order INTEGER NOT NULL,
    sequence_order INTEGER NOT NULL,
    article_order INTEGER NOT NULL,
    UNIQUE(article_title, idx_in_article)
);

CREATE INDEX IF NOT EXISTS idx_paragraphs_article ON paragraphs(article_title);
CREATE INDEX IF NOT EXISTS idx_paragraphs_url ON paragraphs(article_url);
CREATE INDEX IF NOT EXISTS idx_paragraphs_language ON paragraphs(language);

-- Article aggregates: one row per scraped article. paragraph_count is kept
-- in sync by the orchestrator and can always be rebuilt by counting.
CREATE TABLE IF NOT EXISTS articles (
    article_title TEXT PRIMARY KEY,
    article_url TEXT NOT NULL,
    book_title TEXT NOT NULL,
    sequence_title TEXT NOT NULL,
    book_order INTEGER NOT NULL,
    sequence_order INTEGER NOT NULL,
    article_order INTEGER NOT NULL,
    paragraph_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_articles_url ON articles(article_url);
CREATE INDEX IF NOT EXISTS idx_articles_order ON articles(article_order);
`
