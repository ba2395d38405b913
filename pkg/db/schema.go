package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Articles: the authored units. The full article (overrides, tenant
-- bundles, template) lives in the YAML document column; the extracted
-- columns exist for listing and filtering.
CREATE TABLE IF NOT EXISTS articles (
    article_id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    syndication_mode TEXT NOT NULL,
    use_template BOOLEAN DEFAULT 0,
    show_on_all BOOLEAN DEFAULT 0,
    syndicated_count INTEGER DEFAULT 0,
    language TEXT,
    document TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_articles_mode ON articles(syndication_mode);

-- Tenants: storefront identities, document column as above.
CREATE TABLE IF NOT EXISTS tenants (
    tenant_id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    primary_host TEXT,
    document TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Render runs: one row per batch invocation (render or syndicate).
CREATE TABLE IF NOT EXISTS render_runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL,              -- render, syndicate
    article_slug TEXT NOT NULL,
    target_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    dry_run BOOLEAN DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON render_runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_article ON render_runs(article_slug);

-- Run results: per-target outcome within a run, including the uniqueness
-- and canonical verdicts editors audit.
CREATE TABLE IF NOT EXISTS run_results (
    result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    tenant_slug TEXT NOT NULL,
    status TEXT NOT NULL,            -- success, failed
    uniqueness_score INTEGER,
    uniqueness_grade TEXT,
    canonical_url TEXT,
    self_referencing BOOLEAN,
    word_count INTEGER,
    error_message TEXT,
    FOREIGN KEY (run_id) REFERENCES render_runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, tenant_slug)
);

CREATE INDEX IF NOT EXISTS idx_results_run ON run_results(run_id);
`
