package db

import (
	"database/sql"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agentpress/agentpress/models"
)

// ArticleRecord is the listing row for an article: the extracted columns
// without the full document.
type ArticleRecord struct {
	ID              int64     `json:"id" yaml:"id"`
	Slug            string    `json:"slug" yaml:"slug"`
	Title           string    `json:"title" yaml:"title"`
	SyndicationMode string    `json:"syndication_mode" yaml:"syndication_mode"`
	UseTemplate     bool      `json:"use_template" yaml:"use_template"`
	SyndicatedCount int       `json:"syndicated_count" yaml:"syndicated_count"`
	Language        string    `json:"language,omitempty" yaml:"language,omitempty"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"updated_at"`
}

// SaveArticle inserts or replaces an article keyed by slug. The full article
// is stored as a YAML document; listing columns are extracted from it.
func (db *DB) SaveArticle(article *models.Article) error {
	doc, err := yaml.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to marshal article %q: %w", article.Slug, err)
	}

	_, err = db.Exec(`
		INSERT INTO articles (slug, title, syndication_mode, use_template, show_on_all, syndicated_count, language, document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			syndication_mode = excluded.syndication_mode,
			use_template = excluded.use_template,
			show_on_all = excluded.show_on_all,
			syndicated_count = excluded.syndicated_count,
			language = excluded.language,
			document = excluded.document,
			updated_at = CURRENT_TIMESTAMP`,
		article.Slug, article.Title, string(article.SyndicationMode), article.UseTemplate,
		article.ShowOnAllStorefronts, len(article.SyndicatedAgents), article.Language, string(doc))
	if err != nil {
		return fmt.Errorf("failed to save article %q: %w", article.Slug, err)
	}
	return nil
}

// GetArticle loads the full article document by slug. Returns nil, nil when
// no article has that slug.
func (db *DB) GetArticle(slug string) (*models.Article, error) {
	var doc string
	err := db.QueryRow("SELECT document FROM articles WHERE slug = ?", slug).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %q: %w", slug, err)
	}

	var article models.Article
	if err := yaml.Unmarshal([]byte(doc), &article); err != nil {
		return nil, fmt.Errorf("failed to unmarshal article %q: %w", slug, err)
	}
	return &article, nil
}

// ListArticles returns listing rows for every stored article, newest first.
func (db *DB) ListArticles() ([]ArticleRecord, error) {
	rows, err := db.Query(`
		SELECT article_id, slug, title, syndication_mode, use_template, syndicated_count,
		       COALESCE(language, ''), updated_at
		FROM articles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var records []ArticleRecord
	for rows.Next() {
		var r ArticleRecord
		if err := rows.Scan(&r.ID, &r.Slug, &r.Title, &r.SyndicationMode, &r.UseTemplate,
			&r.SyndicatedCount, &r.Language, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveTenant inserts or replaces a tenant keyed by slug.
func (db *DB) SaveTenant(tenant *models.Tenant) error {
	doc, err := yaml.Marshal(tenant)
	if err != nil {
		return fmt.Errorf("failed to marshal tenant %q: %w", tenant.Slug, err)
	}

	_, err = db.Exec(`
		INSERT INTO tenants (slug, name, primary_host, document)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			primary_host = excluded.primary_host,
			document = excluded.document`,
		tenant.Slug, tenant.Name, tenant.PrimaryHost(), string(doc))
	if err != nil {
		return fmt.Errorf("failed to save tenant %q: %w", tenant.Slug, err)
	}
	return nil
}

// GetTenant loads a tenant by slug. Returns nil, nil when absent.
func (db *DB) GetTenant(slug string) (*models.Tenant, error) {
	var doc string
	err := db.QueryRow("SELECT document FROM tenants WHERE slug = ?", slug).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant %q: %w", slug, err)
	}

	var tenant models.Tenant
	if err := yaml.Unmarshal([]byte(doc), &tenant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenant %q: %w", slug, err)
	}
	return &tenant, nil
}
