package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run kinds.
const (
	RunKindRender    = "render"
	RunKindSyndicate = "syndicate"
)

// Result statuses.
const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// Run is one batch invocation.
type Run struct {
	ID           int64     `json:"id" yaml:"id"`
	BatchID      string    `json:"batch_id" yaml:"batch_id"`
	Kind         string    `json:"kind" yaml:"kind"`
	ArticleSlug  string    `json:"article_slug" yaml:"article_slug"`
	TargetCount  int       `json:"target_count" yaml:"target_count"`
	SuccessCount int       `json:"success_count" yaml:"success_count"`
	FailedCount  int       `json:"failed_count" yaml:"failed_count"`
	DryRun       bool      `json:"dry_run" yaml:"dry_run"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// RunResult is one target outcome within a run.
type RunResult struct {
	TenantSlug      string `json:"tenant_slug" yaml:"tenant_slug"`
	Status          string `json:"status" yaml:"status"`
	UniquenessScore int    `json:"uniqueness_score" yaml:"uniqueness_score"`
	UniquenessGrade string `json:"uniqueness_grade,omitempty" yaml:"uniqueness_grade,omitempty"`
	CanonicalURL    string `json:"canonical_url,omitempty" yaml:"canonical_url,omitempty"`
	SelfReferencing bool   `json:"self_referencing" yaml:"self_referencing"`
	WordCount       int    `json:"word_count" yaml:"word_count"`
	ErrorMessage    string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// CreateRun records a new batch and returns its id and generated batch id.
func (db *DB) CreateRun(kind, articleSlug string, targetCount int, dryRun bool) (int64, string, error) {
	batchID := uuid.New().String()

	result, err := db.Exec(`
		INSERT INTO render_runs (batch_id, kind, article_slug, target_count, dry_run)
		VALUES (?, ?, ?, ?, ?)`,
		batchID, kind, articleSlug, targetCount, dryRun)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, "", fmt.Errorf("failed to get run id: %w", err)
	}
	return runID, batchID, nil
}

// InsertRunResult records one target outcome and bumps the run counters.
func (db *DB) InsertRunResult(runID int64, r RunResult) error {
	_, err := db.Exec(`
		INSERT INTO run_results (run_id, tenant_slug, status, uniqueness_score, uniqueness_grade,
			canonical_url, self_referencing, word_count, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.TenantSlug, r.Status, r.UniquenessScore, r.UniquenessGrade,
		r.CanonicalURL, r.SelfReferencing, r.WordCount, r.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert run result: %w", err)
	}

	counter := "success_count"
	if r.Status == ResultFailed {
		counter = "failed_count"
	}
	_, err = db.Exec(fmt.Sprintf("UPDATE render_runs SET %s = %s + 1 WHERE run_id = ?", counter, counter), runID)
	if err != nil {
		return fmt.Errorf("failed to update run counters: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, batch_id, kind, article_slug, target_count, success_count, failed_count, dry_run, created_at
		FROM render_runs ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.BatchID, &r.Kind, &r.ArticleSlug, &r.TargetCount,
			&r.SuccessCount, &r.FailedCount, &r.DryRun, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunByBatchID looks up one run. Returns nil, nil when absent.
func (db *DB) GetRunByBatchID(batchID string) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, batch_id, kind, article_slug, target_count, success_count, failed_count, dry_run, created_at
		FROM render_runs WHERE batch_id = ?`, batchID).
		Scan(&r.ID, &r.BatchID, &r.Kind, &r.ArticleSlug, &r.TargetCount,
			&r.SuccessCount, &r.FailedCount, &r.DryRun, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %q: %w", batchID, err)
	}
	return &r, nil
}

// GetRunResults returns every target outcome for a run.
func (db *DB) GetRunResults(runID int64) ([]RunResult, error) {
	rows, err := db.Query(`
		SELECT tenant_slug, status, COALESCE(uniqueness_score, 0), COALESCE(uniqueness_grade, ''),
		       COALESCE(canonical_url, ''), COALESCE(self_referencing, 0), COALESCE(word_count, 0),
		       COALESCE(error_message, '')
		FROM run_results WHERE run_id = ? ORDER BY result_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var r RunResult
		if err := rows.Scan(&r.TenantSlug, &r.Status, &r.UniquenessScore, &r.UniquenessGrade,
			&r.CanonicalURL, &r.SelfReferencing, &r.WordCount, &r.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
