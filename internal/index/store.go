// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists extracted page text in a SQLite database and
// serves full-text queries over it.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/madfam-io/ec0249/pkg/types"
)

const dbFile = "analysis.db"

// Store manages the page index SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the index database at indexDir/analysis.db,
// creating the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			filename TEXT PRIMARY KEY,
			page_count INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			indexed_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pages (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			filename TEXT NOT NULL REFERENCES documents(filename),
			page INTEGER NOT NULL,
			content TEXT NOT NULL,
			UNIQUE(filename, page)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_filename ON pages(filename)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='pages_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE pages_fts USING fts5(content, content=pages, content_rowid=rowid)`,
			`CREATE TRIGGER pages_ai AFTER INSERT ON pages BEGIN
				INSERT INTO pages_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
			`CREATE TRIGGER pages_ad AFTER DELETE ON pages BEGIN
				INSERT INTO pages_fts(pages_fts, rowid, content) VALUES('delete', old.rowid, old.content);
			END`,
			`CREATE TRIGGER pages_au AFTER UPDATE ON pages BEGIN
				INSERT INTO pages_fts(pages_fts, rowid, content) VALUES('delete', old.rowid, old.content);
				INSERT INTO pages_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an index run.
type IngestSummary struct {
	Indexed int
	Updated int
	Failed  int
}

// Total returns the number of report entries processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Failed
}

// Ingest writes every entry of an analysis report into the database.
// Re-indexing a filename replaces its previous pages in one
// transaction. Entries whose extraction failed are stored as documents
// with the error message and no pages, so the index records the whole
// corpus state. Filenames are processed in sorted order for stable
// status output.
func (s *Store) Ingest(ctx context.Context, rep types.AnalysisReport, w io.Writer) (IngestSummary, error) {
	names := make([]string, 0, len(rep))
	for name := range rep {
		names = append(names, name)
	}
	sort.Strings(names)

	var summary IngestSummary

	for _, name := range names {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		var exists int
		if err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM documents WHERE filename = ?`, name,
		).Scan(&exists); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		isUpdate := exists > 0

		if err := s.ingestDocument(ctx, name, rep[name]); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d pages)\n", name, len(rep[name].Pages))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d pages)\n", name, len(rep[name].Pages))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Failed)

	return summary, nil
}

func (s *Store) ingestDocument(ctx context.Context, name string, r types.FileResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE filename = ?`, name); err != nil {
		return fmt.Errorf("deleting old pages: %w", err)
	}

	var errMsg sql.NullString
	if r.Failed() {
		errMsg = sql.NullString{String: r.Err, Valid: true}
	}
	indexedAt := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (filename, page_count, error, indexed_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(filename) DO UPDATE SET
			page_count=excluded.page_count, error=excluded.error,
			indexed_at=excluded.indexed_at`,
		name, len(r.Pages), errMsg, indexedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pages (filename, page, content) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range r.Pages {
		if _, err := stmt.ExecContext(ctx, name, p.Page, p.Content); err != nil {
			return fmt.Errorf("inserting page %d: %w", p.Page, err)
		}
	}

	return tx.Commit()
}
