// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for page index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Filename restricts hits to one document.
	Filename string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Filename == ""
}

// PageHit is one matching page with its source document.
type PageHit struct {
	Filename string `json:"filename" yaml:"filename"`
	Page     int    `json:"page" yaml:"page"`
	Content  string `json:"content" yaml:"content"`
}

// DocumentStatus summarizes one indexed document.
type DocumentStatus struct {
	Filename  string `json:"filename" yaml:"filename"`
	PageCount int    `json:"page_count" yaml:"page_count"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Search queries the page index. Full-text matches are ranked by
// relevance; filename-only queries return that document's pages in page
// order. An empty query is rejected.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]PageHit, error) {
	if opts.IsEmpty() {
		return nil, fmt.Errorf("empty query: provide search terms or a filename")
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT p.filename, p.page, p.content
			FROM pages_fts
			JOIN pages p ON p.rowid = pages_fts.rowid
			WHERE pages_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT p.filename, p.page, p.content
			FROM pages p
			WHERE 1=1`)
	}

	if opts.Filename != "" {
		qb.WriteString(` AND p.filename = ?`)
		args = append(args, opts.Filename)
	}

	if useFTS {
		qb.WriteString(` ORDER BY pages_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY p.page`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying page index: %w", err)
	}
	defer rows.Close()

	var hits []PageHit
	for rows.Next() {
		var h PageHit
		if err := rows.Scan(&h.Filename, &h.Page, &h.Content); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return hits, nil
}

// Documents lists every indexed document with its page count and error
// state, sorted by filename.
func (s *Store) Documents(ctx context.Context) ([]DocumentStatus, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT filename, page_count, error FROM documents ORDER BY filename`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentStatus
	for rows.Next() {
		var (
			d      DocumentStatus
			errMsg sql.NullString
		)
		if err := rows.Scan(&d.Filename, &d.PageCount, &errMsg); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		d.Error = errMsg.String
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return docs, nil
}
