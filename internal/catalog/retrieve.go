// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/texclean/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is an FTS4 match expression over titles and bodies.
	Query string

	// Status keeps only documents with this conversion status.
	Status types.ConversionStatus

	// WarningKind keeps only documents that raised a warning of this kind.
	WarningKind types.WarningKind

	// RunID keeps only documents converted by one batch run.
	RunID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Status == "" && q.WarningKind == "" && q.RunID == ""
}

// Retrieve lists documents matching opts, most recently converted first.
// Each result carries its warnings.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.Document, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	if opts.Query != "" {
		qb.WriteString(`SELECT ` + documentColumns + `
			FROM documents_fts
			JOIN documents d ON d.rowid = documents_fts.docid
			WHERE documents_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(`SELECT ` + documentColumns + ` FROM documents d WHERE 1=1`)
	}

	if opts.Status != "" {
		qb.WriteString(` AND d.status = ?`)
		args = append(args, string(opts.Status))
	}
	if opts.RunID != "" {
		qb.WriteString(` AND d.run_id = ?`)
		args = append(args, opts.RunID)
	}
	if opts.WarningKind != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM warnings w WHERE w.document_id = d.id AND w.kind = ?)`)
		args = append(args, string(opts.WarningKind))
	}

	qb.WriteString(` ORDER BY d.converted_at DESC, d.id LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var docs []types.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range docs {
		if docs[i].Warnings, err = s.warnings(ctx, docs[i].ID); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// Summary counts catalogued documents per conversion status.
func (s *Store) Summary(ctx context.Context) (map[types.ConversionStatus]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, count(*) FROM documents GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("summarizing catalog: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.ConversionStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		counts[types.ConversionStatus(status)] = n
	}
	return counts, rows.Err()
}
