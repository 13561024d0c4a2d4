// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records converted documents in SQLite and answers
// full-text and structured queries over them.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/texclean/pkg/types"
)

const (
	dbFile            = "catalog.db"
	defaultDir        = ".texclean"
	defaultMaxResults = 20
)

// ErrNotFound is returned when no document has the requested ID.
var ErrNotFound = errors.New("document not found")

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates dir/catalog.db and its schema.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, dir: dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string {
	return s.dir
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source_path TEXT NOT NULL,
			output_path TEXT,
			title TEXT,
			authors TEXT,
			status TEXT NOT NULL,
			size INTEGER,
			run_id TEXT,
			converted_at TEXT,
			body TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_run_id ON documents(run_id)`,
		`CREATE TABLE IF NOT EXISTS warnings (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			stage TEXT,
			message TEXT,
			PRIMARY KEY (document_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_warnings_kind ON warnings(kind)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts4(title, body)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts doc or replaces the previous record with the same ID,
// together with its warnings and the converted body used for search.
func (s *Store) Record(ctx context.Context, doc types.Document, body string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	authorsJSON, err := json.Marshal(doc.Authors)
	if err != nil {
		return fmt.Errorf("encoding authors: %w", err)
	}
	convertedAt := ""
	if !doc.ConvertedAt.IsZero() {
		convertedAt = doc.ConvertedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, source_path, output_path, title, authors, status, size, run_id, converted_at, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			source_path=excluded.source_path, output_path=excluded.output_path,
			title=excluded.title, authors=excluded.authors, status=excluded.status,
			size=excluded.size, run_id=excluded.run_id,
			converted_at=excluded.converted_at, body=excluded.body`,
		doc.ID, doc.SourcePath, doc.OutputPath, doc.Title, string(authorsJSON),
		string(doc.ConversionStatus), doc.Size, doc.RunID, convertedAt, body,
	)
	if err != nil {
		return fmt.Errorf("upserting document %s: %w", doc.ID, err)
	}

	var rowid int64
	if err := tx.QueryRowContext(ctx, `SELECT rowid FROM documents WHERE id = ?`, doc.ID).Scan(&rowid); err != nil {
		return fmt.Errorf("looking up document %s: %w", doc.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM documents_fts WHERE docid = ?`, rowid); err != nil {
		return fmt.Errorf("clearing search index: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents_fts (docid, title, body) VALUES (?, ?, ?)`, rowid, doc.Title, body,
	); err != nil {
		return fmt.Errorf("indexing document %s: %w", doc.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM warnings WHERE document_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("deleting old warnings: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO warnings (document_id, seq, kind, stage, message) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()
	for i, w := range doc.Warnings {
		if _, err := stmt.ExecContext(ctx, doc.ID, i, string(w.Kind), w.Stage, w.Message); err != nil {
			return fmt.Errorf("inserting warning %d of %s: %w", i, doc.ID, err)
		}
	}

	return tx.Commit()
}

// Get returns the document with id and its converted body.
func (s *Store) Get(ctx context.Context, id string) (types.Document, string, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+`, d.body FROM documents d WHERE d.id = ?`, id)

	var body sql.NullString
	doc, err := scanDocument(row, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Document{}, "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.Document{}, "", fmt.Errorf("looking up %s: %w", id, err)
	}

	warnings, err := s.warnings(ctx, id)
	if err != nil {
		return types.Document{}, "", err
	}
	doc.Warnings = warnings
	return doc, body.String, nil
}

// Delete removes the document with id, its warnings and its search entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var rowid int64
	err = tx.QueryRowContext(ctx, `SELECT rowid FROM documents WHERE id = ?`, id).Scan(&rowid)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("looking up %s: %w", id, err)
	}
	for _, q := range []struct {
		stmt string
		arg  any
	}{
		{`DELETE FROM documents_fts WHERE docid = ?`, rowid},
		{`DELETE FROM warnings WHERE document_id = ?`, id},
		{`DELETE FROM documents WHERE id = ?`, id},
	} {
		if _, err := tx.ExecContext(ctx, q.stmt, q.arg); err != nil {
			return fmt.Errorf("deleting %s: %w", id, err)
		}
	}
	return tx.Commit()
}

func (s *Store) warnings(ctx context.Context, id string) ([]types.Warning, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, stage, message FROM warnings WHERE document_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("querying warnings of %s: %w", id, err)
	}
	defer rows.Close()

	var out []types.Warning
	for rows.Next() {
		var (
			w              types.Warning
			kind           string
			stage, message sql.NullString
		)
		if err := rows.Scan(&kind, &stage, &message); err != nil {
			return nil, fmt.Errorf("scanning warning: %w", err)
		}
		w.Kind = types.WarningKind(kind)
		w.Stage = stage.String
		w.Message = message.String
		out = append(out, w)
	}
	return out, rows.Err()
}

const documentColumns = `d.id, d.source_path, d.output_path, d.title, d.authors,
	d.status, d.size, d.run_id, d.converted_at`

type scanner interface {
	Scan(dest ...any) error
}

// scanDocument reads the documentColumns of one row followed by extra
// destinations.
func scanDocument(row scanner, extra ...any) (types.Document, error) {
	var (
		doc                                        types.Document
		output, title, authors, runID, convertedAt sql.NullString
		size                                       sql.NullInt64
		status                                     string
	)
	dest := append([]any{&doc.ID, &doc.SourcePath, &output, &title, &authors,
		&status, &size, &runID, &convertedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return types.Document{}, err
	}

	doc.OutputPath = output.String
	doc.Title = title.String
	doc.ConversionStatus = types.ConversionStatus(status)
	doc.Size = size.Int64
	doc.RunID = runID.String
	if authors.Valid && authors.String != "" {
		if err := json.Unmarshal([]byte(authors.String), &doc.Authors); err != nil {
			return types.Document{}, fmt.Errorf("decoding authors of %s: %w", doc.ID, err)
		}
	}
	if convertedAt.String != "" {
		t, err := time.Parse(time.RFC3339Nano, convertedAt.String)
		if err != nil {
			return types.Document{}, fmt.Errorf("decoding timestamp of %s: %w", doc.ID, err)
		}
		doc.ConvertedAt = t
	}
	return doc, nil
}
