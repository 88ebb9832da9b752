package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists runs in a SQLite database. Use ":memory:" for an
// ephemeral database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// migrates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			doc_hash    TEXT NOT NULL,
			seed        INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			output_len  INTEGER NOT NULL,
			created_at  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_doc_hash ON runs(doc_hash)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	prepare(run)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, doc_hash, seed, generations, output_len, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.DocHash, run.Seed, run.Generations, run.OutputLen,
		run.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, docHash string) ([]*Run, error) {
	query := `SELECT id, doc_hash, seed, generations, output_len, created_at
		FROM runs`
	args := []any{}
	if docHash != "" {
		query += ` WHERE doc_hash = ?`
		args = append(args, docHash)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []*Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.DocHash, &run.Seed, &run.Generations, &run.OutputLen, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
