// Package store persists parameter sweep outcomes in SQLite. Only the final
// outcome of each run is kept, never per-step history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS sweep_outcomes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	sweep      TEXT    NOT NULL,
	grid_rows  INTEGER NOT NULL,
	grid_cols  INTEGER NOT NULL,
	t_shift    INTEGER NOT NULL,
	read_size  INTEGER NOT NULL,
	steps      INTEGER NOT NULL,
	halted     INTEGER NOT NULL,
	reason     TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sweep_outcomes_sweep ON sweep_outcomes(sweep);
`

// Outcome summarizes one configuration of a sweep.
type Outcome struct {
	Sweep    string
	Rows     int
	Cols     int
	TShift   int
	ReadSize int
	// Steps is the number of steps survived, or the halting step.
	Steps  int
	Halted bool
	Reason string
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:" for
// a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save inserts outcomes in a single transaction.
func (s *Store) Save(ctx context.Context, outcomes []Outcome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sweep_outcomes
		(sweep, grid_rows, grid_cols, t_shift, read_size, steps, halted, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, o := range outcomes {
		if _, err := stmt.ExecContext(ctx, o.Sweep, o.Rows, o.Cols, o.TShift, o.ReadSize,
			o.Steps, o.Halted, o.Reason, now); err != nil {
			return fmt.Errorf("insert outcome: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Outcomes returns the outcomes recorded for sweep, longest-surviving first.
func (s *Store) Outcomes(ctx context.Context, sweep string) ([]Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sweep, grid_rows, grid_cols, t_shift, read_size, steps, halted, reason
		FROM sweep_outcomes WHERE sweep = ?
		ORDER BY halted ASC, steps DESC, grid_rows, grid_cols, t_shift, read_size`, sweep)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var o Outcome
		if err := rows.Scan(&o.Sweep, &o.Rows, &o.Cols, &o.TShift, &o.ReadSize, &o.Steps, &o.Halted, &o.Reason); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
