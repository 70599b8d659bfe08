// Package store persists runs and their output pairs in sqlite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"DataSci/internal/types"
)

// ErrNotFound is returned when a run id is not in the database.
var ErrNotFound = errors.New("run not found")

// timeLayout has a fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
create table if not exists runs (
	id text primary key,
	kind text not null,
	status text not null,
	detail text not null default '',
	error text not null default '',
	inputs integer not null default 0,
	outputs integer not null default 0,
	created_at text not null
);
create table if not exists pairs (
	run_id text not null references runs(id) on delete cascade,
	key text,
	value text
);
create index if not exists pairs_run on pairs (run_id);
`

// Options configures Open.
type Options struct {
	// Path is the sqlite file.
	Path string
	// Reset removes an existing file before opening.
	Reset bool
	// BusyTimeout bounds how long a write waits on a locked database.
	BusyTimeout time.Duration
}

// Store is a sqlite backed run store. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

func dsn(opts Options) string {
	timeout := opts.BusyTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return fmt.Sprintf("%s?_busy_timeout=%d&_foreign_keys=ON&_synchronous=NORMAL&mode=rwc",
		opts.Path, timeout.Milliseconds())
}

// Open opens or creates the database at opts.Path and applies the schema.
func Open(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("store: empty database path")
	}
	if opts.Reset {
		if err := os.Remove(opts.Path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("removing %s: %w", opts.Path, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", opts.Path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema in %s: %w", opts.Path, err)
	}
	return &Store{db: db, path: opts.Path}, nil
}

// Create opens a fresh database at path, deleting any existing file.
func Create(path string) (*Store, error) {
	return Open(Options{Path: path, Reset: true})
}

// Path returns the database file.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts run or replaces the stored record with the same id.
func (s *Store) SaveRun(run types.Run) error {
	_, err := s.db.Exec(`
		insert into runs (id, kind, status, detail, error, inputs, outputs, created_at)
		values (?, ?, ?, ?, ?, ?, ?, ?)
		on conflict(id) do update set
			kind = excluded.kind,
			status = excluded.status,
			detail = excluded.detail,
			error = excluded.error,
			inputs = excluded.inputs,
			outputs = excluded.outputs`,
		run.ID, string(run.Kind), string(run.Status), run.Detail, run.Error,
		run.Inputs, run.Outputs, run.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (types.Run, error) {
	var (
		run          types.Run
		kind, status string
		created      string
	)
	if err := row.Scan(&run.ID, &kind, &status, &run.Detail, &run.Error, &run.Inputs, &run.Outputs, &created); err != nil {
		return types.Run{}, err
	}
	run.Kind = types.RunKind(kind)
	run.Status = types.RunStatus(status)

	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return types.Run{}, fmt.Errorf("run %s has bad created_at %q: %w", run.ID, created, err)
	}
	run.CreatedAt = t
	return run, nil
}

const runColumns = `id, kind, status, detail, error, inputs, outputs, created_at`

// GetRun loads a run by id.
func (s *Store) GetRun(id string) (types.Run, error) {
	row := s.db.QueryRow(`select `+runColumns+` from runs where id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Run{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.Run{}, fmt.Errorf("loading run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns every run, oldest first.
func (s *Store) ListRuns() ([]types.Run, error) {
	rows, err := s.db.Query(`select ` + runColumns + ` from runs order by created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SavePairs appends output pairs for runID in one transaction.
func (s *Store) SavePairs(runID string, pairs []types.Pair) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`insert into pairs (run_id, key, value) values (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pairs {
		if _, err := stmt.Exec(runID, p.Key, p.Value); err != nil {
			return fmt.Errorf("inserting pair %q for run %s: %w", p.Key, runID, err)
		}
	}
	return tx.Commit()
}

// Pairs returns the output of runID in the order it was saved.
func (s *Store) Pairs(runID string) ([]types.Pair, error) {
	rows, err := s.db.Query(`select key, value from pairs where run_id = ? order by rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("loading pairs for run %s: %w", runID, err)
	}
	defer rows.Close()

	var pairs []types.Pair
	for rows.Next() {
		var p types.Pair
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

// RowCount returns the number of stored pairs across all runs.
func (s *Store) RowCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`select count(1) from pairs`).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}
