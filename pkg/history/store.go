package history

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	passed INTEGER NOT NULL DEFAULT 0,
	failed INTEGER NOT NULL DEFAULT 0,
	total INTEGER NOT NULL DEFAULT 0,
	duration REAL NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Store manages the run history database.
type Store struct {
	path    string
	verbose bool
	logger  *slog.Logger
	db      *sql.DB
}

// NewStore creates a store for the database at path. The database file and
// its parent directory are created on first use.
func NewStore(path string, verbose bool) *Store {
	return &Store{
		path:    path,
		verbose: verbose,
		logger:  slog.Default(),
	}
}

// Open opens the database and ensures the schema exists. Safe to call more
// than once.
func (s *Store) Open() error {
	if s.db != nil {
		return nil
	}
	if s.path == "" {
		return forgeerrors.NewHistoryError("Open", "database path is not set")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return forgeerrors.NewHistoryErrorWithCause("Open", "failed to create database directory", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return forgeerrors.NewHistoryErrorWithCause("Open", "failed to open database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return forgeerrors.NewHistoryErrorWithCause("Open", "failed to initialize schema", err)
	}

	s.db = db
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return forgeerrors.NewHistoryErrorWithCause("Close", "failed to close database", err)
	}
	return nil
}

// Record inserts a run. A missing ID is generated; a missing timestamp is
// set to now.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	if err := s.Open(); err != nil {
		return nil, err
	}

	if run.Kind != KindLint && run.Kind != KindTest {
		return nil, forgeerrors.NewHistoryError("Record", "unknown run kind: "+run.Kind)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.Total == 0 {
		run.Total = run.Passed + run.Failed
	}

	s.logDebug("recording run", "id", run.ID, "kind", run.Kind, "failed", run.Failed)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, kind, passed, failed, total, duration, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Kind, run.Passed, run.Failed, run.Total, run.Duration, run.CreatedAt.Unix())
	if err != nil {
		return nil, forgeerrors.NewHistoryErrorWithCause("Record", "failed to insert run", err)
	}

	return &run, nil
}

// List returns runs matching the options, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]Run, error) {
	if err := s.Open(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)

	if opts.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, opts.Kind)
	}
	if opts.Since != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, opts.Since.Unix())
	}
	if opts.FailedOnly {
		conditions = append(conditions, "failed > 0")
	}

	query := "SELECT id, kind, passed, failed, total, duration, created_at FROM runs"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	s.logDebug("listing runs", "kind", opts.Kind, "limit", opts.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, forgeerrors.NewHistoryErrorWithCause("List", "failed to query runs", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			createdAt int64
		)
		if err := rows.Scan(&run.ID, &run.Kind, &run.Passed, &run.Failed,
			&run.Total, &run.Duration, &createdAt); err != nil {
			return nil, forgeerrors.NewHistoryErrorWithCause("List", "failed to scan run", err)
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, forgeerrors.NewHistoryErrorWithCause("List", "failed to iterate runs", err)
	}

	return runs, nil
}

// IsAvailable reports whether the database can be opened.
func (s *Store) IsAvailable() bool {
	return s.Open() == nil
}

func (s *Store) logDebug(msg string, args ...any) {
	if s.verbose {
		s.logger.Debug(msg, args...)
	}
}
