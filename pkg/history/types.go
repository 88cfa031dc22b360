// Package history stores lint and test run records in a local SQLite
// database so past results can be reviewed from the CLI.
package history

import "time"

// Run kinds.
const (
	KindLint = "lint"
	KindTest = "test"
)

// Run represents a recorded lint or test run.
type Run struct {
	ID        string
	Kind      string // "lint" or "test"
	Passed    int
	Failed    int
	Total     int
	Duration  float64 // seconds
	CreatedAt time.Time
}

// Succeeded returns true if the run recorded no failures.
func (r *Run) Succeeded() bool {
	return r.Failed == 0
}

// QueryOptions defines filtering options for run queries.
type QueryOptions struct {
	Kind       string     // Filter by run kind; empty matches all
	Since      *time.Time // Only runs recorded at or after this time
	FailedOnly bool       // Only runs with at least one failure
	Limit      int        // Maximum number of runs to return
}
