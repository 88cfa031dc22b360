package report

import (
	"encoding/json"
	"fmt"
	"strings"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/text"
)

// Failure table truncation defaults. Test identifiers keep their tail (the
// nested test name is the distinctive part), error text keeps its head (the
// exception type and message come first).
const (
	DefaultMaxTestName  = 60
	DefaultMaxErrorText = 150
)

// Failure is a single failed test from a pytest JSON report.
type Failure struct {
	TestID string
	Detail string
}

// Summary holds the aggregate counters of a test run.
type Summary struct {
	Passed   int
	Failed   int
	Total    int
	Duration float64
}

// TestReport is the parsed shape of pytest's `--json-report` output.
// Missing keys default to zero values; only a non-object document is
// rejected.
type TestReport struct {
	Duration float64 `json:"duration"`
	Summary  struct {
		Passed int `json:"passed"`
		Failed int `json:"failed"`
		Total  int `json:"total"`
	} `json:"summary"`
	Tests []struct {
		NodeID string `json:"nodeid"`
		Call   struct {
			Longrepr string `json:"longrepr"`
		} `json:"call"`
		Outcome string `json:"outcome"`
	} `json:"tests"`
}

// FailureTableColumns is the fixed column order for failure tables.
var FailureTableColumns = []string{"Test", "Error"}

// ParseTestReport parses a pytest JSON report. Input that is not a JSON
// object at all is an error; an object with missing keys parses to zeroes.
func ParseTestReport(data []byte) (*TestReport, error) {
	var report TestReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, forgeerrors.Wrap(err, "test report is not a JSON object")
	}
	return &report, nil
}

// Summarize extracts the run counters from a report. Total defaults to
// Passed+Failed when the report doesn't carry it.
func Summarize(report *TestReport) Summary {
	s := Summary{
		Passed:   report.Summary.Passed,
		Failed:   report.Summary.Failed,
		Total:    report.Summary.Total,
		Duration: report.Duration,
	}
	if s.Total == 0 {
		s.Total = s.Passed + s.Failed
	}
	return s
}

// Failures extracts the failed tests from a report in document order.
func (r *TestReport) Failures() []Failure {
	var out []Failure
	for _, tc := range r.Tests {
		if tc.Outcome != "failed" {
			continue
		}
		out = append(out, Failure{TestID: tc.NodeID, Detail: tc.Call.Longrepr})
	}
	return out
}

// BuildFailureTable renders failures as table rows. Identifiers longer than
// maxName are left-truncated (tail kept); error text longer than maxErr is
// right-truncated (head kept). Pass 0 to use the defaults.
func BuildFailureTable(failures []Failure, maxName, maxErr int) ([]string, [][]string) {
	if maxName <= 0 {
		maxName = DefaultMaxTestName
	}
	if maxErr <= 0 {
		maxErr = DefaultMaxErrorText
	}

	rows := make([][]string, 0, len(failures))
	for _, f := range failures {
		rows = append(rows, []string{
			text.TruncateLeft(f.TestID, maxName),
			text.Truncate(f.Detail, maxErr),
		})
	}
	return FailureTableColumns, rows
}

// FormatFailuresText renders failures as a text block for an AI assistant:
// a count header, then a two-line block per failure with the full detail.
func FormatFailuresText(failures []Failure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d test(s) failed:\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(&b, "Test: %s\n", f.TestID)
		fmt.Fprintf(&b, "Error:\n  %s\n", strings.ReplaceAll(f.Detail, "\n", "\n  "))
	}

	return b.String()
}
