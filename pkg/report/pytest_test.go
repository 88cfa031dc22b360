package report

import (
	"strings"
	"testing"
)

const samplePytestReport = `{
  "duration": 1.5,
  "summary": {"passed": 5, "failed": 2},
  "tests": [
    {"nodeid": "tests/test_api.py::test_create", "outcome": "failed",
     "call": {"longrepr": "AssertionError: expected 201, got 500"}},
    {"nodeid": "tests/test_api.py::test_list", "outcome": "passed",
     "call": {"longrepr": ""}},
    {"nodeid": "tests/test_db.py::test_migrate", "outcome": "failed",
     "call": {"longrepr": "sqlite3.OperationalError: no such table: runs\nduring handling of the above"}}
  ]
}`

func TestSummarize(t *testing.T) {
	report, err := ParseTestReport([]byte(samplePytestReport))
	if err != nil {
		t.Fatalf("ParseTestReport() error = %v", err)
	}

	s := Summarize(report)
	if s.Passed != 5 || s.Failed != 2 {
		t.Errorf("counters = %d/%d, want 5/2", s.Passed, s.Failed)
	}
	if s.Total != 7 {
		t.Errorf("Total = %d, want 7 (defaulted from passed+failed)", s.Total)
	}
	if s.Duration != 1.5 {
		t.Errorf("Duration = %v, want 1.5", s.Duration)
	}
}

func TestSummarize_ExplicitTotal(t *testing.T) {
	report, err := ParseTestReport([]byte(`{"summary": {"passed": 1, "failed": 1, "total": 10}}`))
	if err != nil {
		t.Fatalf("ParseTestReport() error = %v", err)
	}
	if s := Summarize(report); s.Total != 10 {
		t.Errorf("Total = %d, want explicit 10", s.Total)
	}
}

func TestSummarize_MissingKeys(t *testing.T) {
	report, err := ParseTestReport([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseTestReport() error = %v", err)
	}
	s := Summarize(report)
	if s.Passed != 0 || s.Failed != 0 || s.Total != 0 || s.Duration != 0 {
		t.Errorf("Summarize(empty) = %+v, want all zeroes", s)
	}
}

func TestParseTestReport_NotAMapping(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `"text"`, `42`, `not json`} {
		if _, err := ParseTestReport([]byte(input)); err == nil {
			t.Errorf("ParseTestReport(%q) expected error, got nil", input)
		}
	}
}

func TestFailures(t *testing.T) {
	report, err := ParseTestReport([]byte(samplePytestReport))
	if err != nil {
		t.Fatalf("ParseTestReport() error = %v", err)
	}

	failures := report.Failures()
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	if failures[0].TestID != "tests/test_api.py::test_create" {
		t.Errorf("first failure = %q", failures[0].TestID)
	}
	if failures[1].TestID != "tests/test_db.py::test_migrate" {
		t.Errorf("second failure = %q", failures[1].TestID)
	}
}

func TestBuildFailureTable_Truncation(t *testing.T) {
	longID := strings.Repeat("pkg/", 20) + "test_final" // 90 chars
	longDetail := "Error: " + strings.Repeat("x", 200)

	failures := []Failure{{TestID: longID, Detail: longDetail}}
	columns, rows := BuildFailureTable(failures, 0, 0)

	if columns[0] != "Test" || columns[1] != "Error" {
		t.Errorf("columns = %v", columns)
	}

	id := rows[0][0]
	if len(id) > DefaultMaxTestName {
		t.Errorf("id length %d exceeds %d", len(id), DefaultMaxTestName)
	}
	if !strings.HasPrefix(id, "...") || !strings.HasSuffix(id, "test_final") {
		t.Errorf("identifier should keep its tail, got %q", id)
	}

	detail := rows[0][1]
	if len(detail) > DefaultMaxErrorText {
		t.Errorf("detail length %d exceeds %d", len(detail), DefaultMaxErrorText)
	}
	if !strings.HasPrefix(detail, "Error: ") || !strings.HasSuffix(detail, "...") {
		t.Errorf("error text should keep its head, got %q", detail)
	}
}

func TestBuildFailureTable_ShortValuesUnchanged(t *testing.T) {
	failures := []Failure{{TestID: "t::a", Detail: "boom"}}
	_, rows := BuildFailureTable(failures, 60, 150)
	if rows[0][0] != "t::a" || rows[0][1] != "boom" {
		t.Errorf("short values changed: %v", rows[0])
	}
}

func TestFormatFailuresText(t *testing.T) {
	failures := []Failure{
		{TestID: "tests/test_api.py::test_create", Detail: "AssertionError: expected 201, got 500"},
		{TestID: "tests/test_db.py::test_migrate", Detail: "line one\nline two"},
	}

	out := FormatFailuresText(failures)

	if !strings.HasPrefix(out, "2 test(s) failed:\n") {
		t.Errorf("missing count header in %q", out)
	}
	if !strings.Contains(out, "Test: tests/test_api.py::test_create\n") {
		t.Errorf("missing test line in %q", out)
	}
	if !strings.Contains(out, "Error:\n  AssertionError: expected 201, got 500\n") {
		t.Errorf("missing error block in %q", out)
	}
	// Multi-line detail stays indented under its Error: header.
	if !strings.Contains(out, "Error:\n  line one\n  line two\n") {
		t.Errorf("multi-line detail not indented in %q", out)
	}
}
