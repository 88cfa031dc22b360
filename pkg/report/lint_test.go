package report

import (
	"strings"
	"testing"
)

const sampleRuffOutput = `[
  {
    "filename": "/repo/src/app.py",
    "code": "E501",
    "message": "Line too long (92 > 88)",
    "url": "https://docs.astral.sh/ruff/rules/line-too-long",
    "location": {"row": 14, "column": 89}
  },
  {
    "filename": "/repo/src/util.py",
    "code": "F401",
    "message": "os imported but unused",
    "location": {"row": 2, "column": 1}
  }
]`

func TestParseLintOutput(t *testing.T) {
	errs := ParseLintOutput([]byte(sampleRuffOutput))
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Code != "E501" {
		t.Errorf("Code = %q, want E501", errs[0].Code)
	}
	if errs[0].Location.Row != 14 || errs[0].Location.Column != 89 {
		t.Errorf("Location = %d:%d, want 14:89", errs[0].Location.Row, errs[0].Location.Column)
	}
	if errs[1].DocURL != "" {
		t.Errorf("DocURL = %q, want empty", errs[1].DocURL)
	}
}

func TestParseLintOutput_Malformed(t *testing.T) {
	inputs := []string{"", "not json", "{\"a\": 1}", "[{\"filename\": "}
	for _, input := range inputs {
		if errs := ParseLintOutput([]byte(input)); errs != nil {
			t.Errorf("ParseLintOutput(%q) = %v, want nil", input, errs)
		}
	}
}

func TestBuildLintTable(t *testing.T) {
	errs := ParseLintOutput([]byte(`[
	  {"filename": "/test.py", "location": {"row": 1, "column": 2}, "code": "E501", "message": "Line too long"}
	]`))

	columns, rows := BuildLintTable(errs, "/")

	wantColumns := []string{"File", "Line", "Col", "Code", "Message"}
	for i, col := range wantColumns {
		if columns[i] != col {
			t.Errorf("columns[%d] = %q, want %q", i, columns[i], col)
		}
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"test.py", "1", "2", "E501", "Line too long"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], cell)
		}
	}
}

func TestBuildLintTable_MissingPosition(t *testing.T) {
	errs := ParseLintOutput([]byte(`[{"filename": "/repo/a.py", "code": "E1", "message": "m"}]`))
	_, rows := BuildLintTable(errs, "/repo")

	if rows[0][1] != "?" || rows[0][2] != "?" {
		t.Errorf("missing position rendered as (%q, %q), want (\"?\", \"?\")", rows[0][1], rows[0][2])
	}
}

func TestFormatLintText(t *testing.T) {
	errs := ParseLintOutput([]byte(sampleRuffOutput))
	out := FormatLintText(errs, "/repo")

	if !strings.HasPrefix(out, "Found 2 lint error(s):\n") {
		t.Errorf("missing count header in %q", out)
	}
	if !strings.Contains(out, "- src/app.py:14:89 - [E501] Line too long (92 > 88)") {
		t.Errorf("missing first bullet in %q", out)
	}
	if !strings.Contains(out, "Docs: https://docs.astral.sh/ruff/rules/line-too-long") {
		t.Errorf("missing doc link in %q", out)
	}

	// Second record has no URL, so exactly one doc line.
	if strings.Count(out, "Docs:") != 1 {
		t.Errorf("expected exactly one doc line in %q", out)
	}

	// Order follows input order.
	if strings.Index(out, "src/app.py") > strings.Index(out, "src/util.py") {
		t.Error("output order does not match input order")
	}
}

func TestFormatLintText_Empty(t *testing.T) {
	out := FormatLintText(nil, "/repo")
	if out != "Found 0 lint error(s):\n" {
		t.Errorf("FormatLintText(nil) = %q", out)
	}
}
