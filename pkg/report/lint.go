// Package report turns linter and test-runner JSON output into tables and
// AI-readable text blocks. Parsers degrade gracefully: garbage input yields
// empty results, missing fields get placeholder values.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/forgeworks/forge/pkg/text"
)

// LintError is a single diagnostic from ruff's JSON output.
type LintError struct {
	File    string `json:"filename"`
	Code    string `json:"code"`
	Message string `json:"message"`
	DocURL  string `json:"url"`
	Location struct {
		Row    int `json:"row"`
		Column int `json:"column"`
	} `json:"location"`
}

// LintTableColumns is the fixed column order for lint tables.
var LintTableColumns = []string{"File", "Line", "Col", "Code", "Message"}

// ParseLintOutput parses ruff `--output-format json` output. Malformed or
// non-JSON input is treated as an empty result set, never an error.
func ParseLintOutput(data []byte) []LintError {
	var errs []LintError
	if err := json.Unmarshal(data, &errs); err != nil {
		return nil
	}
	return errs
}

// BuildLintTable renders lint errors as table rows under LintTableColumns.
// Paths are shown relative to root, and missing line/column numbers render
// as "?".
func BuildLintTable(errs []LintError, root string) ([]string, [][]string) {
	rows := make([][]string, 0, len(errs))
	for _, e := range errs {
		rows = append(rows, []string{
			text.RelativizePath(e.File, root),
			positionString(e.Location.Row),
			positionString(e.Location.Column),
			e.Code,
			e.Message,
		})
	}
	return LintTableColumns, rows
}

// FormatLintText renders lint errors as a text block suitable for feeding
// to an AI assistant: a count header, one bullet per error, and the rule's
// documentation link when available. Input order is preserved.
func FormatLintText(errs []LintError, root string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d lint error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(&b, "- %s:%s:%s - [%s] %s\n",
			text.RelativizePath(e.File, root),
			positionString(e.Location.Row),
			positionString(e.Location.Column),
			e.Code,
			e.Message,
		)
		if e.DocURL != "" {
			fmt.Fprintf(&b, "  Docs: %s\n", e.DocURL)
		}
	}

	return b.String()
}

// positionString renders a 1-based line/column number, or "?" when absent.
func positionString(n int) string {
	if n <= 0 {
		return "?"
	}
	return strconv.Itoa(n)
}
