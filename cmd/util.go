package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// newLogger returns a debug-level logger on stderr when verbose mode is
// enabled, nil otherwise. Packages treat a nil logger as "no debug output".
func newLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// readReportInput reads report JSON from the given file argument, or from
// stdin when no argument was provided.
func readReportInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read report file %s", args[0])
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read report from stdin")
	}
	return data, nil
}

// renderTable prints columns and rows with padded, left-aligned columns and
// a dashed separator under the header.
func renderTable(w io.Writer, columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	total := 0
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(w, "  ")
			total += 2
		}
		fmt.Fprintf(w, "%-*s", widths[i], col)
		total += widths[i]
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", total))

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			if i == len(row)-1 {
				fmt.Fprint(w, cell)
			} else {
				fmt.Fprintf(w, "%-*s", widths[i], cell)
			}
		}
		fmt.Fprintln(w)
	}
}
