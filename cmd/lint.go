package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/history"
	"github.com/forgeworks/forge/pkg/report"
)

var (
	lintReportRoot string
	lintReportAI   bool
)

// lintCmd groups linter-related subcommands.
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Work with linter output",
	Long:  `Parse and format linter output for humans and AI assistants.`,
}

// lintReportCmd formats ruff JSON output.
var lintReportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Format ruff JSON output",
	Long: `Format ruff JSON output as a table or as an AI-readable text block.

Reads from the given file, or from stdin when no file is provided.
Malformed input is treated as an empty result set.

Examples:
  ruff check --output-format json . | forge lint report
  forge lint report ruff.json --ai
  forge lint report ruff.json --root ./src`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLintReport(args)
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.AddCommand(lintReportCmd)

	lintReportCmd.Flags().StringVarP(&lintReportRoot, "root", "r", "", "Project root for relative paths (default from config)")
	lintReportCmd.Flags().BoolVar(&lintReportAI, "ai", false, "Emit an AI-readable text block instead of a table")
}

func runLintReport(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	root := lintReportRoot
	if root == "" {
		root = cfg.Lint.Root
	}
	if root == "" {
		root, _ = os.Getwd()
	}

	data, err := readReportInput(args)
	if err != nil {
		return err
	}

	errs := report.ParseLintOutput(data)

	if lintReportAI {
		fmt.Print(report.FormatLintText(errs, root))
	} else if len(errs) == 0 {
		fmt.Println("No lint errors found.")
	} else {
		columns, rows := report.BuildLintTable(errs, root)
		renderTable(os.Stdout, columns, rows)
		fmt.Printf("\nTotal: %d error(s)\n", len(errs))
	}

	recordRun(cfg, history.Run{
		Kind:   history.KindLint,
		Failed: len(errs),
		Total:  len(errs),
	})

	return nil
}

// recordRun appends a run summary to the history store when history is
// enabled. Recording failures are reported but never fail the command.
func recordRun(cfg *config.Config, run history.Run) {
	if !cfg.History.Enabled || cfg.History.DatabasePath == "" {
		return
	}

	store := history.NewStore(cfg.History.DatabasePath, verbose)
	if err := store.Open(); err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: could not open history store: %v\n", err)
		}
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.Record(context.Background(), run); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
	}
}
