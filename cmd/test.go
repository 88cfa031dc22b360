package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/forgeworks/forge/pkg/history"
	"github.com/forgeworks/forge/pkg/report"
)

var testReportAI bool

// testCmd groups test-runner-related subcommands.
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Work with test-runner output",
	Long:  `Parse and format pytest JSON reports for humans and AI assistants.`,
}

// testReportCmd formats a pytest JSON report.
var testReportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Format a pytest JSON report",
	Long: `Format a pytest --json-report document as a summary plus a failure
table, or as an AI-readable text block.

Reads from the given file, or from stdin when no file is provided.
Truncation widths for the failure table come from the tests section of
the config.

Examples:
  pytest --json-report --json-report-file=report.json; forge test report report.json
  forge test report report.json --ai`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTestReport(args)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.AddCommand(testReportCmd)

	testReportCmd.Flags().BoolVar(&testReportAI, "ai", false, "Emit an AI-readable text block instead of a table")
}

func runTestReport(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	data, err := readReportInput(args)
	if err != nil {
		return err
	}

	testReport, err := report.ParseTestReport(data)
	if err != nil {
		return err
	}

	summary := report.Summarize(testReport)
	failures := testReport.Failures()

	if testReportAI {
		fmt.Print(report.FormatFailuresText(failures))
	} else {
		fmt.Printf("%d passed, %d failed, %d total (%.2fs)\n",
			summary.Passed, summary.Failed, summary.Total, summary.Duration)
		if len(failures) > 0 {
			fmt.Println()
			columns, rows := report.BuildFailureTable(failures, cfg.Tests.MaxTestName, cfg.Tests.MaxErrorText)
			renderTable(os.Stdout, columns, rows)
		}
	}

	recordRun(cfg, history.Run{
		Kind:     history.KindTest,
		Passed:   summary.Passed,
		Failed:   summary.Failed,
		Total:    summary.Total,
		Duration: summary.Duration,
	})

	return nil
}
