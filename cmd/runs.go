package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/forgeworks/forge/pkg/history"
)

var (
	runsKind       string
	runsFailedOnly bool
	runsLimit      int
	runsSince      string
)

// runsCmd lists recorded lint and test runs.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded lint and test runs",
	Long: `List run summaries recorded by 'forge lint report' and
'forge test report', newest first.

Filters:
  --kind:        Filter by run kind (lint, test)
  --failed-only: Show only runs with failures
  --since:       Show runs after a date (YYYY-MM-DD)

Examples:
  forge runs
  forge runs --kind test --failed-only
  forge runs --since 2026-08-01 -n 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRuns()
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVarP(&runsKind, "kind", "k", "", "Filter by run kind (lint, test)")
	runsCmd.Flags().BoolVar(&runsFailedOnly, "failed-only", false, "Show only runs with failures")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")
	runsCmd.Flags().StringVar(&runsSince, "since", "", "Show runs after a date (YYYY-MM-DD)")
}

func runRuns() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if !cfg.History.Enabled || cfg.History.DatabasePath == "" {
		fmt.Println("Run history is disabled. Set history.enabled in your config.")
		return nil
	}

	opts := history.QueryOptions{
		Kind:       runsKind,
		FailedOnly: runsFailedOnly,
		Limit:      runsLimit,
	}
	if runsSince != "" {
		since, parseErr := time.Parse("2006-01-02", runsSince)
		if parseErr != nil {
			return errors.Wrapf(parseErr, "invalid --since date %q, expected YYYY-MM-DD", runsSince)
		}
		opts.Since = &since
	}

	store := history.NewStore(cfg.History.DatabasePath, verbose)
	if err := store.Open(); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.List(ctx, opts)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		result := "ok"
		if !run.Succeeded() {
			result = "fail"
		}
		rows = append(rows, []string{
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.Kind,
			result,
			strconv.Itoa(run.Passed),
			strconv.Itoa(run.Failed),
			strconv.Itoa(run.Total),
			fmt.Sprintf("%.2fs", run.Duration),
		})
	}

	renderTable(os.Stdout, []string{"When", "Kind", "Result", "Passed", "Failed", "Total", "Duration"}, rows)
	fmt.Printf("\nTotal: %d run(s)\n", len(runs))
	return nil
}
