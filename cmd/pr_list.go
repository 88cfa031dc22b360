package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/github"
)

var (
	prListState string
	prListMine  bool
	prListLimit int
)

// prListCmd lists pull requests.
var prListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pull requests",
	Long: `List pull requests for the current repository.

Filters:
  --state: Filter by state (open, closed, merged, all)
  --mine:  Show only PRs authored by you

Examples:
  forge pr list              # List open PRs
  forge pr list --state all  # List all PRs
  forge pr list --mine       # List your PRs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPRList()
	},
}

func init() {
	prCmd.AddCommand(prListCmd)

	prListCmd.Flags().StringVarP(&prListState, "state", "s", "open", "Filter by state (open, closed, merged, all)")
	prListCmd.Flags().BoolVarP(&prListMine, "mine", "m", false, "Show only PRs authored by you")
	prListCmd.Flags().IntVarP(&prListLimit, "limit", "n", 30, "Maximum number of PRs to list")
}

func runPRList() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	ghClient, err := github.NewClient(&cfg.GitHub, verbose)
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	opts := github.ListPRsOptions{
		State: prListState,
		Limit: prListLimit,
	}
	if prListMine {
		opts.Author = "@me"
	}

	if verbose {
		fmt.Printf("Listing PRs with state: %s\n", opts.State)
	}

	prs, err := ghClient.ListPRs(ctx, opts)
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	if len(prs) == 0 {
		fmt.Println("No pull requests found.")
		return nil
	}

	columns, rows := github.BuildPRTable(prs)
	fmt.Println()
	renderTable(os.Stdout, columns, rows)
	fmt.Printf("\nTotal: %d PR(s)\n", len(prs))
	return nil
}
