package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/github"
	"github.com/forgeworks/forge/pkg/text"
)

var (
	issueListState  string
	issueListLabels string
	issueListMine   bool
	issueListLimit  int
)

// issueListCmd lists GitHub issues.
var issueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issues",
	Long: `List issues for the current repository.

Filters:
  --state: Filter by state (open, closed, all)
  --label: Filter by labels (comma-separated)
  --mine:  Show only issues assigned to you

Examples:
  forge issue list                # List open issues
  forge issue list --state all    # List all issues
  forge issue list --label bug,ci # Issues carrying both labels
  forge issue list --mine`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIssueList()
	},
}

func init() {
	issueCmd.AddCommand(issueListCmd)

	issueListCmd.Flags().StringVarP(&issueListState, "state", "s", "open", "Filter by state (open, closed, all)")
	issueListCmd.Flags().StringVarP(&issueListLabels, "label", "l", "", "Filter by labels (comma-separated)")
	issueListCmd.Flags().BoolVarP(&issueListMine, "mine", "m", false, "Show only issues assigned to you")
	issueListCmd.Flags().IntVarP(&issueListLimit, "limit", "n", 30, "Maximum number of issues to list")
}

func runIssueList() error {
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

	opts := github.ListIssuesOptions{
		State:  issueListState,
		Labels: text.ParseList(issueListLabels),
		Limit:  issueListLimit,
	}
	if issueListMine {
		opts.Assignee = "@me"
	}

	if verbose {
		fmt.Printf("Listing issues with state: %s\n", opts.State)
	}

	issues, err := ghClient.ListIssues(ctx, opts)
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	if len(issues) == 0 {
		fmt.Println("No issues found.")
		return nil
	}

	columns, rows := github.BuildIssueTable(issues)
	fmt.Println()
	renderTable(os.Stdout, columns, rows)
	fmt.Printf("\nTotal: %d issue(s)\n", len(issues))
	return nil
}
