package cmd

import (
	"github.com/spf13/cobra"
)

// issueCmd groups issue-related subcommands.
var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Manage GitHub issues",
	Long: `Manage GitHub issues for the current repository.

Subcommands:
  create: Create a new issue
  list:   List issues`,
}

func init() {
	rootCmd.AddCommand(issueCmd)
}
