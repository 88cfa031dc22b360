package cmd

import (
	"github.com/spf13/cobra"
)

// prCmd groups pull-request-related subcommands.
var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Manage pull requests",
	Long: `Manage pull requests for the current repository.

Subcommands:
  list: List pull requests`,
}

func init() {
	rootCmd.AddCommand(prCmd)
}
