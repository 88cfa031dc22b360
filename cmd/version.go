package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the forge version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the forge version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("forge %s\n", GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
