package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeworks/forge/pkg/config"
)

var (
	configInitPath  string
	configInitForce bool
)

// configCmd groups configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage forge configuration",
	Long: `Manage forge configuration.

Subcommands:
  init: Write a starter config file`,
}

// configInitCmd writes a starter config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config file with documented defaults.

The file is written to ~/.config/forge/config.toml unless --path is
given. Secrets are never written; set tokens via environment variables
or add them to the file yourself.

Examples:
  forge config init
  forge config init --path ./config.toml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Destination path (default ~/.config/forge/config.toml)")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")
}

func runConfigInit() error {
	path := configInitPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if err := config.WriteDefault(path, configInitForce); err != nil {
		return err
	}

	fmt.Printf("Wrote config to %s\n", path)
	return nil
}
