package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/forgeworks/forge/pkg/bootstrap"
	"github.com/forgeworks/forge/pkg/config"
)

var cfgFile string
var verbose bool
var appConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Forge - AI-assisted development workflow toolkit",
	Long: `Forge is a CLI toolkit for AI-assisted development workflows. It turns
linter and test-runner output into tables and AI-readable text blocks,
manages GitHub issue and PR metadata, validates Jira-style references,
and exposes a uniform tool-calling layer over multiple AI backends.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pre-parse global flags so configuration is available before cobra
	// has parsed anything.
	cfgFile, verbose = bootstrap.PreParseGlobalFlags(os.Args)

	if err := initConfig(); err != nil {
		cobra.CheckErr(err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		_ = initConfig()
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/forge/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	appConfig, verbose, err = bootstrap.InitConfig(cfgFile, verbose)
	return err
}

// loadConfig always returns the latest configuration derived from viper.
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// resetConfig clears the cached configuration.
// This is primarily used in tests to ensure each test starts with a fresh config.
func resetConfig() {
	appConfig = nil
	bootstrap.Reset()
	viper.Reset()
}
