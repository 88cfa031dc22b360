package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/gateway"
)

// modelsCmd lists the models exposed by the configured LLM gateway.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the LLM gateway",
	Long: `List the models exposed by the configured LLM gateway.

The gateway must expose an OpenAI-compatible /v1/models endpoint.
Set gateway.base_url in the config and the API key via the
GATEWAY_API_KEY environment variable (or gateway.api_key).

Examples:
  forge models
  GATEWAY_API_KEY=sk-... forge models`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	client := gateway.NewClient(cfg.Gateway.BaseURL, resolveGatewayKey(cfg.Gateway.APIKey), newLogger())

	models, err := client.ListModels(ctx)
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	if len(models) == 0 {
		fmt.Println("No models available.")
		return nil
	}

	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{m.ID, m.OwnedBy})
	}
	renderTable(os.Stdout, []string{"Model", "Owner"}, rows)
	fmt.Printf("\nTotal: %d model(s)\n", len(models))
	return nil
}

// resolveGatewayKey resolves the gateway API key: provider-native env var
// first, then the prefixed form, then the config file value.
func resolveGatewayKey(configValue string) string {
	if key := os.Getenv("GATEWAY_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("FORGE_GATEWAY_API_KEY"); key != "" {
		return key
	}
	return configValue
}
