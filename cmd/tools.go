package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/forgeworks/forge/pkg/adapter"
	"github.com/forgeworks/forge/pkg/tools"
)

// toolsCmd lists the AI backend adapters built into the binary.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List AI backend adapters and their native tool shapes",
	Long: `List the AI backend adapters compiled into forge.

Every listed backend passed the conformance check at registration, so
tool descriptors can be converted to its native shape and dispatched
through the shared tool registry.

Examples:
  forge tools`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTools()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools() error {
	reg, err := buildAdapterRegistry()
	if err != nil {
		return errors.Wrap(err, "failed to wire backend adapters")
	}

	rows, err := adapterRows(reg)
	if err != nil {
		return err
	}

	renderTable(os.Stdout, []string{"Backend", "Native Tool Type"}, rows)
	fmt.Printf("\nTotal: %d backend(s)\n", len(rows))
	return nil
}

// buildAdapterRegistry wires the built-in backends. Registration runs the
// conformance check, so a broken backend surfaces here instead of at call
// time.
func buildAdapterRegistry() (*adapter.Registry, error) {
	reg := adapter.NewRegistry()
	for _, backend := range []adapter.Adapter{
		adapter.NewAnthropic(),
		adapter.NewOpenAI(),
		adapter.NewGenkit(),
	} {
		if err := reg.Register(backend); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// adapterRows builds one table row per backend, sorted by name. The native
// type column comes from converting a minimal sample descriptor.
func adapterRows(reg *adapter.Registry) ([][]string, error) {
	sample := tools.Descriptor{
		Name:        "echo",
		Description: "Echo the input back",
		InputSchema: tools.ObjectSchema(map[string]tools.Property{
			"message": {Type: "string", Description: "Text to echo"},
		}, "message"),
	}

	names := reg.Names()
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		backend, _ := reg.Get(name)
		converted, err := backend.ConvertTool(sample)
		if err != nil {
			return nil, errors.Wrapf(err, "backend %s failed to convert tool", name)
		}
		rows = append(rows, []string{name, fmt.Sprintf("%T", converted)})
	}
	return rows, nil
}
