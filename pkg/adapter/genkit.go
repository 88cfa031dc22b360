package adapter

import (
	"context"

	"github.com/firebase/genkit/go/ai"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/tools"
)

// BackendGenkit is the registry name of the Genkit backend.
const BackendGenkit = "genkit"

// Genkit converts tool descriptors into Genkit tool definitions for use
// with graph-orchestrated flows.
type Genkit struct{}

// Compile-time check that Genkit implements Adapter.
var _ Adapter = (*Genkit)(nil)

// NewGenkit creates the Genkit backend adapter.
func NewGenkit() *Genkit {
	return &Genkit{}
}

// Name returns the backend name.
func (g *Genkit) Name() string {
	return BackendGenkit
}

// ConvertTool transforms a descriptor into an *ai.ToolDefinition.
func (g *Genkit) ConvertTool(d tools.Descriptor) (any, error) {
	if d.Name == "" {
		return nil, forgeerrors.New("tool descriptor has no name")
	}

	return &ai.ToolDefinition{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: schemaMap(d.InputSchema),
	}, nil
}

// ConvertTools maps ConvertTool over the descriptors, preserving order.
func (g *Genkit) ConvertTools(ds []tools.Descriptor) ([]any, error) {
	return convertAll(ds, g.ConvertTool)
}

// ExecuteTool dispatches a tool call through the registry.
func (g *Genkit) ExecuteTool(ctx context.Context, name string, input map[string]any, reg *tools.Registry) (any, error) {
	return dispatch(ctx, name, input, reg)
}
