package adapter

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/tools"
)

// BackendAnthropic is the registry name of the Anthropic backend.
const BackendAnthropic = "anthropic"

// Anthropic converts tool descriptors into the Anthropic Messages API
// tool shape.
type Anthropic struct{}

// Compile-time check that Anthropic implements Adapter.
var _ Adapter = (*Anthropic)(nil)

// NewAnthropic creates the Anthropic backend adapter.
func NewAnthropic() *Anthropic {
	return &Anthropic{}
}

// Name returns the backend name.
func (a *Anthropic) Name() string {
	return BackendAnthropic
}

// ConvertTool transforms a descriptor into an anthropic.ToolUnionParam.
func (a *Anthropic) ConvertTool(d tools.Descriptor) (any, error) {
	if d.Name == "" {
		return nil, forgeerrors.New("tool descriptor has no name")
	}

	schema := schemaMap(d.InputSchema)

	inputSchema := anthropic.ToolInputSchemaParam{
		Properties: schema["properties"],
	}
	if required, ok := schema["required"].([]string); ok {
		inputSchema.Required = required
	}

	tool := &anthropic.ToolParam{
		Name:        d.Name,
		InputSchema: inputSchema,
	}
	if d.Description != "" {
		tool.Description = anthropic.String(d.Description)
	}

	return anthropic.ToolUnionParam{OfTool: tool}, nil
}

// ConvertTools maps ConvertTool over the descriptors, preserving order.
func (a *Anthropic) ConvertTools(ds []tools.Descriptor) ([]any, error) {
	return convertAll(ds, a.ConvertTool)
}

// ExecuteTool dispatches a tool call through the registry.
func (a *Anthropic) ExecuteTool(ctx context.Context, name string, input map[string]any, reg *tools.Registry) (any, error) {
	return dispatch(ctx, name, input, reg)
}
