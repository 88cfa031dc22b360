package adapter

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/tools"
)

// BackendOpenAI is the registry name of the OpenAI-compatible backend.
const BackendOpenAI = "openai"

// OpenAI converts tool descriptors into the OpenAI function-calling tool
// shape. This covers any OpenAI-compatible endpoint, including the LLM
// gateway forge talks to.
type OpenAI struct{}

// Compile-time check that OpenAI implements Adapter.
var _ Adapter = (*OpenAI)(nil)

// NewOpenAI creates the OpenAI backend adapter.
func NewOpenAI() *OpenAI {
	return &OpenAI{}
}

// Name returns the backend name.
func (o *OpenAI) Name() string {
	return BackendOpenAI
}

// ConvertTool transforms a descriptor into an openai.Tool.
func (o *OpenAI) ConvertTool(d tools.Descriptor) (any, error) {
	if d.Name == "" {
		return nil, forgeerrors.New("tool descriptor has no name")
	}

	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  schemaMap(d.InputSchema),
		},
	}, nil
}

// ConvertTools maps ConvertTool over the descriptors, preserving order.
func (o *OpenAI) ConvertTools(ds []tools.Descriptor) ([]any, error) {
	return convertAll(ds, o.ConvertTool)
}

// ExecuteTool dispatches a tool call through the registry.
func (o *OpenAI) ExecuteTool(ctx context.Context, name string, input map[string]any, reg *tools.Registry) (any, error) {
	return dispatch(ctx, name, input, reg)
}
