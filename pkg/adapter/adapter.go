// Package adapter provides a uniform tool-calling surface over
// heterogeneous AI provider SDKs. Each backend converts provider-agnostic
// tool descriptors into its native shape and dispatches tool executions
// through the shared registry. Conformance is checked when a backend is
// registered, so a misconfigured backend fails at wiring time instead of
// deep inside a request path.
package adapter

import (
	"context"

	"github.com/forgeworks/forge/pkg/tools"
)

// Adapter is the capability contract every backend must satisfy.
type Adapter interface {
	// Name returns the backend name, e.g. "anthropic".
	Name() string

	// ConvertTool transforms one descriptor into the backend-native tool
	// shape. Pure: no side effects, and it must not fail for any
	// well-formed descriptor.
	ConvertTool(d tools.Descriptor) (any, error)

	// ConvertTools is equivalent to mapping ConvertTool over the slice,
	// preserving order and count.
	ConvertTools(ds []tools.Descriptor) ([]any, error)

	// ExecuteTool looks up name in the registry and invokes its handler
	// with input. A registry miss yields *tools.NotFoundError; handler
	// errors propagate unchanged.
	ExecuteTool(ctx context.Context, name string, input map[string]any, reg *tools.Registry) (any, error)
}

// dispatch is the shared ExecuteTool implementation. Backends differ only
// in how they convert tools, not in how they run them.
func dispatch(ctx context.Context, name string, input map[string]any, reg *tools.Registry) (any, error) {
	d, ok := reg.Get(name)
	if !ok {
		return nil, &tools.NotFoundError{Tool: name}
	}
	return d.Handler(ctx, input)
}

// convertAll maps convert over the descriptors, preserving order.
func convertAll(ds []tools.Descriptor, convert func(tools.Descriptor) (any, error)) ([]any, error) {
	out := make([]any, 0, len(ds))
	for _, d := range ds {
		converted, err := convert(d)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// schemaMap renders a tool schema as the generic JSON-schema map shape
// shared by the OpenAI and Genkit SDKs.
func schemaMap(s tools.Schema) map[string]any {
	schemaType := s.Type
	if schemaType == "" {
		schemaType = "object"
	}

	props := make(map[string]any, len(s.Properties))
	for name, p := range s.Properties {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		props[name] = prop
	}

	out := map[string]any{
		"type":       schemaType,
		"properties": props,
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}
