// Package tools holds the provider-agnostic tool registry. A Descriptor
// describes one callable capability exposed to an AI agent; backend
// adapters translate descriptors into provider-native shapes.
package tools

import "context"

// Handler executes a tool call. Input is the already-decoded argument map.
type Handler func(ctx context.Context, input map[string]any) (any, error)

// Property describes a single input parameter in a tool's schema.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Schema is the JSON-schema-shaped input contract of a tool.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// ObjectSchema returns an object schema over the given properties.
func ObjectSchema(props map[string]Property, required ...string) Schema {
	return Schema{Type: "object", Properties: props, Required: required}
}

// Descriptor is the provider-agnostic representation of a tool.
type Descriptor struct {
	Name        string
	Description string
	InputSchema Schema
	Handler     Handler
}

// NotFoundError is returned when a tool name has no registry entry.
// It lets callers distinguish a bad request from a handler crash.
type NotFoundError struct {
	Tool string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "tool not found: " + e.Tool
}
