package adapter

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/tools"
)

func testRegistry(t *testing.T) *tools.Registry {
	t.Helper()

	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(tools.Descriptor{
		Name:        "echo",
		Description: "echoes its input back",
		InputSchema: tools.ObjectSchema(map[string]tools.Property{
			"message": {Type: "string", Description: "text to echo"},
		}, "message"),
		Handler: func(ctx context.Context, input map[string]any) (any, error) {
			return input["message"], nil
		},
	}))
	require.NoError(t, reg.Register(tools.Descriptor{
		Name:        "crash",
		Description: "always fails",
		InputSchema: tools.ObjectSchema(nil),
		Handler: func(ctx context.Context, input map[string]any) (any, error) {
			return nil, errors.New("handler exploded")
		},
	}))
	return reg
}

// Every backend shares dispatch semantics, so exercise them all.
func allBackends() []Adapter {
	return []Adapter{NewAnthropic(), NewOpenAI(), NewGenkit()}
}

func TestExecuteTool_Success(t *testing.T) {
	reg := testRegistry(t)

	for _, backend := range allBackends() {
		t.Run(backend.Name(), func(t *testing.T) {
			result, err := backend.ExecuteTool(t.Context(), "echo", map[string]any{"message": "hi"}, reg)
			require.NoError(t, err)
			assert.Equal(t, "hi", result)
		})
	}
}

func TestExecuteTool_NotFound(t *testing.T) {
	reg := tools.NewRegistry()

	// A handler that records invocation; it must never run.
	invoked := false
	require.NoError(t, reg.Register(tools.Descriptor{
		Name: "other",
		Handler: func(ctx context.Context, input map[string]any) (any, error) {
			invoked = true
			return nil, nil
		},
	}))

	for _, backend := range allBackends() {
		t.Run(backend.Name(), func(t *testing.T) {
			_, err := backend.ExecuteTool(t.Context(), "missing_tool", map[string]any{}, reg)
			require.Error(t, err)

			var notFound *tools.NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, "missing_tool", notFound.Tool)
			assert.False(t, invoked, "no handler should run on a lookup miss")
		})
	}
}

func TestExecuteTool_HandlerErrorPropagates(t *testing.T) {
	reg := testRegistry(t)

	for _, backend := range allBackends() {
		t.Run(backend.Name(), func(t *testing.T) {
			_, err := backend.ExecuteTool(t.Context(), "crash", map[string]any{}, reg)
			require.Error(t, err)
			// The handler's error surfaces unchanged, not wrapped.
			assert.EqualError(t, err, "handler exploded")

			var notFound *tools.NotFoundError
			assert.False(t, errors.As(err, &notFound))
		})
	}
}

func TestConvertTools_OrderAndCount(t *testing.T) {
	ds := []tools.Descriptor{
		{Name: "alpha", Handler: func(ctx context.Context, in map[string]any) (any, error) { return nil, nil }},
		{Name: "beta", Handler: func(ctx context.Context, in map[string]any) (any, error) { return nil, nil }},
		{Name: "gamma", Handler: func(ctx context.Context, in map[string]any) (any, error) { return nil, nil }},
	}

	for _, backend := range allBackends() {
		t.Run(backend.Name(), func(t *testing.T) {
			converted, err := backend.ConvertTools(ds)
			require.NoError(t, err)
			require.Len(t, converted, len(ds))

			// ConvertTools must be equivalent to mapping ConvertTool.
			for i, d := range ds {
				single, err := backend.ConvertTool(d)
				require.NoError(t, err)
				assert.Equal(t, single, converted[i])
			}
		})
	}
}

func TestConvertTool_RejectsNameless(t *testing.T) {
	for _, backend := range allBackends() {
		t.Run(backend.Name(), func(t *testing.T) {
			_, err := backend.ConvertTool(tools.Descriptor{})
			assert.Error(t, err)
		})
	}
}

func TestRegistry_RegisterChecksConformance(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(NewAnthropic()))
	require.NoError(t, reg.Register(NewOpenAI()))
	require.NoError(t, reg.Register(NewGenkit()))

	got, ok := reg.Get(BackendAnthropic)
	require.True(t, ok)
	assert.Equal(t, BackendAnthropic, got.Name())

	// A structurally deficient candidate is rejected before wiring.
	err := reg.Register(missingExecute{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ExecuteTool")

	// Duplicate names are rejected.
	assert.Error(t, reg.Register(NewAnthropic()))

	assert.Len(t, reg.Names(), 3)
}
