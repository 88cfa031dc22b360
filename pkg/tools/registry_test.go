package tools

import (
	"context"
	"testing"
)

func noopHandler(ctx context.Context, input map[string]any) (any, error) {
	return nil, nil
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Descriptor{Name: "echo", Description: "echoes input", Handler: noopHandler})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, ok := r.Get("echo"); !ok {
		t.Error("registered tool not found")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Descriptor{Name: "", Handler: noopHandler}); err == nil {
		t.Error("expected error for empty name")
	}
	if err := r.Register(Descriptor{Name: "no_handler"}); err == nil {
		t.Error("expected error for nil handler")
	}
}

func TestRegistry_RejectsDuplicate(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Descriptor{Name: "echo", Handler: noopHandler}); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := r.Register(Descriptor{Name: "echo", Handler: noopHandler}); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestRegistry_OrderPreserved(t *testing.T) {
	r := NewRegistry()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if err := r.Register(Descriptor{Name: name, Handler: noopHandler}); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	got := r.Names()
	for i, name := range names {
		if got[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], name)
		}
	}

	all := r.All()
	for i, name := range names {
		if all[i].Name != name {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Tool: "missing_tool"}
	if err.Error() != "tool not found: missing_tool" {
		t.Errorf("Error() = %q", err.Error())
	}
}
