package tools

import (
	"sync"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

// Registry is a thread-safe collection of tool descriptors. Registration
// order is preserved so converted tool lists are deterministic.
type Registry struct {
	mu    sync.RWMutex
	byName map[string]Descriptor
	order  []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Descriptor)}
}

// Register adds a tool to the registry. Tools without a name or handler
// are rejected, as are duplicate names.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return forgeerrors.New("tool name cannot be empty")
	}
	if d.Handler == nil {
		return forgeerrors.Newf("tool %q has no handler", d.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[d.Name]; exists {
		return forgeerrors.Newf("tool %q already registered", d.Name)
	}

	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Get returns the descriptor registered under name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byName[name]
	return d, ok
}

// All returns every registered descriptor in registration order.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
