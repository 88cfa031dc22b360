package adapter

import (
	"sync"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

// Registry holds the wired backend adapters. Registration performs the
// conformance check, so every adapter retrieved from the registry is known
// to satisfy the capability contract.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Adapter)}
}

// Register verifies candidate's structural conformance and adds it under
// its name. Non-conformant candidates and duplicate names are rejected.
func (r *Registry) Register(candidate any) error {
	if err := VerifyConformance(candidate); err != nil {
		return forgeerrors.Wrap(err, "adapter rejected at registration")
	}

	a, ok := candidate.(Adapter)
	if !ok {
		// Conformant arity but incompatible signatures; the structural
		// check is a diagnostic aid, the interface is the gate.
		return forgeerrors.Newf("adapter %T does not implement the Adapter interface", candidate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[a.Name()]; exists {
		return forgeerrors.Newf("adapter %q already registered", a.Name())
	}

	r.byName[a.Name()] = a
	return nil
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byName[name]
	return a, ok
}

// Names returns the registered adapter names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	return out
}
