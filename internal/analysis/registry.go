package analysis

import (
	"fmt"
	"sync"
)

// Registry manages registered analyzers by task name.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	analyzers map[string]Analyzer
}

func NewRegistry() *Registry {
	return &Registry{
		analyzers: make(map[string]Analyzer),
	}
}

func (r *Registry) Register(a Analyzer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.analyzers[a.Name()]; !ok {
		r.order = append(r.order, a.Name())
	}
	r.analyzers[a.Name()] = a
}

func (r *Registry) Get(name string) (Analyzer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyzers[name]
	if !ok {
		return nil, fmt.Errorf("analyzer %q not found", name)
	}
	return a, nil
}

// List returns registered task names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// All returns the registered analyzers in registration order.
func (r *Registry) All() []Analyzer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Analyzer, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.analyzers[name])
	}
	return out
}
