package schema

import (
	"slices"
	"sync"
)

// Registry holds field tables by type name and canonical URL. Registering a
// type under an existing name replaces it, which is how profiles overlay
// the static tables. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Type
	byURL  map[string]*Type
}

// NewRegistry creates a registry holding types.
func NewRegistry(types ...*Type) *Registry {
	r := &Registry{
		byName: make(map[string]*Type, len(types)),
		byURL:  make(map[string]*Type),
	}
	for _, t := range types {
		r.Register(t)
	}
	return r
}

// Register adds or replaces t.
func (r *Registry) Register(t *Type) {
	if t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[t.Name] = t
	if t.URL != "" {
		r.byURL[t.URL] = t
	}
}

// Get returns the type called name.
func (r *Registry) Get(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// GetByURL returns the type with canonical url.
func (r *Registry) GetByURL(url string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byURL[url]
	return t, ok
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Clone returns an independent registry with the same types.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := NewRegistry()
	for _, t := range r.byName {
		c.byName[t.Name] = t
	}
	for u, t := range r.byURL {
		c.byURL[u] = t
	}
	return c
}

// Merge registers every type of other into r, replacing same-named types.
func (r *Registry) Merge(other *Registry) {
	if other == nil || other == r {
		return
	}
	other.mu.RLock()
	types := make([]*Type, 0, len(other.byName))
	for _, t := range other.byName {
		types = append(types, t)
	}
	other.mu.RUnlock()
	for _, t := range types {
		r.Register(t)
	}
}
