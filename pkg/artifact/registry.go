package artifact

import (
	"fmt"
	"sync"
)

// Registry stores artifact specs by name and remembers registration order,
// which is the order artifacts are generated in.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
	order []string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// DefaultRegistry returns the content descriptor, markup, and dialog
// descriptor specs, in that order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(ContentDescriptorSpec())
	r.MustRegister(MarkupSpec())
	r.MustRegister(DialogDescriptorSpec())
	return r
}

// Register adds a spec by its Name. Duplicate names return an error.
func (r *Registry) Register(spec Spec) error {
	if spec.Name == "" {
		return fmt.Errorf("artifact: spec name is required")
	}
	if spec.TemplateKey == "" {
		return fmt.Errorf("artifact: spec %q has no template key", spec.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[spec.Name]; exists {
		return fmt.Errorf("artifact: spec %q already registered", spec.Name)
	}
	r.specs[spec.Name] = spec
	r.order = append(r.order, spec.Name)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Get retrieves a spec by name.
func (r *Registry) Get(name string) (Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("artifact: spec %q not found", name)
	}
	return spec, nil
}

// Specs returns the registered specs in registration order.
func (r *Registry) Specs() []Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}

// List returns the registered names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}
