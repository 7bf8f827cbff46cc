package modules

import (
	"fmt"

	"github.com/go-chi/chi/v5"
)

// Registry keeps modules in registration order.
type Registry struct {
	modules []Module
	names   map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds m. Names must be unique.
func (r *Registry) Register(m Module) error {
	if _, dup := r.names[m.Name()]; dup {
		return fmt.Errorf("module %q already registered", m.Name())
	}
	r.names[m.Name()] = struct{}{}
	r.modules = append(r.modules, m)
	return nil
}

func (r *Registry) Modules() []Module {
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Mount lets every module add its routes to router.
func (r *Registry) Mount(router chi.Router) {
	for _, m := range r.modules {
		m.Routes(router)
	}
}
