package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/nodesynth/internal/node"
)

// ErrUnknownKind is returned when a node of an unregistered kind is requested.
var ErrUnknownKind = errors.New("unknown node kind")

// Module is the interface that all node kind modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered node kinds for a single application instance.
type Registry struct {
	specs map[node.Kind]*node.Spec
}

// New creates an empty registry and registers the given modules into it.
func New(modules ...Module) *Registry {
	r := &Registry{specs: make(map[node.Kind]*node.Spec)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds a kind. Registering the same kind twice is a programmer error.
func (r *Registry) Register(spec *node.Spec) {
	if spec == nil || spec.Kind == "" {
		panic("registry: spec without kind")
	}
	if _, exists := r.specs[spec.Kind]; exists {
		panic(fmt.Sprintf("node kind '%s' already registered", spec.Kind))
	}
	slog.Debug("Registering node kind.", "kind", spec.Kind)
	r.specs[spec.Kind] = spec
}

// Spec returns the configuration record of a kind.
func (r *Registry) Spec(kind node.Kind) (*node.Spec, bool) {
	spec, ok := r.specs[kind]
	return spec, ok
}

// Kinds lists the registered kinds in alphabetical order.
func (r *Registry) Kinds() []node.Kind {
	kinds := make([]node.Kind, 0, len(r.specs))
	for k := range r.specs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// NewNode constructs a node of the given kind.
func (r *Registry) NewNode(kind node.Kind, name string, deps node.Deps) (*node.Node, error) {
	spec, ok := r.specs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return node.New(name, spec, deps)
}
