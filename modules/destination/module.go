// Package destination provides the "destination" node, the audio output.
package destination

import (
	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
)

// Kind is the identifier this module registers.
const Kind node.Kind = "destination"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec describes the destination's single signal input.
func Spec() *node.Spec {
	return &node.Spec{
		Kind:  Kind,
		Title: "Dest",
		Inputs: []node.SocketSpec{
			{Label: "Signal", Type: node.TypeSignal},
		},
		Backend: backend.KindDestination,
	}
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Spec())
}
