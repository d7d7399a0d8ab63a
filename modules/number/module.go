// Package number provides the "number" node. It passes whatever it receives
// straight through to its output, from inside the receive, so its fan-out is
// updated without waiting for the next engine update.
package number

import (
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Kind is the identifier this module registers.
const Kind node.Kind = "number"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec describes the passthrough's sockets and behavior.
func Spec() *node.Spec {
	return &node.Spec{
		Kind:  Kind,
		Title: "Number",
		Inputs: []node.SocketSpec{
			{Label: "Input", Type: node.TypeNumber},
		},
		Outputs: []node.SocketSpec{
			{Label: "Output", Type: node.TypeNumber},
		},
		Reaction: func(_ int, value cty.Value) []node.Effect {
			return []node.Effect{node.Transmit(0, value)}
		},
	}
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Spec())
}
