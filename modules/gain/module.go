// Package gain provides the "gain" node, a volume control whose gain is a
// parameter that can be set by value or driven by a signal.
package gain

import (
	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Kind is the identifier this module registers.
const Kind node.Kind = "gain"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec describes the gain's sockets and behavior.
func Spec() *node.Spec {
	return &node.Spec{
		Kind:  Kind,
		Title: "Gain",
		Inputs: []node.SocketSpec{
			{Label: "Signal", Type: node.TypeSignal},
			{Label: "Gain", Type: node.TypeParam, Param: "gain"},
		},
		Outputs: []node.SocketSpec{
			{Label: "Signal", Type: node.TypeSignal},
		},
		Backend:       backend.KindGain,
		BackendParams: map[string]float64{"gain": 0},
		Reaction: func(index int, value cty.Value) []node.Effect {
			if index != 1 {
				return nil
			}
			f, _ := node.Float(value)
			return []node.Effect{node.SetParam("gain", f)}
		},
	}
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Spec())
}
