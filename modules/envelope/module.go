// Package envelope provides the "envelope" node: every trigger schedules an
// attack/decay/release ramp on a constant source.
package envelope

import (
	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Kind is the identifier this module registers.
const Kind node.Kind = "envelope"

// Shape is the ramp scheduled on every trigger, relative to the trigger time.
var Shape = []node.RampPoint{
	{At: 0, Value: 0},
	{At: 0.016, Value: 1},
	{At: 0.06, Value: 0.5},
	{At: 0.4, Value: 0},
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec describes the envelope's sockets and behavior.
func Spec() *node.Spec {
	return &node.Spec{
		Kind:  Kind,
		Title: "Envelope",
		Inputs: []node.SocketSpec{
			{Label: "Trigger", Type: node.TypeTrigger},
		},
		Outputs: []node.SocketSpec{
			{Label: "Signal", Type: node.TypeSignal},
		},
		Backend:       backend.KindConstant,
		BackendParams: map[string]float64{"offset": 0},
		AutoStart:     true,
		Reaction: func(int, cty.Value) []node.Effect {
			return []node.Effect{node.Ramp("offset", Shape...)}
		},
	}
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Spec())
}
