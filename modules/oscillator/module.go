// Package oscillator provides the "oscillator" node: a tone source that is
// switched on and off by a bool input and tuned by a frequency parameter.
package oscillator

import (
	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Kind is the identifier this module registers.
const Kind node.Kind = "oscillator"

const (
	inEnabled = iota
	inFreq
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec describes the oscillator's sockets and behavior.
func Spec() *node.Spec {
	return &node.Spec{
		Kind:  Kind,
		Title: "Osc",
		Inputs: []node.SocketSpec{
			{Label: "Enabled", Type: node.TypeBool},
			{Label: "Freq", Type: node.TypeParam, Param: "frequency"},
		},
		Outputs: []node.SocketSpec{
			{Label: "Signal", Type: node.TypeSignal},
		},
		Backend:       backend.KindOscillator,
		BackendParams: map[string]float64{"frequency": 0},
		Reaction:      react,
	}
}

func react(index int, value cty.Value) []node.Effect {
	switch index {
	case inEnabled:
		if node.Truthy(value) {
			return []node.Effect{node.Start()}
		}
		return []node.Effect{node.Stop()}
	case inFreq:
		f, _ := node.Float(value)
		return []node.Effect{node.SetParam("frequency", f)}
	}
	return nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Spec())
}
