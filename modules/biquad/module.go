// Package biquad provides the "biquad-filter" node.
package biquad

import (
	"math"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Kind is the identifier this module registers.
const Kind node.Kind = "biquad-filter"

// FilterTypes are the filter responses selected by the Type input, by index.
var FilterTypes = []string{
	"lowpass",
	"highpass",
	"bandpass",
	"lowshelf",
	"highshelf",
	"peaking",
	"notch",
	"allpass",
}

const (
	inSignal = iota
	inType
	inFrequency
	inQ
	inGain
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec describes the filter's sockets and behavior.
func Spec() *node.Spec {
	return &node.Spec{
		Kind:  Kind,
		Title: "Biquad Filter",
		Inputs: []node.SocketSpec{
			{Label: "Signal", Type: node.TypeSignal},
			{Label: "Type", Type: node.TypeNumber},
			{Label: "Frequency", Type: node.TypeNumber, Default: cty.NumberIntVal(350)},
			{Label: "Q", Type: node.TypeNumber, Default: cty.NumberIntVal(1)},
			{Label: "Gain", Type: node.TypeNumber},
		},
		Outputs: []node.SocketSpec{
			{Label: "Signal", Type: node.TypeSignal},
		},
		Backend:       backend.KindBiquadFilter,
		BackendParams: map[string]float64{"type": 0, "frequency": 350, "Q": 1, "gain": 0},
		Reaction:      react,
	}
}

func react(index int, value cty.Value) []node.Effect {
	f, _ := node.Float(value)
	switch index {
	case inType:
		return []node.Effect{node.SetParam("type", float64(FilterType(f)))}
	case inFrequency:
		return []node.Effect{node.SetParam("frequency", f)}
	case inQ:
		return []node.Effect{node.SetParam("Q", f)}
	case inGain:
		return []node.Effect{node.SetParam("gain", f)}
	}
	return nil
}

// FilterType clamps a raw Type value to an index into FilterTypes.
func FilterType(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	i := int(v)
	if i >= len(FilterTypes) {
		return len(FilterTypes) - 1
	}
	return i
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Spec())
}
