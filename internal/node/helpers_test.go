package node

import (
	"testing"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// submissions records every node reported ready.
type submissions struct {
	nodes []*Node
}

func (s *submissions) SubmitReadyNode(n *Node) {
	s.nodes = append(s.nodes, n)
}

func (s *submissions) drain() []*Node {
	out := s.nodes
	s.nodes = nil
	return out
}

func adderSpec() *Spec {
	return &Spec{
		Kind: "add",
		Inputs: []SocketSpec{
			{Label: "A", Type: TypeNumber},
			{Label: "B", Type: TypeNumber},
		},
		Outputs: []SocketSpec{{Label: "Result", Type: TypeNumber}},
		Transform: func(in []cty.Value) ([]Effect, error) {
			return []Effect{Transmit(0, in[0].Add(in[1]))}, nil
		},
	}
}

func passthroughSpec() *Spec {
	return &Spec{
		Kind:    "number",
		Inputs:  []SocketSpec{{Label: "Input", Type: TypeNumber}},
		Outputs: []SocketSpec{{Label: "Output", Type: TypeNumber}},
		Reaction: func(_ int, v cty.Value) []Effect {
			return []Effect{Transmit(0, v)}
		},
	}
}

func gainSpec() *Spec {
	return &Spec{
		Kind: "gain",
		Inputs: []SocketSpec{
			{Label: "Signal", Type: TypeSignal},
			{Label: "Gain", Type: TypeParam, Param: "gain"},
		},
		Outputs:       []SocketSpec{{Label: "Signal", Type: TypeSignal}},
		Backend:       backend.KindGain,
		BackendParams: map[string]float64{"gain": 0},
		Reaction: func(index int, v cty.Value) []Effect {
			if index != 1 {
				return nil
			}
			f, _ := Float(v)
			return []Effect{SetParam("gain", f)}
		},
	}
}

func mustNode(t *testing.T, name string, spec *Spec, deps Deps) *Node {
	t.Helper()
	n, err := New(name, spec, deps)
	require.NoError(t, err)
	return n
}

func wire(t *testing.T, out *Output, in *Input) *Wire {
	t.Helper()
	require.True(t, CanConnect(out.Type(), in.Type()))
	w := NewWire(out, in)
	Attach(w)
	return w
}
