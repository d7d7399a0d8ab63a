package graph

import (
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Snapshot is a serializable view of the graph.
type Snapshot struct {
	Nodes []NodeState `json:"nodes"`
	Wires []WireState `json:"wires"`
	// Queued is the number of submissions waiting for the next update.
	Queued int `json:"queued"`
}

// NodeState describes one node.
type NodeState struct {
	Name    string        `json:"name"`
	Kind    string        `json:"kind"`
	Status  string        `json:"status"`
	Backend string        `json:"backend,omitempty"`
	Inputs  []SocketState `json:"inputs"`
	Outputs []SocketState `json:"outputs"`
}

// SocketState describes one input or output.
type SocketState struct {
	Name   string                   `json:"name"`
	Type   string                   `json:"type"`
	Status string                   `json:"status"`
	Value  *ctyjson.SimpleJSONValue `json:"value,omitempty"`
}

// WireState describes one wire by its socket addresses.
type WireState struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Signal bool   `json:"signal,omitempty"`
}

// Snapshot captures the current nodes, socket states and wires.
func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{Queued: g.engine.Queued()}
	for _, n := range g.Nodes() {
		state := NodeState{
			Name:   n.Name(),
			Kind:   string(n.Kind()),
			Status: n.Status().String(),
		}
		if h := n.Backend(); h != nil {
			state.Backend = h.Address()
		}
		for _, in := range n.Inputs() {
			state.Inputs = append(state.Inputs, socketState(in.Name(), in.Type(), in.Status(), in.Value()))
		}
		for _, out := range n.Outputs() {
			state.Outputs = append(state.Outputs, socketState(out.Name(), out.Type(), out.Status(), out.Value()))
		}
		snap.Nodes = append(snap.Nodes, state)
	}
	for _, w := range g.Wires() {
		snap.Wires = append(snap.Wires, WireState{
			From:   w.Output().Address(),
			To:     w.Input().Address(),
			Signal: w.IsSignal(),
		})
	}
	return snap
}

func socketState(name string, typ node.ValueType, status node.Status, v cty.Value) SocketState {
	s := SocketState{Name: name, Type: typ.String(), Status: status.String()}
	if typ.IsData() && v != cty.NilVal {
		s.Value = &ctyjson.SimpleJSONValue{Value: v}
	}
	return s
}
