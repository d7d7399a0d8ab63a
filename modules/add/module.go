// Package add provides the "add" node: Result = A + B, computed on execute.
package add

import (
	"fmt"

	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Kind is the identifier this module registers.
const Kind node.Kind = "add"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Spec describes the adder's sockets and behavior.
func Spec() *node.Spec {
	return &node.Spec{
		Kind:  Kind,
		Title: "Add",
		Inputs: []node.SocketSpec{
			{Label: "A", Type: node.TypeNumber},
			{Label: "B", Type: node.TypeNumber},
		},
		Outputs: []node.SocketSpec{
			{Label: "Result", Type: node.TypeNumber},
		},
		Transform: transform,
	}
}

func transform(inputs []cty.Value) ([]node.Effect, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("add expects 2 inputs, got %d", len(inputs))
	}
	return []node.Effect{node.Transmit(0, inputs[0].Add(inputs[1]))}, nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Spec())
}
