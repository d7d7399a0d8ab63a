package node

import (
	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/zclconf/go-cty/cty"
)

// Kind identifies a node type, e.g. "oscillator" or "add".
type Kind string

// SocketSpec declares one input or output of a kind.
type SocketSpec struct {
	Label string
	Type  ValueType
	// Default is the initial value of an input. cty.NilVal means the zero
	// value of Type.
	Default cty.Value
	// Param names the backend parameter behind a param-typed input.
	Param string
}

// Spec is the per-kind configuration record a node is built from.
type Spec struct {
	Kind        Kind
	Title       string
	Description string
	Inputs      []SocketSpec
	Outputs     []SocketSpec

	// Backend is the backend node to create, empty for pure data nodes.
	Backend       backend.Kind
	BackendParams map[string]float64
	// AutoStart starts the backend node as soon as it is created.
	AutoStart bool

	// Reaction runs inside Receive, before the node checks its readiness.
	Reaction func(index int, value cty.Value) []Effect
	// Transform runs inside Execute with the current input values.
	Transform func(inputs []cty.Value) ([]Effect, error)
}
