package integration_tests

import (
	"testing"
	"time"

	"github.com/specialistvlad/nodesynth/internal/control"
	"github.com/specialistvlad/nodesynth/internal/graph"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const sumPatch = `
nodes:
  - {kind: number, name: x, inputs: {input: 1}}
  - {kind: number, name: y, inputs: {input: 2}}
  - {kind: add, name: sum}
wires:
  - {from: x.output, to: sum.a}
  - {from: y.output, to: sum.b}
`

func resultOf(t *testing.T, snap graph.Snapshot, name string) cty.Value {
	t.Helper()
	n, ok := findNode(snap, name)
	require.True(t, ok, "node %s missing", name)
	out, ok := findSocket(n.Outputs, "result")
	require.True(t, ok)
	if out.Value == nil {
		return cty.NilVal
	}
	return out.Value.Value
}

// Test for: values set while running propagate on the following update.
func TestControlSurface_SetPropagates(t *testing.T) {
	s := startSession(t, map[string]string{"sum.yaml": sumPatch})

	require.NoError(t, s.submit(control.Command{Op: control.OpSet, Address: "x.input", Value: node.Number(10)}).Err)

	assert.Eventually(t, func() bool {
		return resultOf(t, s.snapshot(), "sum").RawEquals(cty.NumberIntVal(12))
	}, 2*time.Second, 10*time.Millisecond)
}

// Test for: nodes and wires added while running join the graph, and rewiring
// an input replaces its previous wire.
func TestControlSurface_LiveEdits(t *testing.T) {
	s := startSession(t, map[string]string{"sum.yaml": sumPatch})

	res := s.submit(control.Command{Op: control.OpAddNode, Kind: "number", Name: "z"})
	require.NoError(t, res.Err)
	assert.Equal(t, "z", res.Value)

	require.NoError(t, s.submit(control.Command{Op: control.OpConnect, From: "z.output", To: "sum.b"}).Err)
	require.NoError(t, s.submit(control.Command{Op: control.OpSet, Address: "z.input", Value: node.Number(100)}).Err)

	assert.Eventually(t, func() bool {
		return resultOf(t, s.snapshot(), "sum").RawEquals(cty.NumberIntVal(101))
	}, 2*time.Second, 10*time.Millisecond)

	snap := s.snapshot()
	assert.Len(t, snap.Wires, 2)
	assert.Contains(t, snap.Wires, graph.WireState{From: "z.output", To: "sum.b"})
	assert.NotContains(t, snap.Wires, graph.WireState{From: "y.output", To: "sum.b"})
}

// Test for: removing a node drops its wires and leaves its peers waiting.
func TestControlSurface_RemoveNode(t *testing.T) {
	s := startSession(t, map[string]string{"sum.yaml": sumPatch})

	require.NoError(t, s.submit(control.Command{Op: control.OpRemoveNode, Name: "y"}).Err)

	snap := s.snapshot()
	_, ok := findNode(snap, "y")
	assert.False(t, ok)
	assert.Equal(t, []graph.WireState{{From: "x.output", To: "sum.a"}}, snap.Wires)

	res := s.submit(control.Command{Op: control.OpSet, Address: "y.input", Value: node.Number(1)})
	assert.ErrorIs(t, res.Err, graph.ErrNodeNotFound)
}

// Test for: a refused request leaves the graph untouched.
func TestControlSurface_RefusedRequests(t *testing.T) {
	s := startSession(t, map[string]string{"sum.yaml": sumPatch})

	res := s.submit(control.Command{Op: control.OpConnect, From: "sum.result", To: "x.input"})
	assert.ErrorIs(t, res.Err, node.ErrCycleDetected)

	res = s.submit(control.Command{Op: control.OpTrigger, Address: "x.input"})
	assert.ErrorIs(t, res.Err, node.ErrInvalidValue)

	res = s.submit(control.Command{Op: control.OpSet, Address: "x.input", Value: cty.StringVal("loud")})
	assert.ErrorIs(t, res.Err, node.ErrInvalidValue)

	snap := s.snapshot()
	assert.Len(t, snap.Wires, 2)
	x, _ := findNode(snap, "x")
	in, _ := findSocket(x.Inputs, "input")
	require.NotNil(t, in.Value)
	assert.True(t, in.Value.Value.RawEquals(cty.NumberIntVal(1)))
}
