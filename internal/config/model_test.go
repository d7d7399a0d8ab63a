package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestPatch_Merge(t *testing.T) {
	p := &Patch{Nodes: []*NodeDecl{{Kind: "oscillator", Name: "osc", Source: "a.hcl:1"}}}
	other := &Patch{
		Nodes: []*NodeDecl{{Kind: "destination", Name: "out", Source: "b.hcl:1"}, {Kind: "number"}},
		Wires: []*WireDecl{{From: "osc.signal", To: "out.signal"}},
	}

	require.NoError(t, p.Merge(other))
	assert.Len(t, p.Nodes, 3)
	assert.Len(t, p.Wires, 1)
	assert.NoError(t, p.Merge(nil))

	err := p.Merge(&Patch{Nodes: []*NodeDecl{{Kind: "gain", Name: "osc", Source: "c.hcl:4"}}})
	assert.ErrorContains(t, err, `node "osc" declared twice (a.hcl:1 and c.hcl:4)`)
}

func TestNodeDecl_InputNames(t *testing.T) {
	n := &NodeDecl{Inputs: map[string]cty.Value{"freq": cty.NumberIntVal(1), "enabled": cty.True}}
	assert.Equal(t, []string{"enabled", "freq"}, n.InputNames())
}
