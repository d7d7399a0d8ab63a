package integration_tests

import (
	"errors"
	"testing"

	"github.com/specialistvlad/nodesynth/internal/graph"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: a patch that feeds a node's output back into its own input is
// refused before anything runs.
func TestErrorHandling_CycleIsRejected(t *testing.T) {
	_, _, err := runPatch(t, map[string]string{
		"loop.hcl": `
node "add" "a" {}
node "add" "b" {}

wire {
  from = "a.result"
  to   = "b.a"
}
wire {
  from = "b.result"
  to   = "a.a"
}
`,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, node.ErrCycleDetected), "expected a cycle error, got: %v", err)
	assert.Contains(t, err.Error(), "loop.hcl:")
}

// Test for: a signal output cannot feed a data input.
func TestErrorHandling_TypeMismatchIsRejected(t *testing.T) {
	_, _, err := runPatch(t, map[string]string{
		"p.hcl": `
node "oscillator" "osc" {}
node "add" "sum" {}

wire {
  from = "osc.signal"
  to   = "sum.a"
}
`,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, node.ErrInvalidConnection), "got: %v", err)
}

// Test for: every bad input of a patch is reported, not just the first.
func TestErrorHandling_AllBadInputsReported(t *testing.T) {
	_, _, err := runPatch(t, map[string]string{
		"p.hcl": `
node "number" "x" {
  inputs {
    input = "not a number"
  }
}
node "oscillator" "osc" {
  inputs {
    volume = 3
  }
}
`,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, node.ErrInvalidValue), "got: %v", err)
	assert.True(t, errors.Is(err, graph.ErrSocketNotFound), "got: %v", err)
}

// Test for: unknown node kinds and unparsable files fail the run.
func TestErrorHandling_InvalidPatchIsRejected(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := runPatch(t, map[string]string{"p.hcl": `node "theremin" "t" {}`})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "theremin")
	})

	t.Run("invalid hcl", func(t *testing.T) {
		_, _, err := runPatch(t, map[string]string{"p.hcl": `node "number" {`})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL file")
	})

	t.Run("unknown yaml section", func(t *testing.T) {
		_, _, err := runPatch(t, map[string]string{"p.yaml": "nodes: []\nroutes: []\n"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "routes")
	})
}
