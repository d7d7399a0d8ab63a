package envelope

import (
	"testing"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestEnvelope_TriggerSchedulesShape(t *testing.T) {
	rec := backend.NewRecorder()
	clock := &backend.ManualClock{}
	n, err := node.New("env", Spec(), node.Deps{Backend: backend.NewClient(rec, clock)})
	require.NoError(t, err)
	rec.Reset()
	clock.Set(10)

	trigger, ok := n.Input("trigger")
	require.True(t, ok)
	require.NoError(t, trigger.Receive(cty.True))

	cmds := rec.Commands()
	require.Len(t, cmds, len(Shape))
	assert.Equal(t, backend.OpSetValueAtTime, cmds[0].Op)
	assert.Equal(t, 10.0, cmds[0].Time)
	for i, cmd := range cmds[1:] {
		assert.Equal(t, backend.OpLinearRamp, cmd.Op)
		assert.Equal(t, "offset", cmd.Param)
		assert.InDelta(t, 10+Shape[i+1].At, cmd.Time, 1e-9)
		assert.Equal(t, Shape[i+1].Value, cmd.Value)
	}
}
