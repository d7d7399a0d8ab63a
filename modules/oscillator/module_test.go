package oscillator

import (
	"testing"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestOscillator_FrequencyAndEnable(t *testing.T) {
	rec := backend.NewRecorder()
	client := backend.NewClient(rec, nil)
	osc, err := node.New("osc", Spec(), node.Deps{Backend: client})
	require.NoError(t, err)
	dst, err := client.CreateNode(backend.KindDestination, nil)
	require.NoError(t, err)
	rec.Reset()

	freq, _ := osc.Input("freq")
	require.NotNil(t, freq.Param())
	require.NoError(t, freq.Receive(node.Number(440)))
	assert.Equal(t, []backend.Command{
		{Op: backend.OpSetParam, Target: osc.Backend().Address(), Param: "frequency", Value: 440},
	}, rec.Commands())

	osc.Backend().Connect(dst)
	enabled, _ := osc.Input("enabled")
	require.NoError(t, enabled.Receive(cty.True))
	assert.Len(t, rec.Filter(backend.OpStart), 1)

	require.NoError(t, enabled.Receive(cty.False))
	assert.Len(t, rec.Filter(backend.OpStop), 1)
}
