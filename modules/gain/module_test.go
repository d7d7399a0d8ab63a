package gain

import (
	"testing"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGain_SetsBackendParam(t *testing.T) {
	rec := backend.NewRecorder()
	n, err := node.New("amp", Spec(), node.Deps{Backend: backend.NewClient(rec, nil)})
	require.NoError(t, err)
	rec.Reset()

	g, _ := n.Input("gain")
	require.NotNil(t, g.Param())
	require.NoError(t, g.Receive(node.Number(0.25)))

	assert.Equal(t, []backend.Command{
		{Op: backend.OpSetParam, Target: n.Backend().Address(), Param: "gain", Value: 0.25},
	}, rec.Commands())
}
