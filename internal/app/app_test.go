package app

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/nodesynth/internal/control"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const synthHCL = `
node "oscillator" "osc" {
  inputs {
    enabled = true
    freq    = 220
  }
}

node "envelope" "env" {}
node "gain" "amp" {}
node "destination" "out" {}

wire {
  from = "osc.signal"
  to   = "amp.signal"
}

wire {
  from = "env.signal"
  to   = "amp.gain"
}

wire {
  from = "amp.signal"
  to   = "out.signal"
}
`

const mathYAML = `nodes:
  - kind: number
    name: x
    inputs: {input: 3}
  - kind: number
    name: y
    inputs: {input: 5}
  - kind: add
    name: sum
wires:
  - from: x.output
    to: sum.a
  - from: y.output
    to: sum.b
`

func setupAppTest(t *testing.T, files map[string]string, tweak func(*Config)) (*App, *testutil.SafeBuffer) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	cfg, err := NewConfig(Config{PatchPath: dir, LogLevel: "debug", TickRate: 200, Duration: 100 * time.Millisecond})
	require.NoError(t, err)
	if tweak != nil {
		tweak(cfg)
	}
	logs := &testutil.SafeBuffer{}
	return NewApp(logs, cfg), logs
}

func TestApp_RunOffline(t *testing.T) {
	a, logs := setupAppTest(t, map[string]string{
		"synth.hcl":     synthHCL,
		"math/sum.yaml": mathYAML,
	}, nil)

	require.NoError(t, a.Run(context.Background()))

	out := logs.String()
	assert.Contains(t, out, "Patch applied.")
	assert.Contains(t, out, "nodes=7")
	assert.Contains(t, out, "wires=5")
	assert.Contains(t, out, "Tick loop stopped.")
	assert.Contains(t, out, "op=start target=oscillator-1")

	sum, ok := a.Graph().Node("sum")
	require.True(t, ok)
	result, _ := sum.Output("result")
	assert.True(t, result.Value().RawEquals(cty.NumberIntVal(8)))
}

func TestApp_QueuedRequestsRunOnTick(t *testing.T) {
	a, _ := setupAppTest(t, map[string]string{"sum.yaml": mathYAML}, func(c *Config) {
		c.Duration = 2 * time.Second
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	submitCtx, submitCancel := context.WithTimeout(context.Background(), time.Second)
	defer submitCancel()
	res, err := a.Queue().Submit(submitCtx, control.Command{Op: control.OpSet, Address: "x.input", Value: node.Number(10)})
	require.NoError(t, err)
	require.NoError(t, res.Err)

	snapshotCtx, snapshotCancel := context.WithTimeout(context.Background(), time.Second)
	defer snapshotCancel()
	_, err = a.Queue().Submit(snapshotCtx, control.Command{Op: control.OpSnapshot})
	require.NoError(t, err)

	cancel()
	require.NoError(t, <-done)

	sum, _ := a.Graph().Node("sum")
	result, _ := sum.Output("result")
	assert.True(t, result.Value().RawEquals(cty.NumberIntVal(15)))
}

func TestApp_RunErrors(t *testing.T) {
	t.Run("broken patch", func(t *testing.T) {
		a, _ := setupAppTest(t, map[string]string{"bad.hcl": `node "osc" {`}, nil)
		assert.ErrorContains(t, a.Run(context.Background()), "failed to parse HCL file")
	})

	t.Run("unknown kind", func(t *testing.T) {
		a, _ := setupAppTest(t, map[string]string{"p.yaml": "nodes:\n  - kind: theremin\n    name: t\n"}, nil)
		assert.ErrorContains(t, a.Run(context.Background()), "failed to apply patch")
	})

	t.Run("empty directory", func(t *testing.T) {
		a, _ := setupAppTest(t, map[string]string{"README.txt": "nothing"}, nil)
		assert.ErrorContains(t, a.Run(context.Background()), "no patch files found")
	})
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{PatchPath: "synth.hcl"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTickRate, cfg.TickRate)
	assert.Equal(t, time.Second/60, cfg.TickInterval())

	_, err = NewConfig(Config{})
	assert.ErrorContains(t, err, "PatchPath is a required")

	_, err = NewConfig(Config{PatchPath: "p", TickRate: -1})
	assert.Error(t, err)

	_, err = NewConfig(Config{PatchPath: "p", InspectPort: 70000})
	assert.Error(t, err)
}

func TestNewApp_PanicsOnInvalidKind(t *testing.T) {
	cfg, err := NewConfig(Config{PatchPath: "p"})
	require.NoError(t, err)
	assert.Panics(t, func() {
		NewApp(&testutil.SafeBuffer{}, cfg, brokenModule{})
	})
}
