package integration_tests

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/nodesynth/internal/app"
	"github.com/specialistvlad/nodesynth/internal/control"
	"github.com/specialistvlad/nodesynth/internal/graph"
	"github.com/specialistvlad/nodesynth/internal/testutil"
	"github.com/stretchr/testify/require"
)

// runPatch runs the files as one patch, offline, for a short fixed duration.
func runPatch(t *testing.T, files map[string]string) (*app.App, string, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	cfg, err := app.NewConfig(app.Config{
		PatchPath: dir,
		LogLevel:  "debug",
		LogFormat: "text",
		TickRate:  200,
		Duration:  100 * time.Millisecond,
	})
	require.NoError(t, err)

	logs := &testutil.SafeBuffer{}
	a := app.NewApp(logs, cfg)
	err = a.Run(context.Background())
	return a, logs.String(), err
}

// session is a running app that accepts control requests.
type session struct {
	t      *testing.T
	app    *app.App
	logs   *testutil.SafeBuffer
	cancel context.CancelFunc
	done   chan error
}

func startSession(t *testing.T, files map[string]string) *session {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	cfg, err := app.NewConfig(app.Config{PatchPath: dir, LogLevel: "debug", LogFormat: "text", TickRate: 200})
	require.NoError(t, err)

	s := &session{t: t, logs: &testutil.SafeBuffer{}, done: make(chan error, 1)}
	s.app = app.NewApp(s.logs, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() { s.done <- s.app.Run(ctx) }()
	t.Cleanup(s.stop)
	return s
}

func (s *session) submit(cmd control.Command) control.Result {
	s.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := s.app.Queue().Submit(ctx, cmd)
	require.NoError(s.t, err)
	return res
}

// snapshot returns the graph as seen after every earlier request was applied.
func (s *session) snapshot() graph.Snapshot {
	s.t.Helper()
	res := s.submit(control.Command{Op: control.OpSnapshot})
	require.NoError(s.t, res.Err)
	return res.Value.(graph.Snapshot)
}

func (s *session) stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	require.NoError(s.t, <-s.done)
}

func findNode(snap graph.Snapshot, name string) (graph.NodeState, bool) {
	for _, n := range snap.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return graph.NodeState{}, false
}

func findSocket(sockets []graph.SocketState, name string) (graph.SocketState, bool) {
	for _, s := range sockets {
		if s.Name == name {
			return s, true
		}
	}
	return graph.SocketState{}, false
}
