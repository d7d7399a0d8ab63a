package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/scheduler"
)

// DefaultMaxSteps bounds the number of node executions in a single Update.
const DefaultMaxSteps = 10000

// ErrClosed is returned by operations on an engine after Close.
var ErrClosed = errors.New("engine closed")

// Engine schedules and executes ready nodes and routes signal connections
// into the backend.
type Engine struct {
	queue   *scheduler.Queue
	backend backend.Adapter
	closed  bool

	// MaxSteps caps executions per Update; exceeding it fails with
	// node.ErrCycleDetected.
	MaxSteps int
}

// New creates an engine driving the given backend adapter.
func New(b backend.Adapter) *Engine {
	return &Engine{
		queue:    scheduler.New(),
		backend:  b,
		MaxSteps: DefaultMaxSteps,
	}
}

// Backend returns the adapter the engine routes signals into.
func (e *Engine) Backend() backend.Adapter {
	return e.backend
}

// Deps returns the collaborators nodes built for this engine need.
func (e *Engine) Deps() node.Deps {
	return node.Deps{Scheduler: e, Backend: e.backend}
}

// SubmitReadyNode implements node.Scheduler.
func (e *Engine) SubmitReadyNode(n *node.Node) {
	e.queue.SubmitReadyNode(n)
}

// Queued returns the number of submissions waiting for the next Update.
func (e *Engine) Queued() int {
	return e.queue.Len()
}

// Forget drops any queued submission of n.
func (e *Engine) Forget(n *node.Node) {
	e.queue.Remove(n)
}

// Validate checks that out may be wired to in without touching either socket.
func (e *Engine) Validate(out *node.Output, in *node.Input) error {
	if e.closed {
		return ErrClosed
	}
	if out == nil || in == nil {
		return fmt.Errorf("%w: both sockets are required", node.ErrInvalidConnection)
	}
	if !node.CanConnect(out.Type(), in.Type()) {
		return node.NewConnectionError(out, in, nil, fmt.Sprintf("cannot wire %s into %s", out.Type(), in.Type()))
	}
	if out.Type() == node.TypeSignal {
		if out.Node().Backend() == nil {
			return node.NewConnectionError(out, in, nil, "signal source has no backend")
		}
		if _, err := receiver(in); err != nil {
			return node.NewConnectionError(out, in, nil, err.Error())
		}
	}
	return nil
}

// Connect performs the backend side effect of a wire the caller has already
// registered on both sockets.
func (e *Engine) Connect(ctx context.Context, out *node.Output, in *node.Input) error {
	if err := e.Validate(out, in); err != nil {
		return err
	}
	if w := in.Wire(); w == nil || w.Output() != out {
		return node.NewConnectionError(out, in, nil, "wire is not registered")
	}

	logger := ctxlog.FromContext(ctx)
	if out.Type() != node.TypeSignal {
		logger.Debug("Data wire connected.", "from", out.Address(), "to", in.Address())
		return nil
	}

	transmitter := out.Node().Backend()
	rcv, _ := receiver(in)
	transmitter.Connect(rcv)
	if observer, ok := transmitter.(backend.ConnectionObserver); ok {
		observer.OnConnect(rcv)
	}
	logger.Debug("Signal routed.", "from", transmitter.Address(), "to", rcv.Address())
	return nil
}

// Disconnect undoes Connect for a wire that is still registered. The caller
// unregisters the wire afterwards and must not call Disconnect twice for the
// same pair.
func (e *Engine) Disconnect(ctx context.Context, out *node.Output, in *node.Input) error {
	if e.closed {
		return ErrClosed
	}
	if out == nil || in == nil {
		return fmt.Errorf("%w: both sockets are required", node.ErrInvalidConnection)
	}
	if w := in.Wire(); w == nil || w.Output() != out {
		return node.NewConnectionError(out, in, nil, "no wire between sockets")
	}

	logger := ctxlog.FromContext(ctx)
	if out.Type() != node.TypeSignal {
		logger.Debug("Data wire disconnected.", "from", out.Address(), "to", in.Address())
		return nil
	}

	transmitter := out.Node().Backend()
	rcv, err := receiver(in)
	if transmitter == nil || err != nil {
		return node.NewConnectionError(out, in, nil, "signal endpoints have no backend")
	}
	transmitter.Disconnect(rcv)
	if observer, ok := transmitter.(backend.ConnectionObserver); ok {
		observer.OnDisconnect(rcv)
	}
	logger.Debug("Signal unrouted.", "from", transmitter.Address(), "to", rcv.Address())
	return nil
}

// receiver resolves where a signal into in is routed: the parameter behind a
// param input, otherwise the input node's backend.
func receiver(in *node.Input) (backend.Endpoint, error) {
	if in.Type() == node.TypeParam {
		if in.Param() == nil {
			return nil, fmt.Errorf("param input has no backend parameter")
		}
		return in.Param(), nil
	}
	if in.Node().Backend() == nil {
		return nil, fmt.Errorf("receiving node has no backend")
	}
	return in.Node().Backend(), nil
}

// Close tears the engine down: the queue is dropped and the backend released.
func (e *Engine) Close(ctx context.Context) error {
	if e.closed {
		return nil
	}
	e.closed = true
	dropped := len(e.queue.Drain())
	ctxlog.FromContext(ctx).Debug("Engine closed.", "dropped_submissions", dropped)
	if e.backend == nil {
		return nil
	}
	return e.backend.Close()
}
