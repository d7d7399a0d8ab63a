package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/graph"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ErrQueueFull is returned by Post when the queue cannot take more requests.
var ErrQueueFull = errors.New("control queue full")

// DefaultQueueSize is the capacity used when NewQueue is given zero.
const DefaultQueueSize = 256

// Op names a graph edit.
type Op string

const (
	OpAddNode    Op = "add-node"
	OpRemoveNode Op = "remove-node"
	OpSet        Op = "set"
	OpTrigger    Op = "trigger"
	OpConnect    Op = "connect"
	OpDisconnect Op = "disconnect"
	OpSnapshot   Op = "snapshot"
)

// Command is one edit request.
type Command struct {
	Op Op
	// Address names the input for OpSet and OpTrigger.
	Address string
	Value   cty.Value
	// From and To name the sockets for OpConnect and OpDisconnect.
	From string
	To   string
	// Kind and Name describe the node for OpAddNode; Name alone is used by
	// OpRemoveNode.
	Kind string
	Name string

	reply chan Result
}

// Result is the outcome of a command. Value is a node name for OpAddNode and
// a graph.Snapshot for OpSnapshot.
type Result struct {
	Value any
	Err   error
}

// Queue is a multi-producer, single-consumer request queue.
type Queue struct {
	ch chan Command
}

// NewQueue creates a queue holding up to size pending requests.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Command, size)}
}

// Post enqueues cmd without waiting for it to run.
func (q *Queue) Post(cmd Command) error {
	cmd.reply = nil
	select {
	case q.ch <- cmd:
		return nil
	default:
		return fmt.Errorf("%w: dropping %s", ErrQueueFull, cmd.Op)
	}
}

// Submit enqueues cmd and waits until it has been applied or ctx is done.
func (q *Queue) Submit(ctx context.Context, cmd Command) (Result, error) {
	cmd.reply = make(chan Result, 1)
	select {
	case q.ch <- cmd:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
	select {
	case res := <-cmd.reply:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Drain applies every queued request to g and returns how many ran. It never
// blocks waiting for new requests.
func (q *Queue) Drain(ctx context.Context, g *graph.Graph) int {
	logger := ctxlog.FromContext(ctx)
	for n := 0; ; n++ {
		select {
		case cmd := <-q.ch:
			res := Execute(ctx, g, cmd)
			if res.Err != nil {
				logger.Warn("Control request failed.", "op", cmd.Op, "error", res.Err)
			}
			if cmd.reply != nil {
				cmd.reply <- res
			}
		default:
			return n
		}
	}
}

// Execute applies a single request to g.
func Execute(ctx context.Context, g *graph.Graph, cmd Command) Result {
	ctx = ctxlog.With(ctx, "op", cmd.Op)
	switch cmd.Op {
	case OpAddNode:
		n, err := g.AddNode(ctx, node.Kind(cmd.Kind), cmd.Name)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Value: n.Name()}
	case OpRemoveNode:
		return Result{Err: g.RemoveNode(ctx, cmd.Name)}
	case OpSet:
		return Result{Err: g.SetValueAddr(ctx, cmd.Address, cmd.Value)}
	case OpTrigger:
		return Result{Err: g.TriggerAddr(ctx, cmd.Address)}
	case OpConnect:
		_, err := g.ConnectAddr(ctx, cmd.From, cmd.To)
		return Result{Err: err}
	case OpDisconnect:
		return Result{Err: g.DisconnectAddr(ctx, cmd.From, cmd.To)}
	case OpSnapshot:
		return Result{Value: g.Snapshot()}
	}
	return Result{Err: fmt.Errorf("unknown control op %q", cmd.Op)}
}

// DecodeValue converts a JSON scalar into a cty value.
func DecodeValue(raw json.RawMessage) (cty.Value, error) {
	if len(raw) == 0 {
		return cty.NilVal, fmt.Errorf("missing value")
	}
	t, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return cty.NilVal, err
	}
	if !t.IsPrimitiveType() {
		return cty.NilVal, fmt.Errorf("value must be a bool, number or string, got %s", t.FriendlyName())
	}
	return ctyjson.Unmarshal(raw, t)
}
