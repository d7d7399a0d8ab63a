package node

import (
	"fmt"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/zclconf/go-cty/cty"
)

// Input is a typed connection point receiving values. It holds at most one
// wire: data fan-in is single-valued.
type Input struct {
	label  string
	typ    ValueType
	index  int
	node   *Node
	value  cty.Value
	status Status
	wire   *Wire
	// param is the backend parameter behind a param-typed input.
	param backend.Param
}

func (in *Input) Label() string        { return in.label }
func (in *Input) Name() string         { return Slug(in.label) }
func (in *Input) Type() ValueType      { return in.typ }
func (in *Input) Index() int           { return in.index }
func (in *Input) Node() *Node          { return in.node }
func (in *Input) Value() cty.Value     { return in.value }
func (in *Input) Status() Status       { return in.status }
func (in *Input) Wire() *Wire          { return in.wire }
func (in *Input) Param() backend.Param { return in.param }
func (in *Input) IsPending() bool      { return in.status == Pending }
func (in *Input) Address() string      { return in.node.Name() + "." + in.Name() }
func (in *Input) String() string       { return in.Address() }

// IsReady reports whether the input holds a current value. Signal inputs are
// always ready since they never carry one.
func (in *Input) IsReady() bool {
	return !in.typ.IsData() || in.status != Pending
}

// Check reports whether value could be delivered to the input.
func (in *Input) Check(value cty.Value) error {
	if _, err := coerce(in.typ, value); err != nil {
		return fmt.Errorf("%s: %w", in.Address(), err)
	}
	return nil
}

// Receive stores value, marks the input Ready, runs the node's reaction and
// finally asks the node whether it has become ready. An inconvertible value is
// rejected before anything changes.
func (in *Input) Receive(value cty.Value) error {
	v, err := coerce(in.typ, value)
	if err != nil {
		return fmt.Errorf("%s: %w", in.Address(), err)
	}
	in.value = v
	in.status = Ready
	reactErr := in.node.react(in.index, v)
	in.node.reportInputReady()
	return reactErr
}

// PropagatePendingStatus announces that a new value is on its way: the input,
// its node and everything reachable downstream become Pending.
func (in *Input) PropagatePendingStatus() error {
	if !in.typ.IsData() {
		return nil
	}
	in.status = Pending
	return in.node.PropagatePendingStatus()
}

// SetWire records w as the input's only wire. A previously attached wire is
// detached from its output and returned.
func (in *Input) SetWire(w *Wire) *Wire {
	old := in.RemoveWire()
	in.wire = w
	return old
}

// RemoveWire detaches the current wire from both ends and returns it. A
// pending input is released, since the wire that would have delivered to it
// is gone.
func (in *Input) RemoveWire() *Wire {
	old := in.wire
	if old == nil {
		return nil
	}
	old.output.RemoveWire(old)
	in.wire = nil
	in.Release()
	return old
}

// Release ends a pending wait that nothing can satisfy any more. The input
// keeps its current value and its node is re-checked for readiness.
func (in *Input) Release() {
	if in.status != Pending {
		return
	}
	in.status = Ready
	in.node.reportInputReady()
}

// Output is a typed connection point transmitting values to any number of
// wires.
type Output struct {
	label        string
	typ          ValueType
	index        int
	node         *Node
	value        cty.Value
	status       Status
	wires        []*Wire
	transmitting bool
}

func (out *Output) Label() string    { return out.label }
func (out *Output) Name() string     { return Slug(out.label) }
func (out *Output) Type() ValueType  { return out.typ }
func (out *Output) Index() int       { return out.index }
func (out *Output) Node() *Node      { return out.node }
func (out *Output) Value() cty.Value { return out.value }
func (out *Output) Status() Status   { return out.status }
func (out *Output) Address() string  { return out.node.Name() + "." + out.Name() }
func (out *Output) String() string   { return out.Address() }

// Wires returns the attached wires in attachment order.
func (out *Output) Wires() []*Wire {
	wires := make([]*Wire, len(out.wires))
	copy(wires, out.wires)
	return wires
}

// AddWire appends w to the fan-out set.
func (out *Output) AddWire(w *Wire) {
	out.wires = append(out.wires, w)
}

// RemoveWire drops the wire matching w's (input, output) pair, keeping the
// order of the remaining wires. It reports whether a wire was removed.
func (out *Output) RemoveWire(w *Wire) bool {
	for i, existing := range out.wires {
		if existing.input == w.input && existing.output == w.output {
			out.wires = append(out.wires[:i], out.wires[i+1:]...)
			return true
		}
	}
	return false
}

// TransmitToAllWires stores value as the output's current value and delivers
// it to every attached input in attachment order.
func (out *Output) TransmitToAllWires(value cty.Value) error {
	v, err := coerce(out.typ, value)
	if err != nil {
		return fmt.Errorf("%s: %w", out.Address(), err)
	}
	if out.transmitting {
		return fmt.Errorf("%w: %s transmits into itself", ErrCycleDetected, out.Address())
	}
	out.transmitting = true
	defer func() { out.transmitting = false }()

	out.value = v
	out.status = Idle
	for _, w := range out.Wires() {
		if err := w.input.Receive(v); err != nil {
			return err
		}
	}
	return nil
}

// PropagatePendingStatus marks the output and every input it feeds Pending.
func (out *Output) PropagatePendingStatus() error {
	out.status = Pending
	for _, w := range out.Wires() {
		if err := w.input.PropagatePendingStatus(); err != nil {
			return err
		}
	}
	return nil
}
