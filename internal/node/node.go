package node

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/zclconf/go-cty/cty"
)

// Scheduler receives nodes that have become fully ready.
type Scheduler interface {
	SubmitReadyNode(n *Node)
}

// Clock supplies the backend time used to anchor parameter ramps.
type Clock interface {
	CurrentTime() float64
}

// Deps are the collaborators a node is constructed with.
type Deps struct {
	Scheduler Scheduler
	Backend   backend.Adapter
}

// Node is a unit of computation with ordered inputs and outputs.
type Node struct {
	name      string
	spec      *Spec
	inputs    []*Input
	outputs   []*Output
	status    Status
	handle    backend.Handle
	scheduler Scheduler
	clock     Clock
	// marking is set while the node is propagating a pending announcement.
	marking bool
}

// New builds a node named name from spec, creating its backend handle when
// the kind declares one.
func New(name string, spec *Spec, deps Deps) (*Node, error) {
	if spec == nil {
		return nil, fmt.Errorf("node %q: nil spec", name)
	}
	n := &Node{
		name:      name,
		spec:      spec,
		scheduler: deps.Scheduler,
	}
	if deps.Backend != nil {
		n.clock = deps.Backend
	}

	if spec.Backend != "" {
		if deps.Backend == nil {
			return nil, fmt.Errorf("node %q: kind %s needs a backend", name, spec.Kind)
		}
		h, err := deps.Backend.CreateNode(spec.Backend, spec.BackendParams)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", name, err)
		}
		n.handle = h
		if spec.AutoStart {
			h.Start()
		}
	}

	for i, s := range spec.Inputs {
		in := &Input{label: s.Label, typ: s.Type, index: i, node: n, value: s.Type.Zero()}
		if s.Default != cty.NilVal {
			v, err := coerce(s.Type, s.Default)
			if err != nil {
				return nil, fmt.Errorf("node %q: default for %s: %w", name, s.Label, err)
			}
			in.value = v
		}
		if s.Param != "" {
			if n.handle == nil {
				return nil, fmt.Errorf("node %q: param input %s without backend", name, s.Label)
			}
			p, ok := n.handle.Param(s.Param)
			if !ok {
				return nil, fmt.Errorf("node %q: backend has no parameter %q", name, s.Param)
			}
			in.param = p
		}
		n.inputs = append(n.inputs, in)
	}
	for i, s := range spec.Outputs {
		n.outputs = append(n.outputs, &Output{label: s.Label, typ: s.Type, index: i, node: n, value: s.Type.Zero()})
	}
	return n, nil
}

func (n *Node) Name() string            { return n.name }
func (n *Node) Kind() Kind              { return n.spec.Kind }
func (n *Node) Spec() *Spec             { return n.spec }
func (n *Node) Status() Status          { return n.status }
func (n *Node) Backend() backend.Handle { return n.handle }
func (n *Node) String() string          { return n.name }

// Inputs returns the node's inputs in declaration order.
func (n *Node) Inputs() []*Input {
	return append([]*Input(nil), n.inputs...)
}

// Outputs returns the node's outputs in declaration order.
func (n *Node) Outputs() []*Output {
	return append([]*Output(nil), n.outputs...)
}

// Input finds an input by slug name or by "in[N]".
func (n *Node) Input(name string) (*Input, bool) {
	if i, ok := indexRef(name, "in"); ok {
		if i < len(n.inputs) {
			return n.inputs[i], true
		}
		return nil, false
	}
	for _, in := range n.inputs {
		if in.Name() == Slug(name) {
			return in, true
		}
	}
	return nil, false
}

// Output finds an output by slug name or by "out[N]".
func (n *Node) Output(name string) (*Output, bool) {
	if i, ok := indexRef(name, "out"); ok {
		if i < len(n.outputs) {
			return n.outputs[i], true
		}
		return nil, false
	}
	for _, out := range n.outputs {
		if out.Name() == Slug(name) {
			return out, true
		}
	}
	return nil, false
}

// indexRef parses "prefix[N]".
func indexRef(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix+"[") || !strings.HasSuffix(name, "]") {
		return 0, false
	}
	i, err := strconv.Atoi(name[len(prefix)+1 : len(name)-1])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// IsReady reports whether no data input is still waiting for a value. A node
// without data inputs is always ready.
func (n *Node) IsReady() bool {
	for _, in := range n.inputs {
		if !in.IsReady() {
			return false
		}
	}
	return true
}

// PropagatePendingStatus marks the node Pending and pushes the announcement
// through every non-signal output that is not already Pending.
func (n *Node) PropagatePendingStatus() error {
	if n.marking {
		return fmt.Errorf("%w: pending announcement reached %s again", ErrCycleDetected, n.name)
	}
	n.marking = true
	defer func() { n.marking = false }()

	n.status = Pending
	for _, out := range n.outputs {
		if !out.typ.IsData() || out.status != Idle {
			continue
		}
		if err := out.PropagatePendingStatus(); err != nil {
			return err
		}
	}
	return nil
}

// reportInputReady submits the node once none of its inputs is pending.
func (n *Node) reportInputReady() {
	if !n.IsReady() {
		return
	}
	n.status = Ready
	if n.scheduler != nil {
		n.scheduler.SubmitReadyNode(n)
	}
}

func (n *Node) react(index int, value cty.Value) error {
	if n.spec.Reaction == nil {
		return nil
	}
	return n.applyAll(n.spec.Reaction(index, value))
}

// Execute runs the node if it is Ready: inputs are reset to Idle, then the
// transform runs. A node that is not Ready is left alone and Execute reports
// false. Outputs announced as pending but not transmitted by the transform
// re-send their current value so downstream inputs are released.
func (n *Node) Execute() (bool, error) {
	if n.status != Ready || !n.IsReady() {
		return false, nil
	}
	for _, in := range n.inputs {
		in.status = Idle
	}
	n.status = Idle

	if n.spec.Transform != nil {
		values := make([]cty.Value, len(n.inputs))
		for i, in := range n.inputs {
			values[i] = in.value
		}
		effects, err := n.spec.Transform(values)
		if err != nil {
			return true, fmt.Errorf("%s: %w", n.name, err)
		}
		if err := n.applyAll(effects); err != nil {
			return true, err
		}
	}

	for _, out := range n.outputs {
		if out.typ.IsData() && out.status == Pending {
			if err := out.TransmitToAllWires(out.value); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

func (n *Node) applyAll(effects []Effect) error {
	for _, e := range effects {
		if err := e.apply(n); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) requireHandle() (backend.Handle, error) {
	if n.handle == nil {
		return nil, fmt.Errorf("%s: kind %s has no backend", n.name, n.spec.Kind)
	}
	return n.handle, nil
}
