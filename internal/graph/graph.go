package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/engine"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/nodeid"
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrNodeNotFound is returned when an address names a node that does not exist.
	ErrNodeNotFound = errors.New("node not found")
	// ErrSocketNotFound is returned when an address names a socket the node lacks.
	ErrSocketNotFound = errors.New("socket not found")
	// ErrDuplicateNode is returned when a node name is already taken.
	ErrDuplicateNode = errors.New("duplicate node name")
)

// Graph holds the nodes of one patch and the wires between them.
type Graph struct {
	registry *registry.Registry
	engine   *engine.Engine
	nodes    map[string]*node.Node
	order    []string
}

// New creates an empty graph building nodes from reg and scheduling them on eng.
func New(reg *registry.Registry, eng *engine.Engine) *Graph {
	return &Graph{
		registry: reg,
		engine:   eng,
		nodes:    make(map[string]*node.Node),
	}
}

// Engine returns the engine the graph schedules on.
func (g *Graph) Engine() *engine.Engine {
	return g.engine
}

// AddNode creates a node of the given kind. An empty name is replaced by a
// generated one.
func (g *Graph) AddNode(ctx context.Context, kind node.Kind, name string) (*node.Node, error) {
	if name == "" {
		name = uuid.NewString()
	}
	if !nodeid.ValidNodeName(name) {
		return nil, fmt.Errorf("invalid node name %q", name)
	}
	if _, exists := g.nodes[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	n, err := g.registry.NewNode(kind, name, g.engine.Deps())
	if err != nil {
		return nil, err
	}
	g.nodes[name] = n
	g.order = append(g.order, name)
	ctxlog.FromContext(ctx).Debug("Node added.", "node", name, "kind", kind)
	return n, nil
}

// Node looks a node up by name.
func (g *Graph) Node(name string) (*node.Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns every node in creation order.
func (g *Graph) Nodes() []*node.Node {
	nodes := make([]*node.Node, 0, len(g.order))
	for _, name := range g.order {
		nodes = append(nodes, g.nodes[name])
	}
	return nodes
}

// Wires returns every wire, grouped by receiving node in creation order.
func (g *Graph) Wires() []*node.Wire {
	var wires []*node.Wire
	for _, n := range g.Nodes() {
		for _, in := range n.Inputs() {
			if w := in.Wire(); w != nil {
				wires = append(wires, w)
			}
		}
	}
	return wires
}

// ResolveInput finds the input named by a socket address.
func (g *Graph) ResolveInput(raw string) (*node.Input, error) {
	addr, err := nodeid.Parse(raw)
	if err != nil {
		return nil, err
	}
	n, ok := g.nodes[addr.Node]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, addr.Node)
	}
	in, ok := n.Input(addr.Socket.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s has no input %q", ErrSocketNotFound, addr.Node, addr.Socket)
	}
	return in, nil
}

// ResolveOutput finds the output named by a socket address.
func (g *Graph) ResolveOutput(raw string) (*node.Output, error) {
	addr, err := nodeid.Parse(raw)
	if err != nil {
		return nil, err
	}
	n, ok := g.nodes[addr.Node]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, addr.Node)
	}
	out, ok := n.Output(addr.Socket.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s has no output %q", ErrSocketNotFound, addr.Node, addr.Socket)
	}
	return out, nil
}

// Connect wires out into in. A wire the input already holds is disconnected
// first. Nothing changes when the pair is refused.
func (g *Graph) Connect(ctx context.Context, out *node.Output, in *node.Input) (*node.Wire, error) {
	if err := g.engine.Validate(out, in); err != nil {
		return nil, err
	}
	if err := g.owns(out.Node(), in.Node()); err != nil {
		return nil, err
	}
	if old := in.Wire(); old != nil && old.Output() == out {
		return old, nil
	}
	if out.Type().IsData() && reachable(in.Node(), out.Node()) {
		return nil, node.NewConnectionError(out, in, node.ErrCycleDetected, "wire would close a loop")
	}

	if old := in.Wire(); old != nil {
		if err := g.Disconnect(ctx, old); err != nil {
			return nil, err
		}
	}

	w := node.NewWire(out, in)
	node.Attach(w)
	if err := g.engine.Connect(ctx, out, in); err != nil {
		node.Detach(w)
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("Wire connected.", "wire", w.String())
	return w, nil
}

// ConnectAddr is Connect with both sockets named by address.
func (g *Graph) ConnectAddr(ctx context.Context, from, to string) (*node.Wire, error) {
	out, err := g.ResolveOutput(from)
	if err != nil {
		return nil, err
	}
	in, err := g.ResolveInput(to)
	if err != nil {
		return nil, err
	}
	return g.Connect(ctx, out, in)
}

// Disconnect removes a wire that is currently attached.
func (g *Graph) Disconnect(ctx context.Context, w *node.Wire) error {
	if w == nil || !w.IsAttached() {
		return fmt.Errorf("%w: wire is not attached", node.ErrInvalidConnection)
	}
	if err := g.engine.Disconnect(ctx, w.Output(), w.Input()); err != nil {
		return err
	}
	node.Detach(w)
	ctxlog.FromContext(ctx).Info("Wire disconnected.", "wire", w.String())
	return nil
}

// DisconnectAddr removes the wire between two addressed sockets.
func (g *Graph) DisconnectAddr(ctx context.Context, from, to string) error {
	out, err := g.ResolveOutput(from)
	if err != nil {
		return err
	}
	in, err := g.ResolveInput(to)
	if err != nil {
		return err
	}
	w := in.Wire()
	if w == nil || w.Output() != out {
		return node.NewConnectionError(out, in, nil, "no wire between sockets")
	}
	return g.Disconnect(ctx, w)
}

// DisconnectInput removes whatever wire feeds in. It is a no-op for an
// unwired input.
func (g *Graph) DisconnectInput(ctx context.Context, in *node.Input) error {
	if w := in.Wire(); w != nil {
		return g.Disconnect(ctx, w)
	}
	return nil
}

// RemoveNode disconnects every wire touching the node, stops its backend
// handle and forgets it.
func (g *Graph) RemoveNode(ctx context.Context, name string) error {
	n, ok := g.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	var errs []error
	for _, in := range n.Inputs() {
		errs = append(errs, g.DisconnectInput(ctx, in))
	}
	for _, out := range n.Outputs() {
		for _, w := range out.Wires() {
			errs = append(errs, g.Disconnect(ctx, w))
		}
	}
	stopHandle(n)
	g.engine.Forget(n)

	delete(g.nodes, name)
	for i, existing := range g.order {
		if existing == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	ctxlog.FromContext(ctx).Info("Node removed.", "node", name)
	return errors.Join(errs...)
}

// SetValue announces a new value on in and delivers it, the way a widget
// edit does. Downstream nodes run on the next Update.
func (g *Graph) SetValue(ctx context.Context, in *node.Input, v cty.Value) error {
	if !in.Type().IsData() {
		return fmt.Errorf("%w: %s is a signal input", node.ErrInvalidValue, in.Address())
	}
	if err := in.Check(v); err != nil {
		return err
	}
	if err := in.PropagatePendingStatus(); err != nil {
		return err
	}
	if err := in.Receive(v); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Input set.", "input", in.Address(), "value", v.GoString())
	return nil
}

// SetValueAddr is SetValue with the input named by address.
func (g *Graph) SetValueAddr(ctx context.Context, addr string, v cty.Value) error {
	in, err := g.ResolveInput(addr)
	if err != nil {
		return err
	}
	return g.SetValue(ctx, in, v)
}

// Trigger fires a trigger input.
func (g *Graph) Trigger(ctx context.Context, in *node.Input) error {
	if in.Type() != node.TypeTrigger {
		return fmt.Errorf("%w: %s is a %s input", node.ErrInvalidValue, in.Address(), in.Type())
	}
	return g.SetValue(ctx, in, cty.True)
}

// TriggerAddr is Trigger with the input named by address.
func (g *Graph) TriggerAddr(ctx context.Context, addr string) error {
	in, err := g.ResolveInput(addr)
	if err != nil {
		return err
	}
	return g.Trigger(ctx, in)
}

// Update runs one engine pass.
func (g *Graph) Update(ctx context.Context) error {
	return g.engine.Update(ctx)
}

// Close stops every source handle and tears the engine down.
func (g *Graph) Close(ctx context.Context) error {
	for _, n := range g.Nodes() {
		stopHandle(n)
	}
	return g.engine.Close(ctx)
}

func (g *Graph) owns(nodes ...*node.Node) error {
	for _, n := range nodes {
		if g.nodes[n.Name()] != n {
			return fmt.Errorf("%w: %q is not part of this graph", ErrNodeNotFound, n.Name())
		}
	}
	return nil
}

// stopHandle silences backend nodes that produce signal on their own.
func stopHandle(n *node.Node) {
	h := n.Backend()
	if h == nil {
		return
	}
	if h.Kind() == backend.KindOscillator || n.Spec().AutoStart {
		h.Stop()
	}
}
