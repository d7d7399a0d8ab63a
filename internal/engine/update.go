package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/node"
)

// pass is the bookkeeping of one Update call.
type pass struct {
	executed map[*node.Node]bool
	steps    int
	maxSteps int
	// stopped holds the node the execution budget ran out on.
	stopped []*node.Node
}

// Update drains the ready queue and executes every drained node followed,
// depth-first, by each downstream node that has become fully ready. Nodes
// that become ready during the pass but are not reachable from it run on the
// next Update. Errors from one subtree do not stop the others; they are
// joined and returned.
func (e *Engine) Update(ctx context.Context) error {
	if e.closed {
		return ErrClosed
	}
	queued := e.queue.Drain()
	if len(queued) == 0 {
		return nil
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine update started.", "queued", len(queued))

	p := &pass{executed: make(map[*node.Node]bool), maxSteps: e.MaxSteps}
	if p.maxSteps <= 0 {
		p.maxSteps = DefaultMaxSteps
	}

	var errs []error
	for i, n := range queued {
		if err := p.push(ctx, n); err != nil {
			logger.Error("Propagation failed.", "node", n.Name(), "error", err)
			errs = append(errs, err)
			if errors.Is(err, node.ErrCycleDetected) {
				e.requeue(p, append(p.stopped, queued[i+1:]...))
				break
			}
		}
	}

	logger.Debug("Engine update finished.", "executed", p.steps)
	return errors.Join(errs...)
}

// requeue hands the drained nodes an aborted pass did not reach back to the
// queue, so they run on the next Update.
func (e *Engine) requeue(p *pass, rest []*node.Node) {
	for _, n := range rest {
		if !p.executed[n] {
			e.queue.SubmitReadyNode(n)
		}
	}
}

// push executes n if it is ready and has not run in this pass, then follows
// every data wire downstream.
func (p *pass) push(ctx context.Context, n *node.Node) error {
	if p.executed[n] || !n.IsReady() {
		return nil
	}
	p.steps++
	if p.steps > p.maxSteps {
		p.stopped = append(p.stopped, n)
		return fmt.Errorf("%w: update exceeded %d executions at %s", node.ErrCycleDetected, p.maxSteps, n.Name())
	}

	ran, err := n.Execute()
	if !ran {
		p.steps--
		return err
	}
	p.executed[n] = true
	ctxlog.FromContext(ctx).Debug("Node executed.", "node", n.Name(), "kind", n.Kind())
	if err != nil {
		return err
	}

	for _, out := range n.Outputs() {
		if !out.Type().IsData() {
			continue
		}
		for _, w := range out.Wires() {
			if err := p.push(ctx, w.Input().Node()); err != nil {
				return err
			}
		}
	}
	return nil
}
