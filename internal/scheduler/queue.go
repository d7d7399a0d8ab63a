package scheduler

import "github.com/specialistvlad/nodesynth/internal/node"

// Queue collects ready nodes between two drains. It is not safe for
// concurrent use; all graph mutation happens on one goroutine.
type Queue struct {
	nodes []*node.Node
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// SubmitReadyNode implements node.Scheduler. Submitting the same node twice
// before a drain is allowed.
func (q *Queue) SubmitReadyNode(n *node.Node) {
	q.nodes = append(q.nodes, n)
}

// Drain returns the queued nodes in submission order and empties the queue.
// Nodes submitted while the caller works through the snapshot land in the
// next drain.
func (q *Queue) Drain() []*node.Node {
	snapshot := q.nodes
	q.nodes = nil
	return snapshot
}

// Len returns the number of queued submissions.
func (q *Queue) Len() int {
	return len(q.nodes)
}

// Remove drops every queued submission of n, used when a node leaves the graph.
func (q *Queue) Remove(n *node.Node) {
	kept := q.nodes[:0]
	for _, queued := range q.nodes {
		if queued != n {
			kept = append(kept, queued)
		}
	}
	q.nodes = kept
}
