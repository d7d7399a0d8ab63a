package graph

import "github.com/specialistvlad/nodesynth/internal/node"

// reachable reports whether target can be reached from start by following
// data wires downstream.
func reachable(start, target *node.Node) bool {
	visited := make(map[*node.Node]bool)

	var visit func(n *node.Node) bool
	visit = func(n *node.Node) bool {
		if n == target {
			return true
		}
		if visited[n] {
			return false
		}
		visited[n] = true

		for _, out := range n.Outputs() {
			if !out.Type().IsData() {
				continue
			}
			for _, w := range out.Wires() {
				if visit(w.Input().Node()) {
					return true
				}
			}
		}
		return false
	}
	return visit(start)
}
