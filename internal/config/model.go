package config

import (
	"context"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific patch loader.
type Loader interface {
	// Load reads every given file and merges them into one Patch.
	Load(ctx context.Context, paths ...string) (*Patch, error)
}

// Patch is a declarative description of a graph.
type Patch struct {
	Nodes []*NodeDecl
	Wires []*WireDecl
}

// NodeDecl declares one node and the values its inputs start with.
type NodeDecl struct {
	Kind   string
	Name   string
	Inputs map[string]cty.Value
	// Source points at the declaration for error messages, e.g. "synth.hcl:3".
	Source string
}

// WireDecl connects the output at From to the input at To. Both are socket
// addresses of the form `node.socket`.
type WireDecl struct {
	From   string
	To     string
	Source string
}

// InputNames returns the keys of Inputs in a stable order.
func (n *NodeDecl) InputNames() []string {
	names := make([]string, 0, len(n.Inputs))
	for name := range n.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge appends other's declarations. Node names must stay unique.
func (p *Patch) Merge(other *Patch) error {
	if other == nil {
		return nil
	}
	seen := make(map[string]string, len(p.Nodes))
	for _, n := range p.Nodes {
		seen[n.Name] = n.Source
	}
	for _, n := range other.Nodes {
		if n.Name == "" {
			p.Nodes = append(p.Nodes, n)
			continue
		}
		if first, dup := seen[n.Name]; dup {
			return fmt.Errorf("node %q declared twice (%s and %s)", n.Name, first, n.Source)
		}
		seen[n.Name] = n.Source
		p.Nodes = append(p.Nodes, n)
	}
	p.Wires = append(p.Wires, other.Wires...)
	return nil
}
