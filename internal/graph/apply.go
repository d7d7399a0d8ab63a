package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/nodesynth/internal/config"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/node"
)

// Apply builds the patch into the graph: every node first, then every wire,
// then the declared input values. Each stage reports all of its failures
// before the next one starts; the first failing stage stops the apply.
func (g *Graph) Apply(ctx context.Context, patch *config.Patch) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Applying patch.", "nodes", len(patch.Nodes), "wires", len(patch.Wires))

	var errs []error
	created := make([]*node.Node, len(patch.Nodes))
	for i, decl := range patch.Nodes {
		n, err := g.AddNode(ctx, node.Kind(decl.Kind), decl.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", decl.Source, err))
			continue
		}
		created[i] = n
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for _, decl := range patch.Wires {
		if _, err := g.ConnectAddr(ctx, decl.From, decl.To); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", decl.Source, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for i, decl := range patch.Nodes {
		n := created[i]
		for _, name := range decl.InputNames() {
			in, ok := n.Input(name)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w: %s has no input %q", decl.Source, ErrSocketNotFound, n.Name(), name))
				continue
			}
			if err := g.SetValue(ctx, in, decl.Inputs[name]); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", decl.Source, err))
			}
		}
	}
	return errors.Join(errs...)
}
