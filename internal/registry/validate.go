package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ValidateRegistry checks every registered spec for consistency.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, kind := range r.Kinds() {
		spec := r.specs[kind]
		errs = append(errs, validateSockets(spec, "input", spec.Inputs)...)
		errs = append(errs, validateSockets(spec, "output", spec.Outputs)...)

		for _, s := range spec.Inputs {
			if s.Param != "" && spec.Backend == "" {
				errs = append(errs, fmt.Sprintf("kind '%s', input '%s': param input without a backend node", kind, s.Label))
			}
			if s.Type == node.TypeParam && s.Param == "" {
				errs = append(errs, fmt.Sprintf("kind '%s', input '%s': param input does not name its backend parameter", kind, s.Label))
			}
		}
		for _, s := range spec.Outputs {
			if s.Type == node.TypeSignal && spec.Backend == "" {
				errs = append(errs, fmt.Sprintf("kind '%s', output '%s': signal output without a backend node", kind, s.Label))
			}
		}
		if spec.AutoStart && spec.Backend == "" {
			errs = append(errs, fmt.Sprintf("kind '%s': auto-start without a backend node", kind))
		}
		if spec.Backend != "" && !spec.Backend.Valid() {
			errs = append(errs, fmt.Sprintf("kind '%s': unknown backend kind '%s'", kind, spec.Backend))
		}
		if spec.Transform == nil && spec.Reaction == nil {
			logger.Debug("Node kind has no behavior of its own.", "kind", kind)
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func validateSockets(spec *node.Spec, direction string, sockets []node.SocketSpec) []string {
	var errs []string
	seen := make(map[string]struct{})
	for _, s := range sockets {
		name := node.Slug(s.Label)
		if name == "" {
			errs = append(errs, fmt.Sprintf("kind '%s': %s without a label", spec.Kind, direction))
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Sprintf("kind '%s': duplicate %s '%s'", spec.Kind, direction, name))
		}
		seen[name] = struct{}{}

		if s.Default == cty.NilVal {
			continue
		}
		if !s.Type.IsData() {
			errs = append(errs, fmt.Sprintf("kind '%s', %s '%s': signal sockets cannot have defaults", spec.Kind, direction, name))
			continue
		}
		if _, err := convert.Convert(s.Default, s.Type.CtyType()); err != nil {
			errs = append(errs, fmt.Sprintf("kind '%s', %s '%s': default is not a %s: %v", spec.Kind, direction, name, s.Type, err))
		}
	}
	return errs
}
