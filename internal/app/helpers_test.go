package app

import (
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
)

// brokenModule registers a kind whose signal output has no backend.
type brokenModule struct{}

func (brokenModule) Register(r *registry.Registry) {
	r.Register(&node.Spec{
		Kind:    "broken",
		Outputs: []node.SocketSpec{{Label: "Out", Type: node.TypeSignal}},
	})
}
