package app

import (
	"github.com/specialistvlad/nodesynth/internal/registry"
	"github.com/specialistvlad/nodesynth/modules/add"
	"github.com/specialistvlad/nodesynth/modules/biquad"
	"github.com/specialistvlad/nodesynth/modules/destination"
	"github.com/specialistvlad/nodesynth/modules/envelope"
	"github.com/specialistvlad/nodesynth/modules/gain"
	"github.com/specialistvlad/nodesynth/modules/number"
	"github.com/specialistvlad/nodesynth/modules/oscillator"
)

// coreModules is the definitive list of node kinds compiled into the binary.
var coreModules = []registry.Module{
	&oscillator.Module{},
	&envelope.Module{},
	&destination.Module{},
	&number.Module{},
	&add.Module{},
	&biquad.Module{},
	&gain.Module{},
}
