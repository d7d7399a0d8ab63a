package backend

import "errors"

// ErrUnknownKind is returned when a backend node of an unsupported kind is requested.
var ErrUnknownKind = errors.New("unknown backend kind")

// Kind names a backend node type understood by the audio host.
type Kind string

const (
	KindOscillator   Kind = "oscillator"
	KindConstant     Kind = "constant"
	KindBiquadFilter Kind = "biquad-filter"
	KindGain         Kind = "gain"
	KindDestination  Kind = "destination"
)

// Valid reports whether the kind is one the audio host knows how to build.
func (k Kind) Valid() bool {
	switch k {
	case KindOscillator, KindConstant, KindBiquadFilter, KindGain, KindDestination:
		return true
	}
	return false
}

// Endpoint is anything a signal can be routed into: a backend node or one of
// its parameters.
type Endpoint interface {
	Address() string
}

// Param is a continuous parameter of a backend node that can be automated or
// used as the receiving end of a signal connection.
type Param interface {
	Endpoint
	Name() string
	SetValueAtTime(value, t float64)
	LinearRampToValueAtTime(value, t float64)
}

// Handle is the capability a graph node holds on its backend counterpart.
type Handle interface {
	Endpoint
	Kind() Kind
	Start()
	Stop()
	SetParam(name string, value float64)
	Param(name string) (Param, bool)
	Connect(receiver Endpoint)
	Disconnect(receiver Endpoint)
}

// ConnectionObserver is implemented by handles that need to react once a
// signal connection has been made or removed, e.g. to start producing
// signal lazily.
type ConnectionObserver interface {
	OnConnect(receiver Endpoint)
	OnDisconnect(receiver Endpoint)
}

// Adapter creates backend nodes and exposes the audio host's clock.
type Adapter interface {
	CreateNode(kind Kind, params map[string]float64) (Handle, error)
	CurrentTime() float64
	Close() error
}
