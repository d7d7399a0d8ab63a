package backend

// Op is the verb of a backend command.
type Op string

const (
	OpCreate         Op = "create"
	OpStart          Op = "start"
	OpStop           Op = "stop"
	OpSetParam       Op = "set-param"
	OpSetValueAtTime Op = "set-value-at-time"
	OpLinearRamp     Op = "linear-ramp"
	OpConnect        Op = "connect"
	OpDisconnect     Op = "disconnect"
)

// Command is one fire-and-forget instruction for the audio host.
type Command struct {
	Op       Op                 `json:"op"`
	Target   string             `json:"target"`
	Kind     Kind               `json:"kind,omitempty"`
	Receiver string             `json:"receiver,omitempty"`
	Param    string             `json:"param,omitempty"`
	Value    float64            `json:"value,omitempty"`
	Time     float64            `json:"time,omitempty"`
	Params   map[string]float64 `json:"params,omitempty"`
}

// Sink receives commands in the order they are issued.
type Sink interface {
	Send(cmd Command)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(cmd Command)

// Send implements Sink.
func (f SinkFunc) Send(cmd Command) { f(cmd) }
