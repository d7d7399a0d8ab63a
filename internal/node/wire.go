package node

// Wire is a directed edge from one output to one input.
type Wire struct {
	output *Output
	input  *Input
}

// NewWire creates an unattached wire between out and in.
func NewWire(out *Output, in *Input) *Wire {
	return &Wire{output: out, input: in}
}

func (w *Wire) Output() *Output { return w.output }
func (w *Wire) Input() *Input   { return w.input }

// IsSignal reports whether the wire routes a continuous signal rather than
// discrete values.
func (w *Wire) IsSignal() bool {
	return w.output.typ == TypeSignal
}

// IsAttached reports whether both ends currently reference the wire.
func (w *Wire) IsAttached() bool {
	if w.input.wire != w {
		return false
	}
	for _, existing := range w.output.wires {
		if existing == w {
			return true
		}
	}
	return false
}

func (w *Wire) String() string {
	return w.output.Address() + " -> " + w.input.Address()
}

// Attach records w on both ends. A wire previously held by the input is
// detached and returned.
func Attach(w *Wire) *Wire {
	old := w.input.SetWire(w)
	w.output.AddWire(w)
	return old
}

// Detach removes w from both ends. It reports whether w was attached.
func Detach(w *Wire) bool {
	if w.input.wire == w {
		w.input.RemoveWire()
		return true
	}
	return w.output.RemoveWire(w)
}
