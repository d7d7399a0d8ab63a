package backend

import (
	"fmt"
	"io"
)

// Client is the Adapter implementation that expresses every capability call
// as a Command delivered to a Sink.
type Client struct {
	sink        Sink
	clock       Clock
	seq         int
	destination *handle
}

// NewClient creates an adapter writing to sink and reading time from clock.
// A nil clock defaults to a WallClock started now.
func NewClient(sink Sink, clock Clock) *Client {
	if clock == nil {
		clock = NewWallClock()
	}
	return &Client{sink: sink, clock: clock}
}

// CreateNode asks the audio host for a new node. The destination is a
// singleton: every request for it returns the same handle.
func (c *Client) CreateNode(kind Kind, params map[string]float64) (Handle, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if kind == KindDestination {
		if c.destination == nil {
			c.destination = &handle{client: c, address: string(KindDestination), kind: kind}
		}
		return c.destination, nil
	}

	c.seq++
	h := &handle{client: c, address: fmt.Sprintf("%s-%d", kind, c.seq), kind: kind}
	c.sink.Send(Command{Op: OpCreate, Target: h.address, Kind: kind, Params: params})

	if kind == KindOscillator {
		return &oscillator{handle: h}, nil
	}
	return h, nil
}

// CurrentTime returns the audio clock in seconds.
func (c *Client) CurrentTime() float64 {
	return c.clock.Now()
}

// Close releases the sink if it holds resources.
func (c *Client) Close() error {
	if closer, ok := c.sink.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// handle is the plain backend node: every call becomes exactly one command.
type handle struct {
	client  *Client
	address string
	kind    Kind
}

func (h *handle) Address() string { return h.address }
func (h *handle) Kind() Kind      { return h.kind }

func (h *handle) Start() {
	h.client.sink.Send(Command{Op: OpStart, Target: h.address})
}

func (h *handle) Stop() {
	h.client.sink.Send(Command{Op: OpStop, Target: h.address})
}

func (h *handle) SetParam(name string, value float64) {
	h.client.sink.Send(Command{Op: OpSetParam, Target: h.address, Param: name, Value: value})
}

func (h *handle) Param(name string) (Param, bool) {
	if name == "" {
		return nil, false
	}
	return &param{owner: h, name: name}, true
}

func (h *handle) Connect(receiver Endpoint) {
	h.client.sink.Send(Command{Op: OpConnect, Target: h.address, Receiver: receiver.Address()})
}

func (h *handle) Disconnect(receiver Endpoint) {
	h.client.sink.Send(Command{Op: OpDisconnect, Target: h.address, Receiver: receiver.Address()})
}

type param struct {
	owner *handle
	name  string
}

func (p *param) Address() string { return p.owner.address + "." + p.name }
func (p *param) Name() string    { return p.name }

func (p *param) SetValueAtTime(value, t float64) {
	p.owner.client.sink.Send(Command{Op: OpSetValueAtTime, Target: p.owner.address, Param: p.name, Value: value, Time: t})
}

func (p *param) LinearRampToValueAtTime(value, t float64) {
	p.owner.client.sink.Send(Command{Op: OpLinearRamp, Target: p.owner.address, Param: p.name, Value: value, Time: t})
}
