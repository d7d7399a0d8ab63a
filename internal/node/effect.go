package node

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Effect is a unit of behavior returned by a kind's Reaction or Transform.
type Effect interface {
	apply(n *Node) error
}

// RampPoint is one breakpoint of a parameter ramp. At is relative to the
// backend clock at the time the ramp is applied.
type RampPoint struct {
	At    float64
	Value float64
}

// Transmit sends value on the output at index.
func Transmit(output int, value cty.Value) Effect {
	return transmitEffect{output: output, value: value}
}

// Start starts the node's backend handle.
func Start() Effect { return startEffect{} }

// Stop stops the node's backend handle.
func Stop() Effect { return stopEffect{} }

// SetParam sets a backend parameter to value immediately.
func SetParam(name string, value float64) Effect {
	return setParamEffect{name: name, value: value}
}

// Ramp schedules a parameter envelope: the first point is set at its time,
// every following point is reached by a linear ramp.
func Ramp(param string, points ...RampPoint) Effect {
	return rampEffect{param: param, points: points}
}

type transmitEffect struct {
	output int
	value  cty.Value
}

func (e transmitEffect) apply(n *Node) error {
	if e.output < 0 || e.output >= len(n.outputs) {
		return fmt.Errorf("%s: no output %d", n.name, e.output)
	}
	return n.outputs[e.output].TransmitToAllWires(e.value)
}

type startEffect struct{}

func (startEffect) apply(n *Node) error {
	h, err := n.requireHandle()
	if err != nil {
		return err
	}
	h.Start()
	return nil
}

type stopEffect struct{}

func (stopEffect) apply(n *Node) error {
	h, err := n.requireHandle()
	if err != nil {
		return err
	}
	h.Stop()
	return nil
}

type setParamEffect struct {
	name  string
	value float64
}

func (e setParamEffect) apply(n *Node) error {
	h, err := n.requireHandle()
	if err != nil {
		return err
	}
	h.SetParam(e.name, e.value)
	return nil
}

type rampEffect struct {
	param  string
	points []RampPoint
}

func (e rampEffect) apply(n *Node) error {
	h, err := n.requireHandle()
	if err != nil {
		return err
	}
	p, ok := h.Param(e.param)
	if !ok {
		return fmt.Errorf("%s: backend has no parameter %q", n.name, e.param)
	}
	now := 0.0
	if n.clock != nil {
		now = n.clock.CurrentTime()
	}
	for i, pt := range e.points {
		if i == 0 {
			p.SetValueAtTime(pt.Value, now+pt.At)
			continue
		}
		p.LinearRampToValueAtTime(pt.Value, now+pt.At)
	}
	return nil
}
