package node

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Status is the propagation state of a socket or node.
type Status int

const (
	// Idle means no recompute is pending.
	Idle Status = iota
	// Pending means a new value is in flight and the current one is stale.
	Pending
	// Ready means the new value has arrived.
	Ready
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ValueType is the declared type of a socket.
type ValueType int

const (
	TypeBool ValueType = iota
	TypeNumber
	TypeParam
	TypeTrigger
	TypeSignal
)

var valueTypeNames = map[ValueType]string{
	TypeBool:    "bool",
	TypeNumber:  "number",
	TypeParam:   "param",
	TypeTrigger: "trigger",
	TypeSignal:  "signal",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// ParseValueType converts a type name into a ValueType.
func ParseValueType(s string) (ValueType, error) {
	for t, name := range valueTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown socket type %q", s)
}

// IsData reports whether sockets of this type take part in the value protocol.
func (t ValueType) IsData() bool {
	return t != TypeSignal
}

// CtyType is the type values on this socket are converted to. Signal sockets
// carry no values and report cty.NilType.
func (t ValueType) CtyType() cty.Type {
	switch t {
	case TypeBool, TypeTrigger:
		return cty.Bool
	case TypeNumber, TypeParam:
		return cty.Number
	}
	return cty.NilType
}

// Zero is the value a socket of this type holds before anything arrives.
func (t ValueType) Zero() cty.Value {
	switch t {
	case TypeBool, TypeTrigger:
		return cty.False
	case TypeNumber, TypeParam:
		return cty.Zero
	}
	return cty.NilVal
}

// CanConnect reports whether an output of type out may be wired to an input
// of type in.
func CanConnect(out, in ValueType) bool {
	switch {
	case out == in:
		return true
	case in == TypeParam:
		return out == TypeNumber || out == TypeSignal
	}
	return false
}

// Slug normalises a socket label into the name used in addresses:
// lower-case, with spaces replaced by underscores.
func Slug(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
