package nodeid

import "fmt"

// Segment is the socket half of an address, e.g. `freq` or `in[1]`.
type Segment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewSegment creates a segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewIndexedSegment creates a positional segment such as `in[2]`.
func NewIndexedSegment(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// HasIndex returns true if the segment has an explicit index.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

func (s Segment) String() string {
	if !s.HasIndex() {
		return s.Name
	}
	return fmt.Sprintf("%s[%d]", s.Name, s.Index)
}

// Address names one socket of one node.
type Address struct {
	Node   string
	Socket Segment
}

// New builds an address from a node name and a socket name.
func New(nodeName, socket string) Address {
	return Address{Node: nodeName, Socket: NewSegment(socket)}
}

// String serializes the address into its canonical form.
func (a Address) String() string {
	return a.Node + "." + a.Socket.String()
}
