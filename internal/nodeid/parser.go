package nodeid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	nodeNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// segmentRegex matches the socket part, e.g. `freq` or `in[1]`.
	segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+)\])?$`)
)

// ValidNodeName reports whether name can appear as the node part of an
// address.
func ValidNodeName(name string) bool {
	return nodeNameRegex.MatchString(name) && name != "-"
}

// Parse reads an address of the form `node.socket`.
func Parse(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("address cannot be empty")
	}
	nodeName, socket, ok := strings.Cut(raw, ".")
	if !ok {
		return Address{}, fmt.Errorf("address %q must have the form node.socket", raw)
	}
	if !ValidNodeName(nodeName) {
		return Address{}, fmt.Errorf("invalid node name: %q", nodeName)
	}

	matches := segmentRegex.FindStringSubmatch(socket)
	if matches == nil {
		return Address{}, fmt.Errorf("invalid socket reference: %q", socket)
	}

	seg := NewSegment(matches[1])
	if matches[2] != "" {
		if seg.Name != "in" && seg.Name != "out" {
			return Address{}, fmt.Errorf("positional socket must be in[N] or out[N], got %q", socket)
		}
		index, err := strconv.Atoi(matches[2])
		if err != nil {
			return Address{}, fmt.Errorf("socket index %q: %w", matches[2], err)
		}
		seg.Index = index
	}
	return Address{Node: nodeName, Socket: seg}, nil
}

// ParsePair reads a `from` and a `to` address in one go.
func ParsePair(from, to string) (Address, Address, error) {
	src, err := Parse(from)
	if err != nil {
		return Address{}, Address{}, fmt.Errorf("from: %w", err)
	}
	dst, err := Parse(to)
	if err != nil {
		return Address{}, Address{}, fmt.Errorf("to: %w", err)
	}
	return src, dst, nil
}
