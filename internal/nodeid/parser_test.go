package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Address
	}{
		{
			name:     "named socket",
			raw:      "osc.freq",
			expected: Address{Node: "osc", Socket: NewSegment("freq")},
		},
		{
			name:     "positional input",
			raw:      "filter.in[3]",
			expected: Address{Node: "filter", Socket: NewIndexedSegment("in", 3)},
		},
		{
			name:     "uuid node name",
			raw:      "6f1c2a1e-9a53-4c1b-8d9e-3d2b5f0b7a11.out[0]",
			expected: Address{Node: "6f1c2a1e-9a53-4c1b-8d9e-3d2b5f0b7a11", Socket: NewIndexedSegment("out", 0)},
		},
		{name: "error - empty", raw: "", expectErr: true},
		{name: "error - no socket", raw: "osc", expectErr: true},
		{name: "error - empty node", raw: ".freq", expectErr: true},
		{name: "error - nested path", raw: "a.b.c", expectErr: true},
		{name: "error - bad index", raw: "osc.in[x]", expectErr: true},
		{name: "error - indexed label", raw: "osc.freq[1]", expectErr: true},
		{name: "error - lone hyphen node", raw: "-.freq", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, addr)
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	for _, raw := range []string{"osc.freq", "add.in[1]", "my_node-2.out[0]"} {
		t.Run(raw, func(t *testing.T) {
			addr, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, addr.String())
		})
	}
}

func TestParsePair(t *testing.T) {
	from, to, err := ParsePair("osc.signal", "out.signal")
	require.NoError(t, err)
	assert.Equal(t, New("osc", "signal"), from)
	assert.Equal(t, New("out", "signal"), to)

	_, _, err = ParsePair("osc.signal", "nope")
	assert.ErrorContains(t, err, "to:")
}
