package node

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Number wraps a float64 into a cty number.
func Number(f float64) cty.Value {
	return cty.NumberFloatVal(f)
}

// Bool wraps a bool into a cty bool.
func Bool(b bool) cty.Value {
	return cty.BoolVal(b)
}

// Float extracts a float64 from a known, non-null cty number.
func Float(v cty.Value) (float64, bool) {
	if v == cty.NilVal || !v.IsKnown() || v.IsNull() || !v.Type().Equals(cty.Number) {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}

// Truthy extracts a bool from a known, non-null cty bool.
func Truthy(v cty.Value) bool {
	if v == cty.NilVal || !v.IsKnown() || v.IsNull() || !v.Type().Equals(cty.Bool) {
		return false
	}
	return v.True()
}

// coerce converts v to the cty type of t.
func coerce(t ValueType, v cty.Value) (cty.Value, error) {
	if !t.IsData() {
		return cty.NilVal, fmt.Errorf("%w: %s sockets carry no values", ErrInvalidValue, t)
	}
	if v == cty.NilVal || v.IsNull() || !v.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("%w: value must be known and not null", ErrInvalidValue)
	}
	out, err := convert.Convert(v, t.CtyType())
	if err != nil {
		return cty.NilVal, fmt.Errorf("%w: cannot use %s as %s: %v", ErrInvalidValue, v.Type().FriendlyName(), t, err)
	}
	return out, nil
}
