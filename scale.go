package databox

import (
	"fmt"
	"math"
	"strings"
)

// ScaleType selects how data values on one axis map to pixels.
type ScaleType uint8

const (
	// ScaleLinear maps values proportionally.
	ScaleLinear ScaleType = iota
	// ScaleLog2 maps the base-2 logarithm of values proportionally.
	ScaleLog2
	// ScaleLog10 maps the base-10 logarithm of values proportionally.
	ScaleLog10
)

// String returns the scale type name.
func (s ScaleType) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleLog2:
		return "log2"
	case ScaleLog10:
		return "log10"
	default:
		return fmt.Sprintf("ScaleType(%d)", uint8(s))
	}
}

// ParseScaleType parses a scale type name as returned by String.
// Matching is case-insensitive; "log" is accepted as log10.
func ParseScaleType(s string) (ScaleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lin":
		return ScaleLinear, nil
	case "log2":
		return ScaleLog2, nil
	case "log10", "log":
		return ScaleLog10, nil
	default:
		return ScaleLinear, fmt.Errorf("%w: %q", ErrUnknownScaleType, s)
	}
}

// IsLog reports whether s is a logarithmic scale.
func (s ScaleType) IsLog() bool {
	return s == ScaleLog2 || s == ScaleLog10
}

func (s ScaleType) valid() bool {
	return s <= ScaleLog10
}

// project returns the position of v along an axis spanning [from, to],
// measured in the scale's own units (value for linear, log for log scales)
// relative to from.
func (s ScaleType) project(v, from float64) float64 {
	switch s {
	case ScaleLog2:
		return math.Log2(v / from)
	case ScaleLog10:
		return math.Log10(v / from)
	default:
		return v - from
	}
}

// unproject is the inverse of project.
func (s ScaleType) unproject(d, from float64) float64 {
	switch s {
	case ScaleLog2:
		return from * math.Exp2(d)
	case ScaleLog10:
		return from * math.Pow(10, d)
	default:
		return from + d
	}
}

// checkLimits validates one axis' pair of limits for this scale.
func (s ScaleType) checkLimits(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a == b {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidLimits, a, b)
	}
	if s.IsLog() && (a <= 0 || b <= 0) {
		return fmt.Errorf("%w: [%g, %g] on %s axis", ErrNonPositiveLogLimits, a, b, s)
	}
	return nil
}
