package terrain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEdgeMode is returned by ParseEdgeMode.
var ErrUnknownEdgeMode = errors.New("unknown edge mode")

// EdgeMode decides what happens when a ray leaves the map.
type EdgeMode uint8

const (
	// EdgeWrap tiles the map infinitely in both directions.
	EdgeWrap EdgeMode = iota
	// EdgeClamp repeats the border texels.
	EdgeClamp
	// EdgeStop ends the column's march at the first step outside the map.
	EdgeStop
)

// String returns the config name of the mode.
func (e EdgeMode) String() string {
	switch e {
	case EdgeWrap:
		return "wrap"
	case EdgeClamp:
		return "clamp"
	case EdgeStop:
		return "stop"
	default:
		return fmt.Sprintf("EdgeMode(%d)", e)
	}
}

// ParseEdgeMode parses "wrap", "clamp" or "stop" (case-insensitive).
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return EdgeWrap, nil
	case "clamp":
		return EdgeClamp, nil
	case "stop":
		return EdgeStop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEdgeMode, s)
}

// Resolve maps an arbitrary texel coordinate into the map under mode.
// ok is false only for EdgeStop with an out-of-range coordinate.
func (m *Map) Resolve(x, y int, mode EdgeMode) (rx, ry int, ok bool) {
	if m.InBounds(x, y) {
		return x, y, true
	}
	switch mode {
	case EdgeWrap:
		return wrap(x, m.width), wrap(y, m.height), true
	case EdgeClamp:
		return clamp(x, m.width), clamp(y, m.height), true
	default:
		return x, y, false
	}
}

// wrap returns v modulo n in [0, n), also for negative v.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
