package autofit

import (
	"fmt"
	"strings"
)

// EdgeMode selects how residual artifacts at the ends of the net signal
// are removed.
type EdgeMode int

const (
	// EdgeNone leaves the net signal untouched.
	EdgeNone EdgeMode = iota
	// EdgeBasic zeroes everything before the first and after the last
	// positive net value.
	EdgeBasic
	// EdgeFakePeak is EdgeBasic plus removal of an isolated positive run
	// starting at the first sample.
	EdgeFakePeak
	// EdgeStableRun zeroes samples until the raw signal stays above the
	// baseline for a whole window, then applies EdgeBasic.
	EdgeStableRun
)

var edgeNames = [...]string{"none", "basic", "fake-peak", "stable-run"}

// Valid reports whether m is a known mode.
func (m EdgeMode) Valid() bool {
	return m >= EdgeNone && int(m) < len(edgeNames)
}

func (m EdgeMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("EdgeMode(%d)", int(m))
	}

	return edgeNames[m]
}

// ParseEdgeMode converts a mode name as printed by String.
func ParseEdgeMode(s string) (EdgeMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range edgeNames {
		if n == name {
			return EdgeMode(i), nil
		}
	}

	return EdgeNone, fmt.Errorf("autofit: unknown edge mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m EdgeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *EdgeMode) UnmarshalText(text []byte) error {
	v, err := ParseEdgeMode(string(text))
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// SuppressEdges applies the fitter's edge mode to net in place. raw and
// baseline are the arrays net was derived from. The returned mask marks every
// sample the filter forced to zero.
func (f *Fitter) SuppressEdges(raw, baseline, net []float64) []bool {
	zeroed := make([]bool, len(net))

	switch f.cfg.edge {
	case EdgeNone:
		return zeroed
	case EdgeStableRun:
		stableRun(raw, baseline, net, zeroed, f.cfg.stableWindow, f.cfg.margin)
	}

	trimEnds(net, zeroed)

	if f.cfg.edge == EdgeFakePeak {
		fakePeak(net, zeroed, f.cfg.margin)
	}

	return zeroed
}

func zero(net []float64, zeroed []bool, from, to int) {
	for i := from; i < to; i++ {
		net[i] = 0
		zeroed[i] = true
	}
}

// trimEnds zeroes net ahead of the first and after the last positive sample.
func trimEnds(net []float64, zeroed []bool) {
	first, last := -1, -1
	for i, v := range net {
		if v > 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	if first < 0 {
		zero(net, zeroed, 0, len(net))
		return
	}

	zero(net, zeroed, 0, first)
	zero(net, zeroed, last+1, len(net))
}

// fakePeak zeroes a run of net > margin that starts at index 0, drops back to
// <= margin and is followed by more signal later on.
func fakePeak(net []float64, zeroed []bool, margin float64) {
	if len(net) == 0 || net[0] <= margin {
		return
	}

	end := 0
	for end < len(net) && net[end] > margin {
		end++
	}

	for i := end; i < len(net); i++ {
		if net[i] > margin {
			zero(net, zeroed, 0, end)
			return
		}
	}
}

// stableRun zeroes net until the first index where raw exceeds
// baseline+margin for window consecutive samples, then clears a short
// plateau at the very start if raw already sits above the baseline there.
func stableRun(raw, baseline, net []float64, zeroed []bool, window int, margin float64) {
	n := len(net)

	above := func(i int, m float64) bool {
		for j := 0; j < window && i+j < n; j++ {
			if raw[i+j] <= baseline[i+j]+m {
				return false
			}
		}
		return true
	}

	for i := 0; i < n-window; i++ {
		if above(i, margin) {
			break
		}
		zero(net, zeroed, i, i+1)
	}

	const plateau = 5
	for i := min(plateau, n) - 1; i >= 0; i-- {
		if above(i, 0) {
			zero(net, zeroed, 0, i+1)
			break
		}
	}
}
