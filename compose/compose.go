// Package compose combines a signal and a baseline into the four-column
// result (X, raw, background, net) and writes it out.
package compose

import (
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bground/baseline"
	"github.com/cwbudde/algo-bground/dsp/interp"
	"github.com/cwbudde/algo-bground/signal"
)

// Result holds four parallel columns aligned with the input X values.
// Background and Net are zero outside the baseline domain and Net is never
// negative.
type Result struct {
	X          []float64
	Raw        []float64
	Background []float64
	Net        []float64
}

// Len returns the number of rows.
func (r Result) Len() int {
	return len(r.X)
}

// NetSignal returns the net column as a Signal.
func (r Result) NetSignal() signal.Signal {
	return signal.Signal{X: append([]float64(nil), r.X...), Y: append([]float64(nil), r.Net...)}
}

// Compose evaluates bl at the X values of sig. Samples of sig that are not
// baseline samples are interpolated linearly between the neighbouring
// baseline points. Compose does not modify its inputs and always returns the
// same result for the same inputs.
func Compose(sig signal.Signal, bl baseline.Baseline) Result {
	n := sig.Len()
	res := Result{
		X:          append([]float64(nil), sig.X...),
		Raw:        append([]float64(nil), sig.Y...),
		Background: make([]float64, n),
		Net:        make([]float64, n),
	}

	inside := make([]float64, n)
	for i, x := range sig.X {
		if bl.Contains(x) {
			inside[i] = 1
			res.Background[i] = sample(bl, x)
		}
	}

	// net = max(raw - background, 0) inside the domain, 0 outside.
	vecmath.ScaleBlock(res.Net, res.Background, -1)
	vecmath.AddBlockInPlace(res.Net, res.Raw)
	for i, v := range res.Net {
		res.Net[i] = max(v, 0)
	}
	vecmath.MulBlockInPlace(res.Net, inside)

	return res
}

// ZeroWhere returns a copy of r with Net set to zero wherever zero(i) is true.
func (r Result) ZeroWhere(zero func(i int) bool) Result {
	keep := make([]float64, len(r.Net))
	for i := range keep {
		if !zero(i) {
			keep[i] = 1
		}
	}

	out := Result{
		X:          append([]float64(nil), r.X...),
		Raw:        append([]float64(nil), r.Raw...),
		Background: append([]float64(nil), r.Background...),
		Net:        make([]float64, len(r.Net)),
	}
	vecmath.MulBlock(out.Net, r.Net, keep)

	return out
}

func sample(bl baseline.Baseline, x float64) float64 {
	i := sort.SearchFloat64s(bl.X, x)
	if i < len(bl.X) && bl.X[i] == x {
		return bl.Y[i]
	}

	return interp.Linear(bl.X[i-1], bl.Y[i-1], bl.X[i], bl.Y[i], x)
}
