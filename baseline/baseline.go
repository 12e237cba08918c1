// Package baseline builds background curves from anchor points.
//
// A [Baseline] is defined on a sub-domain of a signal and is sampled at the
// signal's own X values; it is never resampled onto a new grid.
package baseline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/dsp/interp"
	"github.com/cwbudde/algo-bground/signal"
)

// Errors returned by Compute.
var (
	ErrInsufficientAnchors = errors.New("baseline: not enough anchors for interpolation kind")
	ErrComputation         = errors.New("baseline: interpolation failed")
)

// Baseline is a background curve sampled at X over [X[0], X[len-1]].
type Baseline struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (b Baseline) Len() int {
	return len(b.X)
}

// Empty reports whether the baseline has no samples.
func (b Baseline) Empty() bool {
	return len(b.X) == 0
}

// Domain returns the X interval covered by the baseline.
func (b Baseline) Domain() (xmin, xmax float64) {
	if len(b.X) == 0 {
		return 0, 0
	}

	return b.X[0], b.X[len(b.X)-1]
}

// Contains reports whether x lies inside the baseline domain.
func (b Baseline) Contains(x float64) bool {
	if len(b.X) == 0 {
		return false
	}

	lo, hi := b.Domain()

	return x >= lo && x <= hi
}

// Compute interpolates the anchors with a spline of the given kind and
// samples it at the X values of sig inside [min anchor x, max anchor x].
//
// Anchors must be sorted; sort them with [anchor.Set.Sort] first. Repeated
// identical points, as produced by adding the same sample twice, count once.
// Two anchors with equal X but different Y are ErrComputation. Fewer
// distinct anchors than kind requires yields ErrInsufficientAnchors; any
// other interpolation problem yields ErrComputation and no baseline.
func Compute(sig signal.Signal, anchors anchor.Set, kind anchor.Kind) (Baseline, error) {
	if !kind.Valid() {
		return Baseline{}, fmt.Errorf("%w: invalid kind %d", ErrComputation, int(kind))
	}

	x, y := collapse(anchors.XY())
	if n := distinct(x); n < kind.MinAnchors() {
		return Baseline{}, fmt.Errorf("%w: %s needs %d, have %d", ErrInsufficientAnchors, kind, kind.MinAnchors(), n)
	}

	spline, err := interp.NewBSpline(x, y, kind.Degree())
	if err != nil {
		return Baseline{}, fmt.Errorf("%w: %w", ErrComputation, err)
	}

	sub, _ := sig.Between(x[0], x[len(x)-1])
	if sub.Empty() {
		return Baseline{}, fmt.Errorf("%w: no samples between %g and %g", ErrComputation, x[0], x[len(x)-1])
	}

	out := Baseline{X: sub.X, Y: make([]float64, sub.Len())}
	spline.Eval(out.Y, out.X)

	return out, nil
}

// collapse drops points equal to the previous kept point in both
// coordinates. It reuses the backing arrays of x and y.
func collapse(x, y []float64) ([]float64, []float64) {
	if len(x) < 2 {
		return x, y
	}

	ox, oy := x[:1], y[:1]
	for i := 1; i < len(x); i++ {
		if last := len(ox) - 1; x[i] == ox[last] && y[i] == oy[last] {
			continue
		}
		ox = append(ox, x[i])
		oy = append(oy, y[i])
	}

	return ox, oy
}

func distinct(x []float64) int {
	seen := make(map[float64]struct{}, len(x))
	for _, v := range x {
		seen[v] = struct{}{}
	}

	return len(seen)
}
