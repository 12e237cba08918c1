// Package signal holds the (X,Y) sample model shared by the background
// subtraction packages, together with the plain-text reader and writer.
package signal

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned by signal construction and I/O.
var (
	ErrEmptySignal    = errors.New("signal: signal is empty")
	ErrLengthMismatch = errors.New("signal: X and Y lengths differ")
	ErrNotIncreasing  = errors.New("signal: X must be strictly increasing")
	ErrInputFormat    = errors.New("signal: malformed input")
)

// Signal is an ordered sequence of samples with strictly increasing X.
// Functions in this module never modify the slices of a Signal they receive.
type Signal struct {
	X []float64
	Y []float64
}

// New validates x and y and returns a Signal holding copies of both.
// Every value must be finite.
func New(x, y []float64) (Signal, error) {
	if len(x) != len(y) {
		return Signal{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return Signal{}, fmt.Errorf("%w: non-finite X at index %d", ErrInputFormat, i)
		}

		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return Signal{}, fmt.Errorf("%w: non-finite Y at index %d", ErrInputFormat, i)
		}

		if i > 0 && x[i] <= x[i-1] {
			return Signal{}, fmt.Errorf("%w: X[%d]=%g after X[%d]=%g", ErrNotIncreasing, i, x[i], i-1, x[i-1])
		}
	}

	return Signal{X: clone(x), Y: clone(y)}, nil
}

// Len returns the number of samples.
func (s Signal) Len() int {
	return len(s.X)
}

// Empty reports whether the signal has no samples.
func (s Signal) Empty() bool {
	return len(s.X) == 0
}

// Range returns the first and last X value. It returns zeros for an empty signal.
func (s Signal) Range() (xmin, xmax float64) {
	if len(s.X) == 0 {
		return 0, 0
	}

	return s.X[0], s.X[len(s.X)-1]
}

// Slice returns samples [start, end) as a new Signal. Indices are clipped to
// the signal bounds.
func (s Signal) Slice(start, end int) Signal {
	if start < 0 {
		start = 0
	}

	if end > len(s.X) {
		end = len(s.X)
	}

	if start >= end {
		return Signal{}
	}

	return Signal{X: clone(s.X[start:end]), Y: clone(s.Y[start:end])}
}

// Between returns the samples with xmin <= X <= xmax and the index of the
// first returned sample in s. The index is -1 when nothing is selected.
func (s Signal) Between(xmin, xmax float64) (Signal, int) {
	lo := sort.SearchFloat64s(s.X, xmin)
	hi := sort.Search(len(s.X), func(i int) bool { return s.X[i] > xmax })

	if lo >= hi {
		return Signal{}, -1
	}

	return s.Slice(lo, hi), lo
}

// NearestIndex returns the index of the sample whose X is closest to x.
// On a tie the upper sample wins. It returns -1 for an empty signal.
func (s Signal) NearestIndex(x float64) int {
	return NearestIndex(s.X, x)
}

// NearestIndex returns the index of the element of the sorted slice xs that
// is closest to x, or -1 when xs is empty.
func NearestIndex(xs []float64, x float64) int {
	if len(xs) == 0 {
		return -1
	}

	idx := sort.SearchFloat64s(xs, x)
	if idx > 0 && (idx == len(xs) || math.Abs(x-xs[idx-1]) < math.Abs(x-xs[idx])) {
		return idx - 1
	}

	return idx
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}

	out := make([]float64, len(v))
	copy(out, v)

	return out
}
