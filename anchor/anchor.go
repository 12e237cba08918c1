// Package anchor manages the user-selected points that define a background
// curve, and reads and writes them in the anchor file format.
//
// A [Set] is a value: Add, Remove and Sort return a new Set and never modify
// the receiver, so an interactive caller can keep the previous state around
// until a recomputation succeeds.
package anchor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-bground/signal"
)

// ErrEmptySet is returned when removing from a set without points.
var ErrEmptySet = errors.New("anchor: set is empty")

// Point is a single anchor.
type Point struct {
	X float64
	Y float64
}

// Set is an ordered collection of anchor points.
type Set struct {
	points []Point
}

// FromPoints returns a Set holding a copy of pts in the given order.
func FromPoints(pts ...Point) Set {
	return Set{points: append([]Point(nil), pts...)}
}

// Len returns the number of anchors.
func (s Set) Len() int {
	return len(s.points)
}

// Points returns a copy of the anchors in their current order.
func (s Set) Points() []Point {
	return append([]Point(nil), s.points...)
}

// XY returns the anchor coordinates as two parallel slices.
func (s Set) XY() (x, y []float64) {
	x = make([]float64, len(s.points))
	y = make([]float64, len(s.points))
	for i, p := range s.points {
		x[i] = p.X
		y[i] = p.Y
	}

	return x, y
}

// Sorted reports whether the anchors are in non-decreasing X order.
func (s Set) Sorted() bool {
	return sort.SliceIsSorted(s.points, func(i, j int) bool { return s.points[i].X < s.points[j].X })
}

// Add appends the sample of sig whose X is closest to x. The anchor takes the
// sample's exact coordinates, never the cursor position. Anchors are not
// deduplicated.
func (s Set) Add(sig signal.Signal, x float64) (Set, error) {
	idx := sig.NearestIndex(x)
	if idx < 0 {
		return s, signal.ErrEmptySignal
	}

	out := make([]Point, len(s.points), len(s.points)+1)
	copy(out, s.points)
	out = append(out, Point{X: sig.X[idx], Y: sig.Y[idx]})

	return Set{points: out}, nil
}

// Remove sorts the set and drops the anchor whose X is closest to x.
func (s Set) Remove(x float64) (Set, error) {
	if len(s.points) == 0 {
		return s, ErrEmptySet
	}

	sorted := s.Sort()
	xs, _ := sorted.XY()
	idx := signal.NearestIndex(xs, x)

	out := make([]Point, 0, len(sorted.points)-1)
	out = append(out, sorted.points[:idx]...)
	out = append(out, sorted.points[idx+1:]...)

	return Set{points: out}, nil
}

// Sort returns the set ordered by X. Anchors with equal X keep their order.
func (s Set) Sort() Set {
	out := s.Points()
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })

	return Set{points: out}
}

// String implements fmt.Stringer.
func (s Set) String() string {
	return fmt.Sprintf("anchor.Set%v", s.points)
}
