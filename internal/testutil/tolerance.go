package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t on the first element below zero.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if v < 0 {
			t.Fatalf("index %d: %v < 0", i, v)
		}
	}
}

// RequireNonIncreasing fails t if data[i] > data[i-1] anywhere.
func RequireNonIncreasing(t *testing.T, data []float64) {
	t.Helper()

	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			t.Fatalf("index %d: %v increases from %v", i, data[i], data[i-1])
		}
	}
}

// RequireAtMost fails t if got[i] > bound[i] for any i. Both slices must
// have the same length.
func RequireAtMost(t *testing.T, got, bound []float64) {
	t.Helper()

	if len(got) != len(bound) {
		t.Fatalf("length mismatch: got %d, bound %d", len(got), len(bound))
	}

	for i := range got {
		if got[i] > bound[i] {
			t.Fatalf("index %d: %v exceeds %v", i, got[i], bound[i])
		}
	}
}

// MaxAbsDiff returns the largest absolute element difference, or an error
// when the lengths differ.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	var worst float64
	for i := range a {
		worst = max(worst, math.Abs(a[i]-b[i]))
	}

	return worst, nil
}
