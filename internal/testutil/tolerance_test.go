package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.1, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestShapeChecksPass(t *testing.T) {
	_, decay := ExpDecay(50, 10, 0.1, 1)

	RequireFinite(t, decay)
	RequireNonNegative(t, decay)
	RequireNonIncreasing(t, decay)
	RequireAtMost(t, DC(1, 50), decay)
	RequireSliceNearlyEqual(t, decay, decay, 0)
}
