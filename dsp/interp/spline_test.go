package interp

import (
	"errors"
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	if got := Linear(0, 2, 4, 4, 1); got != 2.5 {
		t.Fatalf("got %v want 2.5", got)
	}
	if got := Linear(1, 7, 1, 9, 1); got != 7 {
		t.Fatalf("degenerate: got %v want 7", got)
	}
}

func TestBSplinePassesThroughPoints(t *testing.T) {
	x := []float64{0, 1.5, 3, 4, 7, 9}
	y := []float64{10, 8, 7.5, 7, 5, 4.8}

	for degree := 1; degree <= 3; degree++ {
		s, err := NewBSpline(x, y, degree)
		if err != nil {
			t.Fatalf("degree %d: %v", degree, err)
		}
		for i := range x {
			if got := s.At(x[i]); math.Abs(got-y[i]) > 1e-9 {
				t.Errorf("degree %d: At(%v) = %v, want %v", degree, x[i], got, y[i])
			}
		}
	}
}

func TestBSplineLinearIsPiecewiseLinear(t *testing.T) {
	s, err := NewBSpline([]float64{0, 2, 6}, []float64{0, 4, 0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct{ x, want float64 }{
		{x: 1, want: 2},
		{x: 3, want: 3},
		{x: 5, want: 1},
	} {
		if got := s.At(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestBSplineReproducesPolynomials(t *testing.T) {
	x := []float64{0, 1, 2.5, 3, 5, 6, 8}
	quad := func(v float64) float64 { return 0.5*v*v - 3*v + 2 }
	cubic := func(v float64) float64 { return 0.1*v*v*v - v*v + 4 }

	for _, tc := range []struct {
		degree int
		f      func(float64) float64
	}{
		{degree: 2, f: quad},
		{degree: 3, f: cubic},
	} {
		y := make([]float64, len(x))
		for i, v := range x {
			y[i] = tc.f(v)
		}
		s, err := NewBSpline(x, y, tc.degree)
		if err != nil {
			t.Fatalf("degree %d: %v", tc.degree, err)
		}
		for v := 0.0; v <= 8; v += 0.25 {
			if got, want := s.At(v), tc.f(v); math.Abs(got-want) > 1e-8 {
				t.Fatalf("degree %d: At(%v) = %v, want %v", tc.degree, v, got, want)
			}
		}
	}
}

func TestBSplineMinimalPoints(t *testing.T) {
	// degree+1 points give the single interpolating polynomial.
	s, err := NewBSpline([]float64{0, 1, 2, 3}, []float64{0, 1, 8, 27}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.At(1.5); math.Abs(got-3.375) > 1e-10 {
		t.Fatalf("At(1.5) = %v, want 3.375", got)
	}

	lo, hi := s.Domain()
	if lo != 0 || hi != 3 {
		t.Fatalf("Domain = [%v,%v]", lo, hi)
	}
}

func TestBSplineEval(t *testing.T) {
	s, _ := NewBSpline([]float64{0, 10}, []float64{0, 10}, 1)
	dst := make([]float64, 3)
	s.Eval(dst, []float64{0, 2.5, 10})
	if dst[0] != 0 || dst[1] != 2.5 || dst[2] != 10 {
		t.Fatalf("Eval = %v", dst)
	}
}

func TestBSplineErrors(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		degree int
		want   error
	}{
		{name: "degree", x: []float64{0, 1}, y: []float64{0, 1}, degree: 4, want: ErrInvalidDegree},
		{name: "too few cubic", x: []float64{0, 1, 2}, y: []float64{0, 1, 2}, degree: 3, want: ErrTooFewPoints},
		{name: "too few quadratic", x: []float64{0, 1}, y: []float64{0, 1}, degree: 2, want: ErrTooFewPoints},
		{name: "length", x: []float64{0, 1, 2}, y: []float64{0, 1}, degree: 1, want: ErrLengthMismatch},
		{name: "unsorted", x: []float64{0, 2, 1}, y: []float64{0, 1, 2}, degree: 1, want: ErrNotIncreasing},
		{name: "duplicate", x: []float64{0, 1, 1}, y: []float64{0, 1, 2}, degree: 1, want: ErrNotIncreasing},
		{name: "nan", x: []float64{0, 1}, y: []float64{0, math.NaN()}, degree: 1, want: ErrNonFinite},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBSpline(tc.x, tc.y, tc.degree)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
