package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-bground/internal/linalg"
)

// Errors returned by spline construction.
var (
	ErrInvalidDegree  = errors.New("interp: degree must be 1, 2 or 3")
	ErrTooFewPoints   = errors.New("interp: not enough points for degree")
	ErrLengthMismatch = errors.New("interp: x and y lengths differ")
	ErrNotIncreasing  = errors.New("interp: x must be strictly increasing")
	ErrNonFinite      = errors.New("interp: non-finite input")
	ErrSingular       = errors.New("interp: singular collocation matrix")
)

const pivotEpsilon = 1e-12

// BSpline is an interpolating B-spline through a set of points.
type BSpline struct {
	degree int
	knots  []float64
	coeffs []float64
}

// NewBSpline builds the spline of the given degree passing through (x[i], y[i]).
// x must be strictly increasing and hold at least degree+1 points.
//
// Knots follow scipy's make_interp_spline defaults: degree 1 uses the data
// sites, degree 2 puts interior knots halfway between sites (dropping the
// outermost two) and degree 3 uses the not-a-knot condition.
func NewBSpline(x, y []float64, degree int) (*BSpline, error) {
	if degree < 1 || degree > 3 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	n := len(x)
	if n < degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs %d, got %d", ErrTooFewPoints, degree, degree+1, n)
	}

	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return nil, fmt.Errorf("%w: point %d", ErrNonFinite, i)
		}

		if i > 0 && x[i] <= x[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%g after x[%d]=%g", ErrNotIncreasing, i, x[i], i-1, x[i-1])
		}
	}

	s := &BSpline{degree: degree, knots: interpolationKnots(x, degree)}

	// Collocation system A c = y with A[i][j] = B_j(x[i]).
	a := make([][]float64, n)
	basis := make([]float64, degree+1)
	for i, xi := range x {
		row := make([]float64, n)
		mu := s.span(xi)
		s.basisFuncs(mu, xi, basis)
		for r := 0; r <= degree; r++ {
			row[mu-degree+r] = basis[r]
		}
		a[i] = row
	}

	c := make([]float64, n)
	if err := linalg.Solve(a, append([]float64(nil), y...), c, pivotEpsilon); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}

	s.coeffs = c

	return s, nil
}

// Degree returns the polynomial degree of the spline pieces.
func (s *BSpline) Degree() int {
	return s.degree
}

// Domain returns the interval spanned by the interpolation sites.
func (s *BSpline) Domain() (lo, hi float64) {
	return s.knots[0], s.knots[len(s.knots)-1]
}

// At evaluates the spline at x. Points outside the domain are extrapolated
// from the first or last polynomial piece.
func (s *BSpline) At(x float64) float64 {
	var buf [4]float64
	basis := buf[:s.degree+1]

	mu := s.span(x)
	s.basisFuncs(mu, x, basis)

	var sum float64
	for r, b := range basis {
		sum += s.coeffs[mu-s.degree+r] * b
	}

	return sum
}

// Eval evaluates the spline at every element of x and writes the results to dst.
// dst must be at least as long as x.
func (s *BSpline) Eval(dst, x []float64) {
	for i, xi := range x {
		dst[i] = s.At(xi)
	}
}

// span returns mu with knots[mu] <= x < knots[mu+1], clamped to the valid
// range [degree, n-1] so that the end points belong to the outer pieces.
func (s *BSpline) span(x float64) int {
	n := len(s.knots) - s.degree - 1

	mu := sort.Search(len(s.knots), func(i int) bool { return s.knots[i] > x }) - 1
	if mu < s.degree {
		mu = s.degree
	}

	if mu > n-1 {
		mu = n - 1
	}

	return mu
}

// basisFuncs fills out with the degree+1 non-zero basis functions on span mu
// (Cox-de Boor recursion in the triangular form).
func (s *BSpline) basisFuncs(mu int, x float64, out []float64) {
	k := s.degree
	t := s.knots

	var leftBuf, rightBuf [4]float64
	left := leftBuf[:k+1]
	right := rightBuf[:k+1]

	out[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = x - t[mu+1-j]
		right[j] = t[mu+j] - x

		saved := 0.0
		for r := 0; r < j; r++ {
			denom := right[r+1] + left[j-r]
			temp := 0.0
			if denom != 0 {
				temp = out[r] / denom
			}
			out[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		out[j] = saved
	}
}

func interpolationKnots(x []float64, k int) []float64 {
	n := len(x)
	t := make([]float64, 0, n+k+1)

	for range k + 1 {
		t = append(t, x[0])
	}

	switch k {
	case 1:
		t = append(t, x[1:n-1]...)
	case 2:
		for i := 1; i <= n-3; i++ {
			t = append(t, 0.5*(x[i]+x[i+1]))
		}
	case 3:
		t = append(t, x[2:n-2]...)
	}

	for range k + 1 {
		t = append(t, x[n-1])
	}

	return t
}

// Linear interpolates between (x0,y0) and (x1,y1) at x.
// It returns y0 when x0 == x1.
func Linear(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}

	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
