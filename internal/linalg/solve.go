// Package linalg holds the small dense solver shared by the spline
// collocation and the least-squares steps.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when a pivot falls below the cutoff or the
// solution is not finite.
var ErrSingular = errors.New("linalg: singular matrix")

// Solve solves a·x = b by Gaussian elimination with partial pivoting and
// writes x to out. a and b are overwritten. out must hold len(b) values.
func Solve(a [][]float64, b, out []float64, cutoff float64) error {
	n := len(b)

	for col := range n {
		pivot := col
		best := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r][col]); v > best {
				best = v
				pivot = r
			}
		}

		if best < cutoff {
			return fmt.Errorf("%w: column %d", ErrSingular, col)
		}

		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * out[c]
		}
		out[r] = sum / a[r][r]

		if math.IsNaN(out[r]) || math.IsInf(out[r], 0) {
			return fmt.Errorf("%w: unknown %d is not finite", ErrSingular, r)
		}
	}

	return nil
}
