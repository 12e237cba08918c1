// Package time provides sample-domain statistics over Y values of a signal.
package time

import (
	"math"
	"sort"
)

// Stats summarises the Y values of a trimmed window.
type Stats struct {
	Length int
	Max    float64
	MaxPos int // first index holding Max
	Min    float64
	MinPos int // first index holding Min
	Mean   float64
	RMS    float64
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sum    float64
		sumSq  float64
		maxVal = signal[0]
		maxPos int
		minVal = signal[0]
		minPos int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)

	return Stats{
		Length: n,
		Max:    maxVal,
		MaxPos: maxPos,
		Min:    minVal,
		MinPos: minPos,
		Mean:   sum / nf,
		RMS:    math.Sqrt(sumSq / nf),
	}
}

// ArgMax returns the first index of the largest value, or -1 for an empty slice.
func ArgMax(signal []float64) int {
	if len(signal) == 0 {
		return -1
	}

	return Calculate(signal).MaxPos
}

// Percentile returns the p-th percentile (0..100) of signal using linear
// interpolation between the closest ranks. It returns NaN for an empty slice.
func Percentile(signal []float64, p float64) float64 {
	n := len(signal)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, signal)
	sort.Float64s(sorted)

	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[n-1]
	}

	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := pos - float64(lo)

	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// CountAbove returns the indices whose value is strictly greater than threshold.
func CountAbove(signal []float64, threshold float64) []int {
	var idx []int
	for i, x := range signal {
		if x > threshold {
			idx = append(idx, i)
		}
	}

	return idx
}
