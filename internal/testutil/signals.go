package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC returns n samples of the constant value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// ExpDecay samples amp*exp(-rate*x)+offset at x = 0, 1, ..., n-1.
func ExpDecay(n int, amp, rate, offset float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = amp*math.Exp(-rate*x[i]) + offset
	}
	return x, y
}

// AddGaussian adds a Gaussian peak of the given height and width (sigma, in
// samples) centred at index center to y in place.
func AddGaussian(y []float64, center, width, height float64) {
	for i := range y {
		d := (float64(i) - center) / width
		y[i] += height * math.Exp(-0.5*d*d)
	}
}

// Ramp returns x = 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
