// Package lsq implements a small Levenberg-Marquardt solver for fitting a
// scalar model y = f(x; p) with a handful of parameters.
package lsq

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bground/internal/linalg"
)

// Errors returned by Fit.
var (
	ErrInvalidInput   = errors.New("lsq: invalid input")
	ErrMaxEvaluations = errors.New("lsq: evaluation budget exhausted")
	ErrNonFinite      = errors.New("lsq: non-finite residual")
	ErrSingular       = errors.New("lsq: singular normal equations")
)

// Model is a parametric curve with an analytic gradient.
type Model interface {
	// NumParams returns the number of parameters.
	NumParams() int
	// Eval returns f(x; p).
	Eval(x float64, p []float64) float64
	// Grad writes df/dp at x into grad.
	Grad(x float64, p, grad []float64)
}

// Settings controls termination.
type Settings struct {
	MaxEvaluations int
	FTol           float64
	XTol           float64
	InitialLambda  float64
}

// DefaultSettings mirror the tolerances of MINPACK's lmder.
func DefaultSettings() Settings {
	return Settings{
		MaxEvaluations: 20000,
		FTol:           1.49012e-8,
		XTol:           1.49012e-8,
		InitialLambda:  1e-3,
	}
}

// Option mutates Settings.
type Option func(*Settings)

// WithMaxEvaluations bounds the number of residual evaluations.
func WithMaxEvaluations(n int) Option {
	return func(s *Settings) {
		if n > 0 {
			s.MaxEvaluations = n
		}
	}
}

// WithTolerances sets the relative cost and step tolerances.
func WithTolerances(ftol, xtol float64) Option {
	return func(s *Settings) {
		if ftol > 0 {
			s.FTol = ftol
		}
		if xtol > 0 {
			s.XTol = xtol
		}
	}
}

// Result is the outcome of a successful fit.
type Result struct {
	Params      []float64
	Cost        float64 // 0.5 * sum of squared residuals
	Evaluations int
	Iterations  int
}

const (
	lambdaUp    = 10
	lambdaDown  = 10
	lambdaMax   = 1e16
	diagFloor   = 1e-12
	pivotCutoff = 1e-300
)

// Fit minimises sum (f(x_i; p) - y_i)^2 starting at p0.
func Fit(m Model, x, y, p0 []float64, opts ...Option) (Result, error) {
	cfg := DefaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	np := m.NumParams()
	switch {
	case len(x) != len(y):
		return Result{}, fmt.Errorf("%w: x and y lengths differ (%d vs %d)", ErrInvalidInput, len(x), len(y))
	case len(p0) != np:
		return Result{}, fmt.Errorf("%w: %d initial parameters for a %d-parameter model", ErrInvalidInput, len(p0), np)
	case len(x) < np:
		return Result{}, fmt.Errorf("%w: %d points for %d parameters", ErrInvalidInput, len(x), np)
	}

	s := solver{m: m, x: x, y: y, np: np}
	s.alloc()

	p := append([]float64(nil), p0...)
	cost := s.cost(p)
	evals := 1
	if !isFinite(cost) {
		return Result{}, fmt.Errorf("%w: at initial guess", ErrNonFinite)
	}

	lambda := cfg.InitialLambda
	trial := make([]float64, np)
	step := make([]float64, np)

	for iter := 1; ; iter++ {
		if cost == 0 {
			return Result{Params: p, Cost: 0, Evaluations: evals, Iterations: iter - 1}, nil
		}

		s.normal(p)
		if maxAbs(s.g) == 0 {
			return Result{Params: p, Cost: cost, Evaluations: evals, Iterations: iter - 1}, nil
		}

		for {
			if lambda > lambdaMax {
				// No direction decreases the cost any further.
				return Result{Params: p, Cost: cost, Evaluations: evals, Iterations: iter}, nil
			}
			if evals >= cfg.MaxEvaluations {
				return Result{}, fmt.Errorf("%w: %d evaluations", ErrMaxEvaluations, evals)
			}

			if !s.step(lambda, step) {
				if lambda*lambdaUp > lambdaMax {
					return Result{}, fmt.Errorf("%w: lambda %g", ErrSingular, lambda)
				}
				lambda *= lambdaUp
				continue
			}

			for i := range p {
				trial[i] = p[i] + step[i]
			}

			next := s.cost(trial)
			evals++

			if !isFinite(next) || next >= cost {
				lambda *= lambdaUp
				continue
			}

			reduction := cost - next
			copy(p, trial)
			cost = next
			lambda = math.Max(lambda/lambdaDown, 1e-12)

			if reduction <= cfg.FTol*(cost+reduction) || norm(step) <= cfg.XTol*(norm(p)+cfg.XTol) {
				return Result{Params: p, Cost: cost, Evaluations: evals, Iterations: iter}, nil
			}

			break
		}
	}
}

type solver struct {
	m    Model
	x, y []float64
	np   int

	jtj  [][]float64
	g    []float64
	grad []float64
	a    [][]float64
	b    []float64
}

func (s *solver) alloc() {
	s.jtj = square(s.np)
	s.a = square(s.np)
	s.g = make([]float64, s.np)
	s.b = make([]float64, s.np)
	s.grad = make([]float64, s.np)
}

func (s *solver) cost(p []float64) float64 {
	var sum float64
	for i, xi := range s.x {
		r := s.m.Eval(xi, p) - s.y[i]
		sum += r * r
	}

	return 0.5 * sum
}

// normal accumulates J^T J and g = J^T r at p.
func (s *solver) normal(p []float64) {
	for i := range s.np {
		s.g[i] = 0
		for j := range s.np {
			s.jtj[i][j] = 0
		}
	}

	for k, xk := range s.x {
		r := s.m.Eval(xk, p) - s.y[k]
		s.m.Grad(xk, p, s.grad)
		for i := range s.np {
			s.g[i] += s.grad[i] * r
			for j := 0; j <= i; j++ {
				s.jtj[i][j] += s.grad[i] * s.grad[j]
			}
		}
	}

	for i := range s.np {
		for j := 0; j < i; j++ {
			s.jtj[j][i] = s.jtj[i][j]
		}
	}
}

// step solves (J^T J + lambda*D) delta = -g where D is the diagonal of J^T J.
func (s *solver) step(lambda float64, delta []float64) bool {
	for i := range s.np {
		copy(s.a[i], s.jtj[i])
		s.a[i][i] += lambda * math.Max(s.jtj[i][i], diagFloor)
		s.b[i] = -s.g[i]
	}

	return linalg.Solve(s.a, s.b, delta, pivotCutoff) == nil
}

func square(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}

	return m
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
