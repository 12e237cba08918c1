// Package autofit determines a background automatically by fitting an
// exponential decay a*exp(-b*x)+c to a signal.
//
// Each round fits the model to a working copy of the signal, clamps the
// result below the raw data, forces it to be non-increasing and masks the
// samples that rise clearly above it, so that peaks stop pulling the next
// fit upwards. The round count is fixed unless WithEarlyStop is used.
package autofit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bground/internal/lsq"
	"github.com/cwbudde/algo-bground/signal"
)

// ErrFit is returned when a least-squares round fails. No partial result is
// produced.
var ErrFit = errors.New("autofit: exponential fit failed")

// initialDecay is the starting guess for b.
const initialDecay = 0.01

// Params are the coefficients of a*exp(-b*x)+c.
type Params struct {
	A, B, C float64
}

// At evaluates the model at x.
func (p Params) At(x float64) float64 {
	return p.A*math.Exp(-p.B*x) + p.C
}

func (p Params) String() string {
	return fmt.Sprintf("a=%.6g b=%.6g c=%.6g", p.A, p.B, p.C)
}

// Round records one refinement step.
type Round struct {
	Params Params
	// Masked is the number of samples above baseline*factor in this round.
	Masked int
	// Change is the largest absolute baseline change against the previous
	// round (0 for the first one).
	Change float64
}

// Fit is the outcome of Fitter.Fit. All slices are aligned with the input.
type Fit struct {
	Params      Params
	Baseline    []float64
	Net         []float64
	AnchorIndex int
	Rounds      []Round
	// Suppressed marks net samples zeroed by the edge filter.
	Suppressed []bool
}

// Fitter holds a fitting configuration.
type Fitter struct {
	cfg config
}

// New returns a Fitter with 20 rounds, threshold factor 1.2 and the
// fake-peak edge filter unless overridden.
func New(opts ...Option) *Fitter {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Fitter{cfg: cfg}
}

// Rounds returns the configured round count.
func (f *Fitter) Rounds() int { return f.cfg.rounds }

// ThresholdFactor returns the configured masking factor.
func (f *Fitter) ThresholdFactor() float64 { return f.cfg.thresholdFactor }

// EdgeMode returns the configured edge filter.
func (f *Fitter) EdgeMode() EdgeMode { return f.cfg.edge }

// AnchorIndex returns one past the steepest drop among the first window
// samples of y. It is 0 when fewer than two samples are available.
func AnchorIndex(y []float64, window int) int {
	n := min(window, len(y))
	if n < 2 {
		return 0
	}

	best := 0
	for i := 1; i < n-1; i++ {
		if y[i+1]-y[i] < y[best+1]-y[best] {
			best = i
		}
	}

	return best + 1
}

// Fit runs the refinement on sig.
func (f *Fitter) Fit(sig signal.Signal) (Fit, error) {
	x, raw := sig.X, sig.Y
	n := len(raw)

	s := AnchorIndex(raw, f.cfg.checkWindow)
	if n-s < 3 {
		return Fit{}, fmt.Errorf("%w: %d samples after anchor index %d, need 3", ErrFit, n-s, s)
	}

	masked := append([]float64(nil), raw...)
	p0 := []float64{raw[s] - raw[n-1], initialDecay, raw[n-1]}

	var (
		params Params
		rounds = make([]Round, 0, f.cfg.rounds)
		bl     = make([]float64, n)
		prev   []float64
	)

	for r := range f.cfg.rounds {
		res, err := lsq.Fit(model{}, x[s:], masked[s:], p0, lsq.WithMaxEvaluations(f.cfg.maxEvaluations))
		if err != nil {
			return Fit{}, fmt.Errorf("%w: round %d: %w", ErrFit, r+1, err)
		}

		params = Params{A: res.Params[0], B: res.Params[1], C: res.Params[2]}

		for i, xi := range x {
			bl[i] = math.Min(params.At(xi), raw[i])
			if i > 0 && bl[i] > bl[i-1] {
				bl[i] = bl[i-1]
			}
			if math.IsNaN(bl[i]) {
				return Fit{}, fmt.Errorf("%w: round %d: baseline is NaN at %d", ErrFit, r+1, i)
			}
		}

		count := 0
		for i := range raw {
			if raw[i] > bl[i]*f.cfg.thresholdFactor {
				masked[i] = bl[i]
				count++
			}
		}

		change := 0.0
		if prev != nil {
			for i := range bl {
				change = math.Max(change, math.Abs(bl[i]-prev[i]))
			}
		}

		rounds = append(rounds, Round{Params: params, Masked: count, Change: change})

		if prev != nil && f.cfg.earlyStop > 0 && change < f.cfg.earlyStop {
			break
		}

		prev = append(prev[:0], bl...)
	}

	net := make([]float64, n)
	for i := range net {
		net[i] = raw[i] - bl[i]
	}

	return Fit{
		Params:      params,
		Baseline:    bl,
		Net:         net,
		AnchorIndex: s,
		Rounds:      rounds,
		Suppressed:  f.SuppressEdges(raw, bl, net),
	}, nil
}

// model adapts the exponential decay to the least-squares solver.
type model struct{}

func (model) NumParams() int { return 3 }

func (model) Eval(x float64, p []float64) float64 {
	return p[0]*math.Exp(-p[1]*x) + p[2]
}

func (model) Grad(x float64, p, grad []float64) {
	e := math.Exp(-p[1] * x)
	grad[0] = e
	grad[1] = -p[0] * x * e
	grad[2] = 1
}
