// Package pipeline chains the background steps for the two modes: anchor
// interpolation and automatic exponential fitting.
package pipeline

import (
	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/autofit"
	"github.com/cwbudde/algo-bground/baseline"
	"github.com/cwbudde/algo-bground/compose"
	"github.com/cwbudde/algo-bground/signal"
	"github.com/cwbudde/algo-bground/trim"
)

// AnchorOutput is the result of the anchor-point mode.
type AnchorOutput struct {
	Anchors  anchor.Set
	Kind     anchor.Kind
	Baseline baseline.Baseline
	Result   compose.Result
}

// AutoOutput is the result of the automatic mode.
type AutoOutput struct {
	Trim     trim.Result
	Fit      autofit.Fit
	Baseline baseline.Baseline
	Result   compose.Result
}

// Anchor sorts the anchors, interpolates them and composes the result.
func Anchor(sig signal.Signal, set anchor.Set, kind anchor.Kind) (AnchorOutput, error) {
	sorted := set.Sort()

	bl, err := baseline.Compute(sig, sorted, kind)
	if err != nil {
		return AnchorOutput{}, err
	}

	return AnchorOutput{
		Anchors:  sorted,
		Kind:     kind,
		Baseline: bl,
		Result:   compose.Compose(sig, bl),
	}, nil
}

// Auto trims sig, fits the exponential background to the trimmed part and
// composes the result over the whole of sig. Samples outside the trimmed
// window and samples removed by the fitter's edge filter have zero net.
// A nil trimmer or fitter uses the defaults.
func Auto(sig signal.Signal, trimmer *trim.Trimmer, fitter *autofit.Fitter) (AutoOutput, error) {
	if trimmer == nil {
		trimmer = trim.New()
	}
	if fitter == nil {
		fitter = autofit.New()
	}

	tr, err := trimmer.Trim(sig)
	if err != nil {
		return AutoOutput{}, err
	}

	fit, err := fitter.Fit(tr.Signal)
	if err != nil {
		return AutoOutput{}, err
	}

	bl := baseline.Baseline{X: tr.Signal.X, Y: fit.Baseline}
	res := compose.Compose(sig, bl).ZeroWhere(func(i int) bool {
		j := i - tr.Start
		return j >= 0 && j < len(fit.Suppressed) && fit.Suppressed[j]
	})

	return AutoOutput{
		Trim:     tr,
		Fit:      fit,
		Baseline: bl,
		Result:   res,
	}, nil
}
