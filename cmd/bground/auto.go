package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bground/autofit"
	"github.com/cwbudde/algo-bground/session"
	"github.com/cwbudde/algo-bground/trim"
)

type autoFlags struct {
	output    string
	xlsx      string
	plot      string
	xrange    []float64
	rounds    int
	threshold float64
	edge      string
	earlyStop float64
	quiet     bool
}

func newAutoCmd(a *app) *cobra.Command {
	var f autoFlags

	cmd := &cobra.Command{
		Use:   "auto [flags] data.txt",
		Short: "Subtract an automatically fitted exponential background",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.runAuto(cmd, args[0], f)
	})

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "result file (default: <data>_bkg.txt)")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "also export the four result columns to this workbook")
	cmd.Flags().StringVar(&f.plot, "plot", "", "draw raw, background and corrected curves to this PNG")
	cmd.Flags().Float64SliceVar(&f.xrange, "xrange", nil, "fit only inside xmin,xmax instead of auto-trimming")
	cmd.Flags().IntVar(&f.rounds, "rounds", 0, "number of fit/mask rounds")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "peak masking factor above the baseline")
	cmd.Flags().StringVar(&f.edge, "edge", "", "edge filter (none, basic, fake-peak, stable-run)")
	cmd.Flags().Float64Var(&f.earlyStop, "early-stop", 0, "stop once the baseline changes less than this between rounds")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not print the trim and fit tables")

	return cmd
}

func (a *app) trimmer(xrange []float64) (*trim.Trimmer, error) {
	opts := a.cfg.TrimOptions()

	switch len(xrange) {
	case 0:
	case 2:
		opts = append(opts, trim.WithXRange(xrange[0], xrange[1]))
	default:
		return nil, fmt.Errorf("--xrange needs two values, got %d", len(xrange))
	}

	return trim.New(opts...), nil
}

func (a *app) runAuto(cmd *cobra.Command, data string, f autoFlags) error {
	sig, err := a.readSignal(data)
	if err != nil {
		return err
	}

	if f.output == "" {
		f.output = defaultResultPath(data)
	}

	trimmer, err := a.trimmer(f.xrange)
	if err != nil {
		return err
	}

	opts := a.cfg.FitOptions()
	if cmd.Flags().Changed("rounds") {
		opts = append(opts, autofit.WithRounds(f.rounds))
	}
	if cmd.Flags().Changed("threshold") {
		opts = append(opts, autofit.WithThresholdFactor(f.threshold))
	}
	if cmd.Flags().Changed("early-stop") {
		opts = append(opts, autofit.WithEarlyStop(f.earlyStop))
	}
	if f.edge != "" {
		mode, err := autofit.ParseEdgeMode(f.edge)
		if err != nil {
			return err
		}
		opts = append(opts, autofit.WithEdgeMode(mode))
	}
	fitter := autofit.New(opts...)

	a.log.Debug().
		Int("rounds", fitter.Rounds()).
		Float64("threshold_factor", fitter.ThresholdFactor()).
		Str("edge", fitter.EdgeMode().String()).
		Msg("fitting")

	s, err := session.New(sig).AutoFit(trimmer, fitter)
	if err != nil {
		return err
	}

	fit, _ := s.Fit()
	for i, r := range fit.Rounds {
		a.log.Debug().
			Int("round", i+1).
			Float64("a", r.Params.A).
			Float64("b", r.Params.B).
			Float64("c", r.Params.C).
			Int("masked", r.Masked).
			Float64("change", r.Change).
			Msg("fit round")
	}
	a.log.Info().Stringer("params", fit.Params).Int("rounds", len(fit.Rounds)).Msg("background fitted")

	if !f.quiet {
		tr, _ := s.Trim()
		printTrim(a.stdout, tr)
		printRounds(a.stdout, fit)
	}

	return a.writeResult(s, f.output, f.xlsx, f.plot)
}
