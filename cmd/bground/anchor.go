package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/compose"
	"github.com/cwbudde/algo-bground/session"
)

type anchorFlags struct {
	anchors string
	kind    string
	output  string
	xlsx    string
	plot    string
	quiet   bool
}

func newAnchorCmd(a *app) *cobra.Command {
	var f anchorFlags

	cmd := &cobra.Command{
		Use:   "anchor [flags] data.txt",
		Short: "Subtract a background interpolated through anchor points",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.runAnchor(args[0], f)
	})

	cmd.Flags().StringVarP(&f.anchors, "anchors", "a", "", "anchor file (default: <data>.bkg)")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "interpolation kind, overrides the anchor file (linear, quadratic, cubic)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "result file (default: <data>_bkg.txt)")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "also export the four result columns to this workbook")
	cmd.Flags().StringVar(&f.plot, "plot", "", "draw raw, background and corrected curves to this PNG")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not print the anchor table")

	return cmd
}

func (a *app) runAnchor(data string, f anchorFlags) error {
	sig, err := a.readSignal(data)
	if err != nil {
		return err
	}

	if f.anchors == "" {
		f.anchors = defaultAnchorPath(data)
	}
	if f.output == "" {
		f.output = defaultResultPath(data)
	}

	// The configured kind applies to files without a type line.
	s, err := session.New(sig).LoadAnchors(f.anchors, anchor.WithDefaultKind(a.cfg.Kind()))
	if err != nil {
		return err
	}

	if f.kind != "" {
		kind, err := anchor.ParseKind(f.kind)
		if err != nil {
			return err
		}
		if s, err = s.WithKind(kind); err != nil {
			return err
		}
	}

	s, err = s.Recompute()
	if err != nil {
		return err
	}

	lo, hi := s.Baseline().Domain()
	a.log.Info().
		Str("kind", s.Kind().String()).
		Int("anchors", s.Anchors().Len()).
		Float64("xmin", lo).
		Float64("xmax", hi).
		Msg("baseline computed")

	if !f.quiet {
		printAnchors(a.stdout, s.Anchors(), s.Kind())
	}

	return a.writeResult(s, f.output, f.xlsx, f.plot)
}

func (a *app) writeResult(s session.Session, output, xlsx, plot string) error {
	err := compose.WriteFile(output, s.Result(), func(w io.Writer, _ compose.Result) error {
		return s.WriteResult(w, a.cfg.Labels())
	})
	if err != nil {
		return err
	}
	a.log.Info().Str("file", output).Str("mode", s.Mode().String()).Msg("result saved")

	if xlsx != "" {
		if err := compose.WriteXLSX(xlsx, s.Result()); err != nil {
			return err
		}
		a.log.Info().Str("file", xlsx).Msg("workbook saved")
	}

	if plot != "" {
		marks, _ := s.ResultAnchors()
		if err := compose.WritePlot(plot, s.Result(), a.cfg.Labels(), marks); err != nil {
			return err
		}
		a.log.Info().Str("file", plot).Msg("plot saved")
	}

	return nil
}
