package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/session"
)

type pointsFlags struct {
	anchors string
	add     []float64
	remove  []float64
	kind    string
}

func newPointsCmd(a *app) *cobra.Command {
	var f pointsFlags

	cmd := &cobra.Command{
		Use:   "points [flags] data.txt",
		Short: "Add or remove anchor points and save the anchor file",
		Long: "points edits the anchor file of a signal. New points snap to the nearest sample, " +
			"removals drop the anchor closest to the given X. Removals are applied before additions.",
		Args: cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.runPoints(args[0], f)
	})

	cmd.Flags().StringVarP(&f.anchors, "anchors", "a", "", "anchor file (default: <data>.bkg)")
	cmd.Flags().Float64SliceVar(&f.add, "add", nil, "X positions of anchors to add")
	cmd.Flags().Float64SliceVar(&f.remove, "remove", nil, "X positions of anchors to remove")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "interpolation kind stored in the file")

	return cmd
}

func (a *app) runPoints(data string, f pointsFlags) error {
	sig, err := a.readSignal(data)
	if err != nil {
		return err
	}

	if f.anchors == "" {
		f.anchors = defaultAnchorPath(data)
	}

	s, err := session.New(sig).WithKind(a.cfg.Kind())
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(f.anchors); statErr == nil {
		if s, err = s.LoadAnchors(f.anchors, anchor.WithDefaultKind(a.cfg.Kind())); err != nil {
			return err
		}
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
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

	for _, x := range f.remove {
		if s, err = s.RemoveAnchor(x); err != nil {
			return err
		}
	}

	for _, x := range f.add {
		if s, err = s.AddAnchor(x); err != nil {
			return err
		}
	}

	if err := s.SaveAnchors(f.anchors); err != nil {
		return err
	}

	a.log.Info().Str("file", f.anchors).Int("anchors", s.Anchors().Len()).Msg("anchors saved")
	printAnchors(a.stdout, s.Anchors().Sort(), s.Kind())

	return nil
}
