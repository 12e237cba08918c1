package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bground/signal"
)

func newTrimCmd(a *app) *cobra.Command {
	var (
		xrange []float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "trim [flags] data.txt",
		Short: "Show the window the automatic fit would use",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		sig, err := a.readSignal(args[0])
		if err != nil {
			return err
		}

		trimmer, err := a.trimmer(xrange)
		if err != nil {
			return err
		}

		tr, err := trimmer.Trim(sig)
		if err != nil {
			return err
		}
		a.log.Info().Str("level", tr.Level).Int("start", tr.Start).Int("end", tr.End).Msg("trimmed")

		printTrim(a.stdout, tr)

		if output == "" {
			return nil
		}

		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := signal.Write(f, tr.Signal); err != nil {
			_ = f.Close()
			return err
		}

		return f.Close()
	})

	cmd.Flags().Float64SliceVar(&xrange, "xrange", nil, "use xmin,xmax instead of the severity ladder")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the trimmed signal to this file")

	return cmd
}
