package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bground/internal/config"
	"github.com/cwbudde/algo-bground/internal/logging"
	"github.com/cwbudde/algo-bground/signal"
)

// app carries the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "bground",
		Short:         "Background subtraction for 1-D signals",
		Long:          "bground determines the background of an XY signal from anchor points or by an exponential fit and subtracts it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(); err != nil {
				fmt.Fprintln(a.stderr, "bground:", err)
				return err
			}
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(
		newAnchorCmd(a),
		newAutoCmd(a),
		newTrimCmd(a),
		newPointsCmd(a),
	)

	// Flag errors happen before setup, so there is no logger yet.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrln(err)
		return err
	})

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: a.stderr})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log

	return nil
}

// run wraps a command body so that failures are logged before cobra
// returns them.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			a.log.Error().Err(err).Str("command", cmd.Name()).Msg("failed")
			return err
		}
		return nil
	}
}

func (a *app) readSignal(path string) (signal.Signal, error) {
	sig, err := signal.ReadFile(path, a.cfg.ReadOptions()...)
	if err != nil {
		return signal.Signal{}, err
	}

	xmin, xmax := sig.Range()
	a.log.Info().Str("file", path).Int("samples", sig.Len()).Float64("xmin", xmin).Float64("xmax", xmax).Msg("signal loaded")

	return sig, nil
}

// stem strips the extension: "dir/ed2.txt" -> "dir/ed2".
func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func defaultAnchorPath(data string) string {
	return stem(data) + ".bkg"
}

func defaultResultPath(data string) string {
	return stem(data) + "_bkg.txt"
}
