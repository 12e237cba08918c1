package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/autofit"
	"github.com/cwbudde/algo-bground/trim"
)

func printAnchors(w io.Writer, set anchor.Set, kind anchor.Kind) {
	fmt.Fprintf(w, "%d anchors, %s interpolation\n", set.Len(), kind)

	table := tablewriter.NewWriter(w)
	table.Header("#", "X", "Y")
	for i, p := range set.Points() {
		table.Append(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.3f", p.X),
			fmt.Sprintf("%.4g", p.Y),
		)
	}
	table.Render()
}

func printTrim(w io.Writer, tr trim.Result) {
	xmin, xmax := tr.Signal.Range()

	table := tablewriter.NewWriter(w)
	table.Header("Level", "Start", "End", "Xmin", "Xmax", "Samples", "Threshold", "Min", "Max", "Mean", "RMS")
	table.Append(
		tr.Level,
		fmt.Sprintf("%d", tr.Start),
		fmt.Sprintf("%d", tr.End),
		fmt.Sprintf("%.3f", xmin),
		fmt.Sprintf("%.3f", xmax),
		fmt.Sprintf("%d", tr.Stats.Length),
		fmt.Sprintf("%.4g", tr.Threshold),
		fmt.Sprintf("%.4g", tr.Stats.Min),
		fmt.Sprintf("%.4g", tr.Stats.Max),
		fmt.Sprintf("%.4g", tr.Stats.Mean),
		fmt.Sprintf("%.4g", tr.Stats.RMS),
	)
	table.Render()
}

func printRounds(w io.Writer, fit autofit.Fit) {
	table := tablewriter.NewWriter(w)
	table.Header("Round", "a", "b", "c", "Masked", "Change")
	for i, r := range fit.Rounds {
		table.Append(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.6g", r.Params.A),
			fmt.Sprintf("%.6g", r.Params.B),
			fmt.Sprintf("%.6g", r.Params.C),
			fmt.Sprintf("%d", r.Masked),
			fmt.Sprintf("%.3g", r.Change),
		)
	}
	table.Render()

	fmt.Fprintf(w, "background: %s (fit from index %d)\n", fit.Params, fit.AnchorIndex)
}
