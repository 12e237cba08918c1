package compose

import (
	"errors"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cwbudde/algo-bground/anchor"
)

// ErrPlot is returned when a result cannot be drawn.
var ErrPlot = errors.New("compose: nothing to plot")

// Plot sizes in pixels.
const (
	PlotWidth  = 1024
	PlotHeight = 600
)

// WritePNG draws the raw, background and net curves of r as a PNG. Anchors,
// if any, are marked as dots.
func WritePNG(w io.Writer, r Result, labels Labels, anchors anchor.Set) error {
	if r.Len() < 2 {
		return ErrPlot
	}
	labels = labels.withDefaults()

	series := []chart.Series{
		chart.ContinuousSeries{Name: labels.Y, XValues: r.X, YValues: r.Raw, Style: lineStyle(chart.ColorBlue)},
		chart.ContinuousSeries{Name: "background", XValues: r.X, YValues: r.Background, Style: lineStyle(chart.ColorRed)},
		chart.ContinuousSeries{Name: "corrected", XValues: r.X, YValues: r.Net, Style: lineStyle(chart.ColorGreen)},
	}

	if anchors.Len() > 0 {
		x, y := anchors.Sort().XY()
		series = append(series, chart.ContinuousSeries{
			Name:    "anchors",
			XValues: x,
			YValues: y,
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 4, DotColor: chart.ColorBlack},
		})
	}

	ch := chart.Chart{
		Width:      PlotWidth,
		Height:     PlotHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Name: labels.X},
		YAxis:      chart.YAxis{Name: labels.Y},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

// WritePlot renders r to a PNG file at path.
func WritePlot(path string, r Result, labels Labels, anchors anchor.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WritePNG(f, r, labels, anchors); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeWidth: 1.5, StrokeColor: col}
}
