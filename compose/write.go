package compose

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-bground/anchor"
)

// Column formats of the result files.
const (
	xFormat = "%8.3f"
	yFormat = "%11.3e"
)

// Labels name the X and Y axes in the anchor-method header.
type Labels struct {
	X string
	Y string
}

// DefaultLabels are used when a label is left empty.
var DefaultLabels = Labels{X: "X", Y: "Intensity"}

func (l Labels) withDefaults() Labels {
	if l.X == "" {
		l.X = DefaultLabels.X
	}
	if l.Y == "" {
		l.Y = DefaultLabels.Y
	}

	return l
}

// WriteAnchorResult writes the three columns X, raw and net with a header
// naming the columns and the interpolation kind.
func WriteAnchorResult(w io.Writer, r Result, kind anchor.Kind, labels Labels) error {
	labels = labels.withDefaults()
	header := []string{
		fmt.Sprintf("Columns: %s, %s, background-corrected-%s", labels.X, labels.Y, labels.Y),
		fmt.Sprintf("Background correction type: %s", kind),
	}

	return writeTable(w, header, r.X, r.Raw, r.Net)
}

// WriteAutoResult writes all four columns X, raw, background and net.
func WriteAutoResult(w io.Writer, r Result) error {
	header := []string{
		"XY-data with background subtraction",
		"4 columns: [X, Y=Iraw, Ibkg, I=(Iraw-Ibkg)]",
		"Background correction type: exponential fit",
	}

	return writeTable(w, header, r.X, r.Raw, r.Background, r.Net)
}

// WriteFile creates path and writes r with fn.
func WriteFile(path string, r Result, fn func(io.Writer, Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := fn(f, r); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func writeTable(w io.Writer, header []string, cols ...[]float64) error {
	bw := bufio.NewWriter(w)
	for _, h := range header {
		fmt.Fprintf(bw, "# %s\n", h)
	}

	row := make([]string, len(cols))
	for i := range cols[0] {
		for c, col := range cols {
			format := yFormat
			if c == 0 {
				format = xFormat
			}
			row[c] = fmt.Sprintf(format, col[i])
		}

		if _, err := fmt.Fprintln(bw, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
