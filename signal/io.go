package signal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadOption configures Read.
type ReadOption func(*readConfig)

type readConfig struct {
	xCol int
	yCol int
}

// WithColumns selects the zero-based columns holding X and Y in files with
// more than two columns. Negative indices are ignored.
func WithColumns(x, y int) ReadOption {
	return func(cfg *readConfig) {
		if x >= 0 && y >= 0 && x != y {
			cfg.xCol = x
			cfg.yCol = y
		}
	}
}

// ReadFile reads a signal from a whitespace-delimited text file.
func ReadFile(path string, opts ...ReadOption) (Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return Signal{}, err
	}
	defer f.Close()

	sig, err := Read(f, opts...)
	if err != nil {
		return Signal{}, fmt.Errorf("%s: %w", path, err)
	}

	return sig, nil
}

// Read parses whitespace-delimited numeric columns. Empty lines and lines
// starting with '#' are skipped. A single non-numeric header line before the
// first data row is tolerated.
func Read(r io.Reader, opts ...ReadOption) (Signal, error) {
	cfg := readConfig{xCol: 0, yCol: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	need := max(cfg.xCol, cfg.yCol) + 1

	var (
		x, y       []float64
		headerSeen bool
		lineNo     int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(x) == 0 && !headerSeen && !anyNumeric(fields) {
			headerSeen = true
			continue
		}

		if len(fields) < need {
			return Signal{}, fmt.Errorf("%w: line %d: want %d columns, got %d", ErrInputFormat, lineNo, need, len(fields))
		}

		xv, err := strconv.ParseFloat(fields[cfg.xCol], 64)
		if err != nil {
			return Signal{}, fmt.Errorf("%w: line %d: %v", ErrInputFormat, lineNo, err)
		}

		yv, err := strconv.ParseFloat(fields[cfg.yCol], 64)
		if err != nil {
			return Signal{}, fmt.Errorf("%w: line %d: %v", ErrInputFormat, lineNo, err)
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	if err := sc.Err(); err != nil {
		return Signal{}, err
	}

	if len(x) == 0 {
		return Signal{}, fmt.Errorf("%w: no data rows", ErrInputFormat)
	}

	sig, err := New(x, y)
	if err != nil {
		return Signal{}, fmt.Errorf("%w: %w", ErrInputFormat, err)
	}

	return sig, nil
}

// Write stores the signal as two columns using the %8.3f / %11.3e layout of
// the result files.
func Write(w io.Writer, s Signal) error {
	bw := bufio.NewWriter(w)
	for i := range s.X {
		if _, err := fmt.Fprintf(bw, "%8.3f %11.3e\n", s.X[i], s.Y[i]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func anyNumeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			return true
		}
	}

	return false
}
