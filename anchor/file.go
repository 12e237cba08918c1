package anchor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-bground/signal"
)

const kindPrefix = "# Background correction type:"

// ReadOption configures Read.
type ReadOption func(*readConfig)

type readConfig struct {
	kind Kind
}

// WithDefaultKind sets the kind reported for files without a type line.
// Invalid kinds are ignored.
func WithDefaultKind(k Kind) ReadOption {
	return func(cfg *readConfig) {
		if k.Valid() {
			cfg.kind = k
		}
	}
}

// WriteFile saves the set and its interpolation kind to path.
func WriteFile(path string, s Set, kind Kind) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, s, kind); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Write stores the set in the anchor file format:
//
//	# Background points
//	# 2 columns: [X-coords, Y-coords]
//	# Background correction type: <kind>
//	     100.0      52.3
//
// Coordinates are written with one decimal (%10.1f%10.1f).
func Write(w io.Writer, s Set, kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("anchor: invalid kind %d", int(kind))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Background points")
	fmt.Fprintln(bw, "# 2 columns: [X-coords, Y-coords]")
	fmt.Fprintf(bw, "%s %s\n", kindPrefix, kind)

	for _, p := range s.points {
		if _, err := fmt.Fprintf(bw, "%10.1f%10.1f\n", p.X, p.Y); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadFile loads an anchor file.
func ReadFile(path string, opts ...ReadOption) (Set, Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, 0, err
	}
	defer f.Close()

	s, kind, err := Read(f, opts...)
	if err != nil {
		return Set{}, 0, fmt.Errorf("%s: %w", path, err)
	}

	return s, kind, nil
}

// Read parses an anchor file. The kind defaults to linear, or to the kind set
// with WithDefaultKind, when the file has no type line. Legacy files with an
// index column (index, X, Y) and an "X Y" header row are accepted. Malformed
// content wraps signal.ErrInputFormat.
func Read(r io.Reader, opts ...ReadOption) (Set, Kind, error) {
	cfg := readConfig{kind: KindLinear}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	kind := cfg.kind

	var (
		pts    []Point
		lineNo int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if rest, ok := strings.CutPrefix(line, kindPrefix); ok {
				k, err := ParseKind(rest)
				if err != nil {
					return Set{}, 0, fmt.Errorf("%w: line %d: %v", signal.ErrInputFormat, lineNo, err)
				}
				kind = k
			}
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 3 {
			parts = parts[1:]
		}

		if len(parts) == 2 && parts[0] == "X" && parts[1] == "Y" {
			continue
		}

		if len(parts) != 2 {
			return Set{}, 0, fmt.Errorf("%w: line %d: unexpected row %q", signal.ErrInputFormat, lineNo, line)
		}

		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return Set{}, 0, fmt.Errorf("%w: line %d: %v", signal.ErrInputFormat, lineNo, err)
		}

		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Set{}, 0, fmt.Errorf("%w: line %d: %v", signal.ErrInputFormat, lineNo, err)
		}

		pts = append(pts, Point{X: x, Y: y})
	}

	if err := sc.Err(); err != nil {
		return Set{}, 0, err
	}

	return Set{points: pts}, kind, nil
}
