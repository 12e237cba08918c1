// Package trim selects the informative sub-range of a signal before an
// automatic background fit.
//
// The signal is first cut at its global maximum. A manual X range, when
// given, is then applied as is. Otherwise a ladder of percentile thresholds
// is tried from the mildest to the strictest level and the first level with
// enough samples above its threshold defines the window.
package trim

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-bground/signal"
	timestats "github.com/cwbudde/algo-bground/stats/time"
)

// ErrTrimmingFailed is returned when no level of the ladder finds a region.
var ErrTrimmingFailed = errors.New("trim: no informative sub-range found")

// LevelManual is reported when the window came from WithXRange.
const LevelManual = "manual"

// Result is a trimmed signal together with how it was obtained.
type Result struct {
	Signal signal.Signal
	// Level is the ladder level name, or LevelManual.
	Level string
	// Start and End are inclusive indices of the window in the input signal.
	Start int
	End   int
	// Threshold is the Y threshold of the matching level (0 for manual).
	Threshold float64
	// Stats describes the Y values inside the window.
	Stats timestats.Stats
}

// Trimmer applies a fixed trimming configuration. The zero value is not
// usable; construct one with New.
type Trimmer struct {
	cfg config
}

// New returns a Trimmer with the default ladder and tolerance.
func New(opts ...Option) *Trimmer {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Trimmer{cfg: cfg}
}

// Tolerance returns the configured window padding.
func (t *Trimmer) Tolerance() int {
	return t.cfg.tolerance
}

// Ladder returns a copy of the configured levels.
func (t *Trimmer) Ladder() []Level {
	return append([]Level(nil), t.cfg.ladder...)
}

// Trim returns the informative window of sig.
func (t *Trimmer) Trim(sig signal.Signal) (Result, error) {
	if sig.Empty() {
		return Result{}, fmt.Errorf("%w: %w", ErrTrimmingFailed, signal.ErrEmptySignal)
	}

	offset := 0
	work := sig
	if t.cfg.leftCut {
		offset = timestats.ArgMax(sig.Y)
		work = sig.Slice(offset, sig.Len())
	}

	if t.cfg.manual {
		sub, start := work.Between(t.cfg.xmin, t.cfg.xmax)
		if sub.Empty() {
			return Result{}, fmt.Errorf("%w: no samples in [%g, %g]", ErrTrimmingFailed, t.cfg.xmin, t.cfg.xmax)
		}

		return Result{
			Signal: sub,
			Level:  LevelManual,
			Start:  offset + start,
			End:    offset + start + sub.Len() - 1,
			Stats:  timestats.Calculate(sub.Y),
		}, nil
	}

	p95 := timestats.Percentile(work.Y, 95)
	for _, lvl := range t.cfg.ladder {
		threshold := p95 * lvl.Percent / 100
		above := timestats.CountAbove(work.Y, threshold)
		if len(above) == 0 || len(above) < lvl.MinLen {
			continue
		}

		start := max(above[0]-t.cfg.tolerance, 0)
		end := min(above[len(above)-1]+t.cfg.tolerance, work.Len()-1)

		window := work.Slice(start, end+1)

		return Result{
			Signal:    window,
			Level:     lvl.Name,
			Start:     offset + start,
			End:       offset + end,
			Threshold: threshold,
			Stats:     timestats.Calculate(window.Y),
		}, nil
	}

	return Result{}, fmt.Errorf("%w: tried %d levels", ErrTrimmingFailed, len(t.cfg.ladder))
}

// Trim is a shorthand for New(opts...).Trim(sig).
func Trim(sig signal.Signal, opts ...Option) (Result, error) {
	return New(opts...).Trim(sig)
}
