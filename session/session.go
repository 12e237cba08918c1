// Package session keeps the state of an interactive background correction:
// the signal, the anchors and the last good result.
//
// A Session is a value. Every operation returns a new Session; when an
// operation fails it returns the receiver unchanged together with the error,
// so the caller always keeps the last valid baseline.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/autofit"
	"github.com/cwbudde/algo-bground/baseline"
	"github.com/cwbudde/algo-bground/compose"
	"github.com/cwbudde/algo-bground/pipeline"
	"github.com/cwbudde/algo-bground/signal"
	"github.com/cwbudde/algo-bground/trim"
)

// ErrNoResult is returned when writing before anything was computed.
var ErrNoResult = errors.New("session: no background computed yet")

// Mode tells which method produced the current result.
type Mode int

const (
	ModeNone Mode = iota
	ModeAnchor
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeAnchor:
		return "anchor"
	case ModeAuto:
		return "auto"
	default:
		return "none"
	}
}

// Session is an immutable snapshot of the correction state.
type Session struct {
	sig      signal.Signal
	anchors  anchor.Set
	kind     anchor.Kind
	mode     Mode
	baseline baseline.Baseline
	result   compose.Result

	// Anchors and kind that produced result in anchor mode. They stay
	// fixed while anchors and kind are edited until the next Recompute.
	resultAnchors anchor.Set
	resultKind    anchor.Kind

	auto *pipeline.AutoOutput
}

// New starts a session on sig with no anchors and linear interpolation.
func New(sig signal.Signal) Session {
	return Session{sig: sig, kind: anchor.KindLinear}
}

// Signal returns the signal the session works on.
func (s Session) Signal() signal.Signal { return s.sig }

// Anchors returns the current anchor set.
func (s Session) Anchors() anchor.Set { return s.anchors }

// Kind returns the interpolation kind used by Recompute.
func (s Session) Kind() anchor.Kind { return s.kind }

// Mode returns the method behind the current result.
func (s Session) Mode() Mode { return s.mode }

// Baseline returns the last computed baseline.
func (s Session) Baseline() baseline.Baseline { return s.baseline }

// Result returns the last composed result.
func (s Session) Result() compose.Result { return s.result }

// ResultAnchors returns the anchors and kind behind the current result. The
// set is empty unless the result came from Recompute.
func (s Session) ResultAnchors() (anchor.Set, anchor.Kind) {
	if s.mode != ModeAnchor {
		return anchor.Set{}, 0
	}

	return s.resultAnchors, s.resultKind
}

// HasResult reports whether a background has been computed.
func (s Session) HasResult() bool { return s.mode != ModeNone }

// Fit returns the last automatic fit, if the current result came from one.
func (s Session) Fit() (autofit.Fit, bool) {
	if s.auto == nil {
		return autofit.Fit{}, false
	}

	return s.auto.Fit, true
}

// Trim returns the window used by the last automatic fit.
func (s Session) Trim() (trim.Result, bool) {
	if s.auto == nil {
		return trim.Result{}, false
	}

	return s.auto.Trim, true
}

// AddAnchor snaps x to the nearest sample and adds it to the anchors.
func (s Session) AddAnchor(x float64) (Session, error) {
	set, err := s.anchors.Add(s.sig, x)
	if err != nil {
		return s, err
	}

	s.anchors = set

	return s, nil
}

// RemoveAnchor drops the anchor closest to x.
func (s Session) RemoveAnchor(x float64) (Session, error) {
	set, err := s.anchors.Remove(x)
	if err != nil {
		return s, err
	}

	s.anchors = set

	return s, nil
}

// WithKind changes the interpolation kind used by Recompute.
func (s Session) WithKind(kind anchor.Kind) (Session, error) {
	if !kind.Valid() {
		return s, fmt.Errorf("session: invalid kind %d", int(kind))
	}

	s.kind = kind

	return s, nil
}

// Recompute rebuilds the background from the anchors.
func (s Session) Recompute() (Session, error) {
	out, err := pipeline.Anchor(s.sig, s.anchors, s.kind)
	if err != nil {
		return s, err
	}

	s.anchors = out.Anchors
	s.mode = ModeAnchor
	s.baseline = out.Baseline
	s.result = out.Result
	s.resultAnchors = out.Anchors
	s.resultKind = out.Kind
	s.auto = nil

	return s, nil
}

// AutoFit determines the background automatically. The anchors are kept.
func (s Session) AutoFit(trimmer *trim.Trimmer, fitter *autofit.Fitter) (Session, error) {
	out, err := pipeline.Auto(s.sig, trimmer, fitter)
	if err != nil {
		return s, err
	}

	s.mode = ModeAuto
	s.baseline = out.Baseline
	s.result = out.Result
	s.resultAnchors = anchor.Set{}
	s.resultKind = 0
	s.auto = &out

	return s, nil
}

// LoadAnchors replaces anchors and kind with the content of an anchor file.
func (s Session) LoadAnchors(path string, opts ...anchor.ReadOption) (Session, error) {
	set, kind, err := anchor.ReadFile(path, opts...)
	if err != nil {
		return s, err
	}

	s.anchors = set
	s.kind = kind

	return s, nil
}

// SaveAnchors writes the sorted anchors and kind to path.
func (s Session) SaveAnchors(path string) error {
	return anchor.WriteFile(path, s.anchors.Sort(), s.kind)
}

// WriteResult writes the current result in the format of the mode that
// produced it.
func (s Session) WriteResult(w io.Writer, labels compose.Labels) error {
	switch s.mode {
	case ModeAnchor:
		return compose.WriteAnchorResult(w, s.result, s.resultKind, labels)
	case ModeAuto:
		return compose.WriteAutoResult(w, s.result)
	default:
		return ErrNoResult
	}
}
