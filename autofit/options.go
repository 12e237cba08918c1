package autofit

// Defaults used by New.
const (
	DefaultRounds          = 20
	DefaultThresholdFactor = 1.2
	DefaultCheckWindow     = 30
	DefaultMargin          = 1e-6
	DefaultStableWindow    = 10
	DefaultMaxEvaluations  = 20000
)

type config struct {
	rounds          int
	thresholdFactor float64
	checkWindow     int
	edge            EdgeMode
	margin          float64
	stableWindow    int
	earlyStop       float64
	maxEvaluations  int
}

func defaultConfig() config {
	return config{
		rounds:          DefaultRounds,
		thresholdFactor: DefaultThresholdFactor,
		checkWindow:     DefaultCheckWindow,
		edge:            EdgeFakePeak,
		margin:          DefaultMargin,
		stableWindow:    DefaultStableWindow,
		maxEvaluations:  DefaultMaxEvaluations,
	}
}

// Option configures a Fitter.
type Option func(*config)

// WithRounds sets the number of fit/mask rounds.
func WithRounds(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.rounds = n
		}
	}
}

// WithThresholdFactor sets the factor above the current baseline at which a
// sample counts as a peak and is masked for the next round.
func WithThresholdFactor(f float64) Option {
	return func(cfg *config) {
		if f > 0 {
			cfg.thresholdFactor = f
		}
	}
}

// WithCheckWindow sets how many leading samples are searched for the
// steepest drop that anchors the fit.
func WithCheckWindow(n int) Option {
	return func(cfg *config) {
		if n > 1 {
			cfg.checkWindow = n
		}
	}
}

// WithEdgeMode selects the post-filter applied to the net signal.
func WithEdgeMode(m EdgeMode) Option {
	return func(cfg *config) {
		if m.Valid() {
			cfg.edge = m
		}
	}
}

// WithMargin sets the small offset used by the edge heuristics.
func WithMargin(m float64) Option {
	return func(cfg *config) {
		if m >= 0 {
			cfg.margin = m
		}
	}
}

// WithStableWindow sets the run length required by EdgeStableRun.
func WithStableWindow(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.stableWindow = n
		}
	}
}

// WithEarlyStop ends the refinement once the largest baseline change between
// two rounds drops below tol. Zero disables it, which is the default.
func WithEarlyStop(tol float64) Option {
	return func(cfg *config) {
		if tol >= 0 {
			cfg.earlyStop = tol
		}
	}
}

// WithMaxEvaluations bounds the model evaluations of each least-squares fit.
func WithMaxEvaluations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxEvaluations = n
		}
	}
}
