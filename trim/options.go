package trim

// Level is one step of the severity ladder. A level matches when at least
// MinLen samples exceed Percent % of the 95th percentile of Y.
type Level struct {
	Name    string
	MinLen  int
	Percent float64
}

// DefaultTolerance is the number of samples kept on each side of the
// detected region.
const DefaultTolerance = 10

// DefaultLadder returns the low, medium and hard levels, tried in that order.
func DefaultLadder() []Level {
	return []Level{
		{Name: "low", MinLen: 12, Percent: 10},
		{Name: "medium", MinLen: 8, Percent: 30},
		{Name: "hard", MinLen: 4, Percent: 50},
	}
}

type config struct {
	manual    bool
	xmin      float64
	xmax      float64
	tolerance int
	ladder    []Level
	leftCut   bool
}

// Option configures a Trimmer.
type Option func(*config)

func defaultConfig() config {
	return config{
		tolerance: DefaultTolerance,
		ladder:    DefaultLadder(),
		leftCut:   true,
	}
}

// WithXRange selects [xmin, xmax] directly instead of searching the ladder.
func WithXRange(xmin, xmax float64) Option {
	return func(cfg *config) {
		if xmin > xmax {
			xmin, xmax = xmax, xmin
		}
		cfg.manual = true
		cfg.xmin = xmin
		cfg.xmax = xmax
	}
}

// WithTolerance sets the number of samples kept around the detected region.
// Negative values are ignored.
func WithTolerance(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.tolerance = n
		}
	}
}

// WithLadder replaces the severity ladder. An empty ladder is ignored.
func WithLadder(levels ...Level) Option {
	return func(cfg *config) {
		if len(levels) > 0 {
			cfg.ladder = append([]Level(nil), levels...)
		}
	}
}

// WithoutLeftCut keeps the samples ahead of the global maximum.
func WithoutLeftCut() Option {
	return func(cfg *config) {
		cfg.leftCut = false
	}
}
