// Package config loads the command line configuration from YAML, .env and
// environment variables and maps it onto the library options.
package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/autofit"
	"github.com/cwbudde/algo-bground/compose"
	"github.com/cwbudde/algo-bground/signal"
	"github.com/cwbudde/algo-bground/trim"
)

// Environment variables that override the file.
const (
	EnvLogLevel   = "BGROUND_LOG_LEVEL"
	EnvLogFormat  = "BGROUND_LOG_FORMAT"
	EnvAnchorKind = "BGROUND_ANCHOR_KIND"
)

// Config is the complete tool configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Input  InputConfig  `yaml:"input"`
	Anchor AnchorConfig `yaml:"anchor"`
	Trim   TrimConfig   `yaml:"trim"`
	Fit    FitConfig    `yaml:"fit"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// InputConfig selects the data columns of the signal file.
type InputConfig struct {
	XColumn int `yaml:"x_column" validate:"gte=0"`
	YColumn int `yaml:"y_column" default:"1" validate:"gte=0,nefield=XColumn"`
}

// AnchorConfig configures the anchor-point method.
type AnchorConfig struct {
	Kind string `yaml:"kind" default:"linear" validate:"oneof=linear quadratic cubic"`
}

// LevelConfig is one entry of a custom trimming ladder.
type LevelConfig struct {
	Name    string  `yaml:"name" validate:"required"`
	MinLen  int     `yaml:"min_len" validate:"gte=1"`
	Percent float64 `yaml:"percent" validate:"gt=0,lte=100"`
}

// TrimConfig configures trimming before the automatic fit.
type TrimConfig struct {
	Tolerance   int           `yaml:"tolerance" default:"10" validate:"gte=0"`
	SkipLeftCut bool          `yaml:"skip_left_cut"`
	XRange      []float64     `yaml:"x_range" validate:"omitempty,len=2"`
	Ladder      []LevelConfig `yaml:"ladder" validate:"dive"`
}

// FitConfig configures the automatic fit.
type FitConfig struct {
	Rounds          int     `yaml:"rounds" default:"20" validate:"gte=1,lte=1000"`
	ThresholdFactor float64 `yaml:"threshold_factor" default:"1.2" validate:"gt=0"`
	CheckWindow     int     `yaml:"check_window" default:"30" validate:"gte=2"`
	EdgeMode        string  `yaml:"edge_mode" default:"fake-peak" validate:"oneof=none basic fake-peak stable-run"`
	Margin          float64 `yaml:"margin" default:"0.000001" validate:"gte=0"`
	StableWindow    int     `yaml:"stable_window" default:"10" validate:"gte=1"`
	EarlyStop       float64 `yaml:"early_stop" validate:"gte=0"`
	MaxEvaluations  int     `yaml:"max_evaluations" default:"20000" validate:"gte=1"`
}

// OutputConfig holds the axis labels written to result headers.
type OutputConfig struct {
	XLabel string `yaml:"x_label" default:"X"`
	YLabel string `yaml:"y_label" default:"Intensity"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load reads the YAML file at path, loads .env if present, applies
// environment overrides and defaults and validates the result. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		data = b
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)

	return finish(&cfg)
}

// Parse decodes YAML data without consulting the environment.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvAnchorKind); v != "" {
		cfg.Anchor.Kind = v
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if len(c.Trim.XRange) == 2 && c.Trim.XRange[0] > c.Trim.XRange[1] {
		return fmt.Errorf("validate config: trim.x_range [%g, %g] is reversed", c.Trim.XRange[0], c.Trim.XRange[1])
	}

	return nil
}

// Kind returns the configured interpolation kind.
func (c *Config) Kind() anchor.Kind {
	k, err := anchor.ParseKind(c.Anchor.Kind)
	if err != nil {
		return anchor.KindLinear
	}

	return k
}

// ReadOptions returns the signal reader options.
func (c *Config) ReadOptions() []signal.ReadOption {
	return []signal.ReadOption{signal.WithColumns(c.Input.XColumn, c.Input.YColumn)}
}

// TrimOptions maps the trim section onto trim options.
func (c *Config) TrimOptions() []trim.Option {
	opts := []trim.Option{trim.WithTolerance(c.Trim.Tolerance)}

	if c.Trim.SkipLeftCut {
		opts = append(opts, trim.WithoutLeftCut())
	}

	if len(c.Trim.XRange) == 2 {
		opts = append(opts, trim.WithXRange(c.Trim.XRange[0], c.Trim.XRange[1]))
	}

	if len(c.Trim.Ladder) > 0 {
		levels := make([]trim.Level, len(c.Trim.Ladder))
		for i, l := range c.Trim.Ladder {
			levels[i] = trim.Level{Name: l.Name, MinLen: l.MinLen, Percent: l.Percent}
		}
		opts = append(opts, trim.WithLadder(levels...))
	}

	return opts
}

// FitOptions maps the fit section onto autofit options.
func (c *Config) FitOptions() []autofit.Option {
	mode, err := autofit.ParseEdgeMode(c.Fit.EdgeMode)
	if err != nil {
		mode = autofit.EdgeFakePeak
	}

	return []autofit.Option{
		autofit.WithRounds(c.Fit.Rounds),
		autofit.WithThresholdFactor(c.Fit.ThresholdFactor),
		autofit.WithCheckWindow(c.Fit.CheckWindow),
		autofit.WithEdgeMode(mode),
		autofit.WithMargin(c.Fit.Margin),
		autofit.WithStableWindow(c.Fit.StableWindow),
		autofit.WithEarlyStop(c.Fit.EarlyStop),
		autofit.WithMaxEvaluations(c.Fit.MaxEvaluations),
	}
}

// Labels returns the axis labels for result headers.
func (c *Config) Labels() compose.Labels {
	return compose.Labels{X: c.Output.XLabel, Y: c.Output.YLabel}
}
