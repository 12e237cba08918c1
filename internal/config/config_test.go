package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/autofit"
	"github.com/cwbudde/algo-bground/trim"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 0, cfg.Input.XColumn)
	assert.Equal(t, 1, cfg.Input.YColumn)
	assert.Equal(t, anchor.KindLinear, cfg.Kind())
	assert.Equal(t, 10, cfg.Trim.Tolerance)
	assert.Equal(t, 20, cfg.Fit.Rounds)
	assert.Equal(t, 1.2, cfg.Fit.ThresholdFactor)
	assert.Equal(t, "fake-peak", cfg.Fit.EdgeMode)
	assert.Equal(t, 1e-6, cfg.Fit.Margin)
	assert.Equal(t, 20000, cfg.Fit.MaxEvaluations)
	assert.Zero(t, cfg.Fit.EarlyStop)
	assert.Equal(t, "Intensity", cfg.Labels().Y)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
anchor:
  kind: cubic
trim:
  tolerance: 4
  skip_left_cut: true
  ladder:
    - {name: soft, min_len: 6, percent: 20}
fit:
  rounds: 5
  threshold_factor: 1.02
  edge_mode: basic
  early_stop: 0.001
output:
  x_label: 2theta
`))
	require.NoError(t, err)

	assert.Equal(t, anchor.KindCubic, cfg.Kind())
	assert.Equal(t, "2theta", cfg.Labels().X)

	tr := trim.New(cfg.TrimOptions()...)
	assert.Equal(t, 4, tr.Tolerance())
	require.Len(t, tr.Ladder(), 1)
	assert.Equal(t, "soft", tr.Ladder()[0].Name)

	f := autofit.New(cfg.FitOptions()...)
	assert.Equal(t, 5, f.Rounds())
	assert.Equal(t, 1.02, f.ThresholdFactor())
	assert.Equal(t, autofit.EdgeBasic, f.EdgeMode())
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"level":         "log: {level: loud}",
		"format":        "log: {format: xml}",
		"kind":          "anchor: {kind: spline}",
		"same columns":  "input: {x_column: 1, y_column: 1}",
		"range length":  "trim: {x_range: [1, 2, 3]}",
		"range order":   "trim: {x_range: [50, 10]}",
		"ladder":        "trim: {ladder: [{name: x, min_len: 3, percent: 0}]}",
		"edge mode":     "fit: {edge_mode: aggressive}",
		"rounds":        "fit: {rounds: -1}",
		"broken yaml":   "fit: [",
		"check window":  "fit: {check_window: 1}",
		"negative stop": "fit: {early_stop: -0.5}",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bground.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: warn}\ntrim: {x_range: [10, 50]}\n"), 0o600))

	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvAnchorKind, "quadratic")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, anchor.KindQuadratic, cfg.Kind())
	assert.Equal(t, []float64{10, 50}, cfg.Trim.XRange)
	assert.Len(t, cfg.TrimOptions(), 2)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Fit.Rounds)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
