package compose

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-bground/anchor"
	"github.com/cwbudde/algo-bground/baseline"
	"github.com/cwbudde/algo-bground/internal/testutil"
	"github.com/cwbudde/algo-bground/signal"
)

func mustSignal(t *testing.T, x, y []float64) signal.Signal {
	t.Helper()
	s, err := signal.New(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestComposeDomain(t *testing.T) {
	sig := mustSignal(t, []float64{0, 1, 2, 3, 4, 5}, []float64{9, 8, 7, 6, 5, 4})
	bl := baseline.Baseline{X: []float64{1, 2, 3, 4}, Y: []float64{5, 7.5, 1, 1}}

	res := Compose(sig, bl)

	testutil.RequireSliceNearlyEqual(t, res.Background, []float64{0, 5, 7.5, 1, 1, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, res.Net, []float64{0, 3, 0, 5, 4, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, res.Raw, sig.Y, 0)
	testutil.RequireSliceNearlyEqual(t, res.X, sig.X, 0)
}

func TestComposeInterpolatesOffGrid(t *testing.T) {
	sig := mustSignal(t, []float64{0, 1, 2, 3}, []float64{5, 5, 5, 5})
	bl := baseline.Baseline{X: []float64{0, 2}, Y: []float64{0, 2}}

	res := Compose(sig, bl)
	testutil.RequireSliceNearlyEqual(t, res.Background, []float64{0, 1, 2, 0}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, res.Net, []float64{5, 4, 3, 0}, 1e-15)
}

func TestComposeNonNegativeAndIdempotent(t *testing.T) {
	x := testutil.Ramp(256)
	y := testutil.DeterministicNoise(7, 3, 256)
	sig := mustSignal(t, x, y)

	for seed := int64(1); seed <= 5; seed++ {
		bl := baseline.Baseline{X: x[40:200], Y: testutil.DeterministicNoise(seed, 5, 160)}

		a := Compose(sig, bl)
		b := Compose(sig, bl)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("seed %d: compose not idempotent", seed)
		}

		for i, v := range a.Net {
			if v < 0 {
				t.Fatalf("seed %d: net[%d] = %v < 0", seed, i, v)
			}
			if (i < 40 || i >= 200) && (v != 0 || a.Background[i] != 0) {
				t.Fatalf("seed %d: index %d outside domain not zero", seed, i)
			}
		}
	}
}

func TestComposeEmptyBaseline(t *testing.T) {
	sig := mustSignal(t, []float64{0, 1}, []float64{1, 2})
	res := Compose(sig, baseline.Baseline{})
	testutil.RequireSliceNearlyEqual(t, res.Net, []float64{0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, res.Background, []float64{0, 0}, 0)
}

func TestZeroWhere(t *testing.T) {
	res := Result{
		X:          []float64{0, 1, 2, 3},
		Raw:        []float64{4, 4, 4, 4},
		Background: []float64{1, 1, 1, 1},
		Net:        []float64{3, 3, 3, 3},
	}

	out := res.ZeroWhere(func(i int) bool { return i == 0 || i == 3 })
	testutil.RequireSliceNearlyEqual(t, out.Net, []float64{0, 3, 3, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, res.Net, []float64{3, 3, 3, 3}, 0)

	out.Background[0] = 99
	if res.Background[0] != 1 {
		t.Fatal("ZeroWhere shares backing arrays with the receiver")
	}
}

func TestNetSignal(t *testing.T) {
	res := Result{X: []float64{1, 2}, Net: []float64{0, 5}}
	s := res.NetSignal()
	if s.Len() != 2 || s.Y[1] != 5 {
		t.Fatalf("NetSignal = %+v", s)
	}
}

var fixture = Result{
	X:          []float64{1, 2},
	Raw:        []float64{100, 0.5},
	Background: []float64{10, 0},
	Net:        []float64{90, 0.5},
}

func TestWriteAnchorResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAnchorResult(&buf, fixture, anchor.KindCubic, Labels{X: "2theta"}); err != nil {
		t.Fatal(err)
	}

	want := "# Columns: 2theta, Intensity, background-corrected-Intensity\n" +
		"# Background correction type: cubic\n" +
		"   1.000   1.000e+02   9.000e+01\n" +
		"   2.000   5.000e-01   5.000e-01\n"
	if got := buf.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestWriteAutoResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAutoResult(&buf, fixture); err != nil {
		t.Fatal(err)
	}

	want := "# XY-data with background subtraction\n" +
		"# 4 columns: [X, Y=Iraw, Ibkg, I=(Iraw-Ibkg)]\n" +
		"# Background correction type: exponential fit\n" +
		"   1.000   1.000e+02   1.000e+01   9.000e+01\n" +
		"   2.000   5.000e-01   0.000e+00   5.000e-01\n"
	if got := buf.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}
