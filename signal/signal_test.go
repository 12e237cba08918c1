package signal

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "ok", x: []float64{0, 1, 2}, y: []float64{3, 4, 5}},
		{name: "length", x: []float64{0, 1}, y: []float64{1}, want: ErrLengthMismatch},
		{name: "duplicate", x: []float64{0, 1, 1}, y: []float64{1, 2, 3}, want: ErrNotIncreasing},
		{name: "decreasing", x: []float64{2, 1}, y: []float64{1, 2}, want: ErrNotIncreasing},
		{name: "nan y", x: []float64{0, 1}, y: []float64{1, math.NaN()}, want: ErrInputFormat},
		{name: "inf y", x: []float64{0, 1}, y: []float64{math.Inf(1), 2}, want: ErrInputFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.x, tc.y)
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{5, 6}
	s, err := New(x, y)
	if err != nil {
		t.Fatal(err)
	}
	y[0] = 100
	if s.Y[0] != 5 {
		t.Fatalf("signal aliases caller slice: %v", s.Y)
	}
}

func TestNearestIndex(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 10}
	for _, tc := range []struct {
		x    float64
		want int
	}{
		{x: -5, want: 0},
		{x: 0.4, want: 0},
		{x: 0.5, want: 1},
		{x: 0.6, want: 1},
		{x: 6, want: 3},
		{x: 7, want: 4},
		{x: 99, want: 4},
	} {
		if got := NearestIndex(xs, tc.x); got != tc.want {
			t.Errorf("NearestIndex(%v) = %d, want %d", tc.x, got, tc.want)
		}
	}

	if got := NearestIndex(nil, 1); got != -1 {
		t.Fatalf("empty: got %d, want -1", got)
	}
}

func TestBetweenAndSlice(t *testing.T) {
	s, _ := New([]float64{0, 1, 2, 3, 4}, []float64{10, 11, 12, 13, 14})

	sub, start := s.Between(0.5, 3)
	if start != 1 || sub.Len() != 3 || sub.X[0] != 1 || sub.X[2] != 3 {
		t.Fatalf("Between: start=%d sub=%v", start, sub)
	}

	if _, start := s.Between(5, 6); start != -1 {
		t.Fatalf("empty Between: start=%d", start)
	}

	if got := s.Slice(-3, 2); got.Len() != 2 || got.Y[1] != 11 {
		t.Fatalf("Slice clipped: %v", got)
	}
}

func TestReadSkipsCommentsAndHeader(t *testing.T) {
	in := `# profile
# pixel intensity
Pixel Iraw
0 10.5
1   9.0

2	8.25
`
	s, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 || s.X[2] != 2 || s.Y[2] != 8.25 {
		t.Fatalf("unexpected signal %+v", s)
	}
}

func TestReadColumns(t *testing.T) {
	in := "1 0 5\n2 1 6\n3 2 7\n"
	s, err := Read(strings.NewReader(in), WithColumns(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if s.X[0] != 0 || s.Y[2] != 7 {
		t.Fatalf("unexpected signal %+v", s)
	}
}

func TestReadRejectsMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"short row":     "0 1\n1\n",
		"not a number":  "0 1\n1 abc\n",
		"empty":         "# nothing\n",
		"not monotonic": "0 1\n0 2\n",
		"NaN intensity": "0 1\n1 NaN\n2 3\n",
		"Inf intensity": "0 1\n1 -Inf\n2 3\n",
		"Inf position":  "0 1\n+Inf 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(in)); !errors.Is(err, ErrInputFormat) {
				t.Fatalf("got %v, want ErrInputFormat", err)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	s, _ := New([]float64{1, 2}, []float64{100, 0.5})
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		t.Fatal(err)
	}
	want := "   1.000   1.000e+02\n   2.000   5.000e-01\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
