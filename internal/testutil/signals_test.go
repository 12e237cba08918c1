package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestExpDecay(t *testing.T) {
	x, y := ExpDecay(10, 100, 0.5, 2)
	if len(x) != 10 || len(y) != 10 {
		t.Fatalf("len = %d/%d, want 10", len(x), len(y))
	}
	if x[3] != 3 {
		t.Fatalf("x[3] = %v, want 3", x[3])
	}
	if y[0] != 102 {
		t.Fatalf("y[0] = %v, want 102", y[0])
	}
	for i := 1; i < len(y); i++ {
		if y[i] >= y[i-1] {
			t.Fatalf("not decreasing at %d", i)
		}
	}
}

func TestAddGaussian(t *testing.T) {
	y := make([]float64, 21)
	AddGaussian(y, 10, 2, 5)
	if y[10] != 5 {
		t.Fatalf("peak = %v, want 5", y[10])
	}
	if math.Abs(y[8]-y[12]) > 1e-15 {
		t.Fatalf("peak not symmetric: %v vs %v", y[8], y[12])
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(4)
	for i, v := range r {
		if v != float64(i) {
			t.Fatalf("r[%d] = %v", i, v)
		}
	}
}
