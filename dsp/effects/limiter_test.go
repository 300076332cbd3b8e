package effects

import (
	"math"
	"testing"
)

func TestSoftLimit_PassesBelowThreshold(t *testing.T) {
	for _, x := range []float64{0, 0.1, -0.5, 0.9, LimiterThreshold, -LimiterThreshold} {
		if got := SoftLimit(x); got != x {
			t.Fatalf("SoftLimit(%v) = %v, want unchanged", x, got)
		}
	}
}

func TestSoftLimit_CompressesAboveThreshold(t *testing.T) {
	got := SoftLimit(2.0)
	if !(got > LimiterThreshold && got < 1) {
		t.Fatalf("SoftLimit(2) = %v, want in (0.95, 1)", got)
	}
	want := 0.95 + math.Tanh(1.05)*0.05
	if math.Abs(got-want) > 1e-4 {
		t.Fatalf("SoftLimit(2) = %v, want %v", got, want)
	}
	if neg := SoftLimit(-2.0); neg != -got {
		t.Fatalf("SoftLimit(-2) = %v, want %v", neg, -got)
	}
}

func TestSoftLimit_NonFinite(t *testing.T) {
	if got := SoftLimit(math.NaN()); got != 0 {
		t.Fatalf("SoftLimit(NaN) = %v, want 0", got)
	}
	if got := SoftLimit(math.Inf(1)); got != 1 {
		t.Fatalf("SoftLimit(+Inf) = %v, want 1", got)
	}
	if got := SoftLimit(math.Inf(-1)); got != -1 {
		t.Fatalf("SoftLimit(-Inf) = %v, want -1", got)
	}
}

func TestSoftLimit_AlwaysInRange(t *testing.T) {
	prev := math.Inf(-1)
	for x := -1000.0; x <= 1000; x += 0.037 {
		y := SoftLimit(x)
		if y < -1 || y > 1 {
			t.Fatalf("SoftLimit(%v) = %v outside [-1, 1]", x, y)
		}
		if y < prev {
			t.Fatalf("SoftLimit not monotonic at %v", x)
		}
		prev = y
	}
}

func TestSoftLimitInPlace(t *testing.T) {
	buf := []float64{-3, -0.2, 0.97, 1.5, math.NaN()}
	SoftLimitInPlace(buf)
	for i, y := range buf {
		if y < -1 || y > 1 || math.IsNaN(y) {
			t.Fatalf("buf[%d] = %v", i, y)
		}
	}
	if buf[1] != -0.2 {
		t.Fatalf("buf[1] = %v, want -0.2", buf[1])
	}
}
