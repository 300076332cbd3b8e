package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fxchain/dsp/core"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair is equal within eps, absolute or relative (core.NearlyEqual).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t on the first NaN or infinity in data.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if !core.IsFinite(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireInRange32 fails t if any element is non-finite or outside [lo, hi].
func RequireInRange32(t testing.TB, data []float32, lo, hi float32) {
	t.Helper()
	for i, v := range data {
		if !core.IsFinite(float64(v)) || v < lo || v > hi {
			t.Fatalf("index %d: %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

// RequireBitIdentical32 fails t unless got and want have the same length and
// identical bit patterns at every index.
func RequireBitIdentical32(t testing.TB, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
