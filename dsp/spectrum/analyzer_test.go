package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fxchain/dsp/window"
	"github.com/cwbudde/algo-fxchain/internal/testutil"
)

func TestNewAnalyzer_Validation(t *testing.T) {
	tests := []struct {
		name string
		sr   float64
		opts []Option
	}{
		{"zero rate", 0, nil},
		{"inf rate", math.Inf(1), nil},
		{"fft not power of two", 48000, []Option{WithFFTSize(1000)}},
		{"fft too small", 48000, []Option{WithFFTSize(128)}},
		{"fft too large", 48000, []Option{WithFFTSize(16384)}},
		{"overlap low", 48000, []Option{WithOverlap(0.1)}},
		{"overlap nan", 48000, []Option{WithOverlap(math.NaN())}},
		{"smoothing high", 48000, []Option{WithSmoothing(1)}},
		{"unknown window", 48000, []Option{WithWindow(window.Type(99))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAnalyzer(tt.sr, tt.opts...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewAnalyzer_Defaults(t *testing.T) {
	a, err := NewAnalyzer(48000)
	if err != nil {
		t.Fatal(err)
	}
	if a.FFTSize() != 2048 || a.HopSize() != 1024 {
		t.Fatalf("fft=%d hop=%d, want 2048/1024", a.FFTSize(), a.HopSize())
	}
	if a.Ready() {
		t.Fatal("fresh analyzer should not be ready")
	}
	if len(a.BinsDB()) != 1025 {
		t.Fatalf("bins = %d, want 1025", len(a.BinsDB()))
	}
	if got := a.BinFrequency(1); got != 48000.0/2048 {
		t.Fatalf("BinFrequency(1) = %v", got)
	}
}

func TestAnalyzer_NotReadyUntilWindowFull(t *testing.T) {
	a := mustAnalyzer(t, WithFFTSize(512))

	a.Push(make([]float32, 511))
	if a.Ready() {
		t.Fatal("ready before the window is full")
	}
	for _, v := range a.CurveDB([]float64{100, 1000}, nil) {
		if v != MinDB {
			t.Fatalf("curve before ready = %v, want %v", v, MinDB)
		}
	}

	a.Push(make([]float32, 1))
	if !a.Ready() {
		t.Fatal("not ready after a full window")
	}
}

func TestAnalyzer_SineLevel(t *testing.T) {
	const sr = 48000.0
	a := mustAnalyzer(t, WithFFTSize(1024), WithSmoothing(0))

	// Bin 32 is exactly 1500 Hz.
	f := a.BinFrequency(32)
	if f != 1500 {
		t.Fatalf("BinFrequency(32) = %v", f)
	}

	a.Push(testutil.Float32Block(testutil.DeterministicSine(f, sr, 0.5, 1024)))

	got := a.CurveDB([]float64{f, 10000}, nil)
	if want := 20 * math.Log10(0.5); math.Abs(got[0]-want) > 0.05 {
		t.Fatalf("level at %v Hz = %v dB, want %v", f, got[0], want)
	}
	if got[1] > -80 {
		t.Fatalf("leakage at 10 kHz = %v dB", got[1])
	}
}

func TestAnalyzer_SilenceIsFloor(t *testing.T) {
	a := mustAnalyzer(t, WithFFTSize(256))
	a.Push(make([]float32, 1024))

	for k, v := range a.BinsDB() {
		if v != MinDB {
			t.Fatalf("bin %d = %v, want %v", k, v, MinDB)
		}
	}
}

func TestAnalyzer_Smoothing(t *testing.T) {
	sine := testutil.Float32Block(testutil.DeterministicSine(1500, 48000, 0.5, 1024))
	silence := make([]float32, 4096)

	fast := mustAnalyzer(t, WithFFTSize(1024), WithSmoothing(0))
	slow := mustAnalyzer(t, WithFFTSize(1024), WithSmoothing(0.9))

	for _, a := range []*Analyzer{fast, slow} {
		a.Push(sine)
		a.Push(silence)
	}

	fastDB := fast.CurveDB([]float64{1500}, nil)[0]
	slowDB := slow.CurveDB([]float64{1500}, nil)[0]
	if fastDB != MinDB {
		t.Fatalf("unsmoothed curve after silence = %v, want floor", fastDB)
	}
	if !(slowDB > MinDB+1) {
		t.Fatalf("smoothed curve fell too fast: %v", slowDB)
	}
}

func TestAnalyzer_ResetMatchesFresh(t *testing.T) {
	noise := testutil.Float32Block(testutil.DeterministicNoise(2, 0.5, 4096))

	a := mustAnalyzer(t, WithFFTSize(512))
	a.Push(noise)
	a.Reset()
	if a.Ready() {
		t.Fatal("ready after Reset")
	}

	fresh := mustAnalyzer(t, WithFFTSize(512))
	a.Push(noise[:2000])
	fresh.Push(noise[:2000])

	got, want := a.BinsDB(), fresh.BinsDB()
	for k := range got {
		if got[k] != want[k] {
			t.Fatalf("bin %d: reset %v fresh %v", k, got[k], want[k])
		}
	}
}

func TestAnalyzer_NonFiniteInput(t *testing.T) {
	a := mustAnalyzer(t, WithFFTSize(256))
	block := make([]float32, 512)
	for i := range block {
		block[i] = float32(math.NaN())
	}
	block[3] = float32(math.Inf(1))

	a.Push(block)
	testutil.RequireFinite(t, a.BinsDB())
}

func TestAnalyzer_CurveDBEdges(t *testing.T) {
	a := mustAnalyzer(t, WithFFTSize(256), WithSmoothing(0))
	a.Push(testutil.Float32Block(testutil.DeterministicNoise(4, 0.3, 256)))

	bins := a.BinsDB()
	got := a.CurveDB([]float64{-5, math.NaN(), 1e9, math.Inf(1)}, nil)
	if got[0] != bins[0] || got[1] != bins[0] {
		t.Fatalf("low edge: %v", got[:2])
	}
	if got[2] != bins[len(bins)-1] || got[3] != bins[len(bins)-1] {
		t.Fatalf("high edge: %v", got[2:])
	}

	dst := make([]float64, 16)
	out := a.CurveDB([]float64{1000}, dst)
	if &out[0] != &dst[0] {
		t.Fatal("dst not reused")
	}
}

func TestAnalyzer_CurveDBZeroAlloc(t *testing.T) {
	a := mustAnalyzer(t)
	a.Push(make([]float32, 4096))
	freqs := []float64{20, 100, 1000, 10000}
	dst := make([]float64, len(freqs))

	allocs := testing.AllocsPerRun(50, func() {
		dst = a.CurveDB(freqs, dst)
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
}

func BenchmarkAnalyzerPush(b *testing.B) {
	a, err := NewAnalyzer(48000)
	if err != nil {
		b.Fatal(err)
	}
	block := testutil.Float32Block(testutil.DeterministicNoise(1, 0.5, 512))

	b.SetBytes(int64(len(block) * 4))
	b.ReportAllocs()
	for b.Loop() {
		a.Push(block)
	}
}

func TestAnalyzer_TransformErrorIsRecorded(t *testing.T) {
	a := mustAnalyzer(t, WithFFTSize(256))
	errFFT := errors.New("transform failed")
	a.forward = func(dst, src []complex128) error { return errFFT }

	tone := testutil.Float32Block(testutil.DeterministicSine(1000, 48000, 0.5, 1024))
	a.Push(tone)

	if !errors.Is(a.Err(), errFFT) {
		t.Fatalf("Err() = %v, want %v", a.Err(), errFFT)
	}
	if a.Ready() {
		t.Fatal("analyzer ready although every frame failed")
	}
	for k, v := range a.BinsDB() {
		if v != MinDB {
			t.Fatalf("bin %d = %v, want floor", k, v)
		}
	}

	a.forward = a.plan.Forward
	a.Reset()
	if a.Err() != nil {
		t.Fatalf("Reset kept error %v", a.Err())
	}
	a.Push(tone)
	if !a.Ready() || a.Err() != nil {
		t.Fatalf("ready=%v err=%v after recovery", a.Ready(), a.Err())
	}
}

func mustAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(48000, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return a
}
