package level

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fxchain/internal/testutil"
)

func TestPeakAndRMS(t *testing.T) {
	if Peak(nil) != 0 || RMS(nil) != 0 {
		t.Fatal("empty buffers should measure 0")
	}

	buf := []float64{0.5, -0.75, 0.25, 0}
	if got := Peak(buf); got != 0.75 {
		t.Fatalf("Peak = %v, want 0.75", got)
	}

	want := math.Sqrt((0.25 + 0.5625 + 0.0625) / 4)
	if got := RMS(buf); math.Abs(got-want) > 1e-12 {
		t.Fatalf("RMS = %v, want %v", got, want)
	}
}

func TestRMSOfSine(t *testing.T) {
	sine := testutil.DeterministicSine(1000, 48000, 1, 4800)
	if got := RMS(sine); math.Abs(got-1/math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS = %v, want 1/sqrt(2)", got)
	}
}

func TestMeter_Defaults(t *testing.T) {
	m := NewMeter()
	got := m.Levels()
	want := Levels{PeakDB: FloorDB, RMSDB: FloorDB, HoldDB: FloorDB}
	if got != want {
		t.Fatalf("Levels() = %+v, want %+v", got, want)
	}
	if m.SampleRate() != 48000 {
		t.Fatalf("SampleRate = %v", m.SampleRate())
	}
}

func TestMeter_Update(t *testing.T) {
	m := NewMeter(WithSampleRate(1000), WithBlockSize(4))
	m.Update([]float32{0.5, -0.5, 0.5, -0.5})

	l := m.Levels()
	want := 20 * math.Log10(0.5)
	if math.Abs(l.PeakDB-want) > 1e-9 || math.Abs(l.RMSDB-want) > 1e-9 {
		t.Fatalf("levels = %+v, want peak and rms %v", l, want)
	}
	if l.HoldDB != l.PeakDB {
		t.Fatalf("hold %v should follow a rising peak %v", l.HoldDB, l.PeakDB)
	}
	if l.Clips != 0 {
		t.Fatalf("Clips = %d", l.Clips)
	}
}

func TestMeter_HoldDecays(t *testing.T) {
	m := NewMeter(WithSampleRate(1000), WithHoldDecay(10))
	m.Update([]float32{1, 0, 0, 0})
	start := m.Levels().HoldDB

	// 500 samples at 1 kHz is half a second: 5 dB at 10 dB/s.
	m.Update(make([]float32, 500))
	l := m.Levels()
	if math.Abs(l.HoldDB-(start-5)) > 1e-9 {
		t.Fatalf("HoldDB = %v, want %v", l.HoldDB, start-5)
	}
	if l.PeakDB != FloorDB {
		t.Fatalf("PeakDB after silence = %v", l.PeakDB)
	}

	// The hold never falls below the floor.
	m.Update(make([]float32, 100000))
	if got := m.Levels().HoldDB; got != FloorDB {
		t.Fatalf("HoldDB = %v, want floor", got)
	}
}

func TestMeter_ZeroDecayHolds(t *testing.T) {
	m := NewMeter(WithHoldDecay(0))
	m.Update([]float32{0.5})
	hold := m.Levels().HoldDB
	m.Update(make([]float32, 48000))
	if m.Levels().HoldDB != hold {
		t.Fatal("hold decayed with zero decay rate")
	}
}

func TestMeter_Clips(t *testing.T) {
	m := NewMeter()
	m.Update([]float32{1, -1, 0.999, 2, float32(math.NaN())})
	m.Update([]float32{-1.5})

	l := m.Levels()
	if l.Clips != 5 {
		t.Fatalf("Clips = %d, want 5", l.Clips)
	}
	if l.PeakDB != linearDB(1.5) {
		t.Fatalf("PeakDB = %v", l.PeakDB)
	}

	m.Reset()
	if m.Levels().Clips != 0 {
		t.Fatal("Reset should clear clips")
	}
}

func TestMeter_EmptyBlockIgnored(t *testing.T) {
	m := NewMeter()
	m.Update([]float32{0.25})
	before := m.Levels()
	m.Update(nil)
	if m.Levels() != before {
		t.Fatal("empty block changed levels")
	}
}

func TestMeter_InvalidOptionsIgnored(t *testing.T) {
	m := NewMeter(WithSampleRate(-1), WithHoldDecay(math.NaN()), WithBlockSize(0))
	if m.SampleRate() != 48000 {
		t.Fatalf("SampleRate = %v", m.SampleRate())
	}
	if m.holdDecay != defaultHoldDecayDBPerSecond {
		t.Fatalf("holdDecay = %v", m.holdDecay)
	}
}

func TestMeter_UpdateZeroAlloc(t *testing.T) {
	m := NewMeter(WithBlockSize(256))
	block := testutil.Float32Block(testutil.DeterministicNoise(1, 0.5, 256))

	allocs := testing.AllocsPerRun(50, func() {
		m.Update(block)
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
}

func linearDB(linear float64) float64 {
	return 20 * math.Log10(linear)
}
