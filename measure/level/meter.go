package level

import (
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// FloorDB is the lowest level reported by the meter.
const FloorDB = -120.0

// ClipLevel is the magnitude at which a sample counts as clipped.
const ClipLevel = 1.0

// Peak returns max(|buf[i]|), or 0 for an empty buffer.
func Peak(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}

	return vecmath.MaxAbs(buf)
}

// RMS returns the root mean square of buf, or 0 for an empty buffer.
func RMS(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(buf, buf) / float64(len(buf)))
}

// Levels is a snapshot of a Meter.
type Levels struct {
	// PeakDB and RMSDB describe the most recent block.
	PeakDB float64
	RMSDB  float64

	// HoldDB is the decaying maximum of PeakDB.
	HoldDB float64

	// Clips counts samples at or above ClipLevel since the last Reset.
	Clips int64
}

// Meter tracks block levels of a mono stream.
type Meter struct {
	sampleRate float64
	holdDecay  float64

	scratch []float64
	levels  Levels
}

// NewMeter creates a new level meter with the given options.
func NewMeter(opts ...MeterOption) *Meter {
	cfg := ApplyMeterOptions(opts...)

	m := &Meter{
		sampleRate: cfg.SampleRate,
		holdDecay:  cfg.HoldDecay,
		scratch:    make([]float64, cfg.BlockSize),
	}
	m.Reset()

	return m
}

// Reset returns all levels to FloorDB and clears the clip count.
func (m *Meter) Reset() {
	m.levels = Levels{
		PeakDB: FloorDB,
		RMSDB:  FloorDB,
		HoldDB: FloorDB,
	}
}

// Update measures block. Non-finite samples count as clipped and are
// measured as full scale. Empty blocks are ignored.
func (m *Meter) Update(block []float32) {
	if len(block) == 0 {
		return
	}

	m.scratch = core.EnsureLen(m.scratch, len(block))
	buf := m.scratch

	for i, s := range block {
		x := float64(s)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			x = ClipLevel
		}
		if math.Abs(x) >= ClipLevel {
			m.levels.Clips++
		}
		buf[i] = x
	}

	m.levels.PeakDB = core.LinearToDBFloor(Peak(buf), FloorDB)
	m.levels.RMSDB = core.LinearToDBFloor(RMS(buf), FloorDB)

	hold := m.levels.HoldDB - m.holdDecay*float64(len(block))/m.sampleRate
	m.levels.HoldDB = math.Max(math.Max(hold, m.levels.PeakDB), FloorDB)
}

// Levels returns the current snapshot.
func (m *Meter) Levels() Levels {
	return m.levels
}

// SampleRate returns the sample rate used for the hold decay.
func (m *Meter) SampleRate() float64 {
	return m.sampleRate
}
