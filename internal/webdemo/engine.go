package webdemo

import (
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/effectchain"
	"github.com/cwbudde/algo-fxchain/dsp/spectrum"
	"github.com/cwbudde/algo-fxchain/measure/level"
)

// Engine runs the web demo DSP pipeline in Go.
//
// It keeps the last parameters set from the UI and applies them to every
// processed block, then feeds the processed audio to the level meter and
// the spectrum analyzer.
type Engine struct {
	sampleRate float64
	params     effectchain.Config

	proc     *effectchain.Processor
	meter    *level.Meter
	analyzer *spectrum.Analyzer
	spectrum SpectrumParams
}

// NewEngine creates a configured audio engine.
func NewEngine(sampleRate float64) (*Engine, error) {
	proc, err := effectchain.New(sampleRate)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		sampleRate: sampleRate,
		params:     effectchain.DefaultConfig(),
		proc:       proc,
		meter:      level.NewMeter(level.WithSampleRate(sampleRate)),
		spectrum:   defaultSpectrumParams(),
	}
	if err := e.initSpectrumAnalyzer(); err != nil {
		return nil, err
	}

	return e, nil
}

// SetParams replaces the effect parameters used for subsequent blocks.
func (e *Engine) SetParams(cfg effectchain.Config) {
	e.params = cfg.Normalize()
}

// Params returns the normalized effect parameters.
func (e *Engine) Params() effectchain.Config {
	return e.params
}

// Process runs block through the chain in place and updates the meters.
func (e *Engine) Process(block []float32) {
	if len(block) == 0 {
		return
	}

	e.proc.Process(block, e.params)
	e.meter.Update(block)
	e.analyzer.Push(block)
}

// Reset clears the chain, meter and analyzer state. Parameters are kept.
func (e *Engine) Reset() {
	e.proc.Reset()
	e.meter.Reset()
	e.analyzer.Reset()
}

// ResponseCurveDB returns the filter magnitude response in dB for freqs,
// including the input gain.
func (e *Engine) ResponseCurveDB(freqs []float64) []float64 {
	out := e.proc.ResponseDB(e.params, freqs, nil)

	gainDB := 20 * math.Log10(math.Max(1e-12, math.Abs(e.params.Gain)))
	for i := range out {
		out[i] += gainDB
	}

	return out
}

// SpectrumCurveDB returns a smoothed real-time spectrum in dBFS for freqs.
func (e *Engine) SpectrumCurveDB(freqs []float64) []float64 {
	return e.analyzer.CurveDB(freqs, nil)
}

// Levels returns the output meter snapshot.
func (e *Engine) Levels() level.Levels {
	return e.meter.Levels()
}

// SampleRate returns the engine sample rate.
func (e *Engine) SampleRate() float64 {
	return e.sampleRate
}

// BufferSizeBytes returns the delay line storage in bytes.
func (e *Engine) BufferSizeBytes() int {
	return e.proc.BufferSizeBytes()
}

// MemoryUsage returns the approximate memory held by the effect chain.
func (e *Engine) MemoryUsage() int {
	return e.proc.MemoryUsage()
}
