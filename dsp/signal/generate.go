// Package signal generates deterministic float32 test blocks for feeding the
// effect chain: tones, noise bursts and impulses.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fxchain/dsp/core"
)

// Generator creates signals at a fixed sample rate.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the noise seed. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator. Processor options set the sample rate.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// Sine returns samples of amplitude*sin(2*pi*freqHz*n/sampleRate).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 || math.IsNaN(freqHz) {
		return nil, fmt.Errorf("sine frequency must be in [0, %g]: %f", g.cfg.SampleRate/2, freqHz)
	}

	out := make([]float32, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out, nil
}

// WhiteNoise returns uniform noise in [-amplitude, amplitude]. Equal seeds
// give equal output.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 || math.IsNaN(amplitude) {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out, nil
}

// Impulse returns a block with a single sample of the given amplitude at pos.
func Impulse(samples, pos int, amplitude float64) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d", pos)
	}

	out := make([]float32, samples)
	out[pos] = float32(amplitude)
	return out, nil
}

// Normalize scales data in place so its peak magnitude equals targetPeak.
// Silent blocks are left unchanged.
func Normalize(data []float32, targetPeak float64) error {
	if targetPeak < 0 || math.IsNaN(targetPeak) {
		return fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	var peak float64
	for _, v := range data {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	if peak == 0 {
		return nil
	}

	scale := targetPeak / peak
	for i, v := range data {
		data[i] = float32(float64(v) * scale)
	}
	return nil
}
