package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-fxchain/dsp/core"
	"github.com/cwbudde/algo-fxchain/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// MinDB is the floor of every curve returned by this package.
	MinDB = -130.0

	defaultFFTSize   = 2048
	defaultOverlap   = 0.5
	defaultSmoothing = 0.8
	defaultWindow    = window.TypeBlackmanHarris4Term

	minFFTSize   = 256
	maxFFTSize   = 8192
	minOverlap   = 0.25
	maxOverlap   = 0.95
	maxSmoothing = 0.95

	magnitudeEps = 1e-12
)

// Option mutates construction-time parameters.
type Option func(*analyzerConfig) error

type analyzerConfig struct {
	fftSize   int
	overlap   float64
	smoothing float64
	window    window.Type
}

func defaultAnalyzerConfig() analyzerConfig {
	return analyzerConfig{
		fftSize:   defaultFFTSize,
		overlap:   defaultOverlap,
		smoothing: defaultSmoothing,
		window:    defaultWindow,
	}
}

// WithFFTSize sets the frame length, a power of two in [256, 8192].
func WithFFTSize(n int) Option {
	return func(cfg *analyzerConfig) error {
		if n < minFFTSize || n > maxFFTSize || n&(n-1) != 0 {
			return fmt.Errorf("spectrum fft size must be a power of two in [%d, %d]: %d", minFFTSize, maxFFTSize, n)
		}
		cfg.fftSize = n
		return nil
	}
}

// WithOverlap sets the fraction of each frame shared with the next one,
// in [0.25, 0.95].
func WithOverlap(overlap float64) Option {
	return func(cfg *analyzerConfig) error {
		if overlap < minOverlap || overlap > maxOverlap || math.IsNaN(overlap) {
			return fmt.Errorf("spectrum overlap must be in [%g, %g]: %f", minOverlap, maxOverlap, overlap)
		}
		cfg.overlap = overlap
		return nil
	}
}

// WithSmoothing sets the weight of the previous curve when a new frame is
// folded in, in [0, 0.95]. Zero disables smoothing.
func WithSmoothing(smoothing float64) Option {
	return func(cfg *analyzerConfig) error {
		if smoothing < 0 || smoothing > maxSmoothing || math.IsNaN(smoothing) {
			return fmt.Errorf("spectrum smoothing must be in [0, %g]: %f", maxSmoothing, smoothing)
		}
		cfg.smoothing = smoothing
		return nil
	}
}

// WithWindow selects the analysis window.
func WithWindow(t window.Type) Option {
	return func(cfg *analyzerConfig) error {
		if window.Info(t).Name == "" {
			return fmt.Errorf("spectrum window type unknown: %d", int(t))
		}
		cfg.window = t
		return nil
	}
}

// Analyzer computes a smoothed magnitude spectrum over a sliding window of
// pushed samples. A new frame is transformed every hop, where
// hop = round(fftSize*(1-overlap)).
//
// All buffers are allocated by [NewAnalyzer]; Push and CurveDB with a large
// enough dst do not allocate.
type Analyzer struct {
	sampleRate float64
	cfg        analyzerConfig
	hopSize    int

	win     []float64
	winGain float64
	plan    *algofft.Plan[complex128]
	// forward is plan.Forward; tests swap it to exercise the error path.
	forward func(dst, src []complex128) error
	err     error

	ring     []float64
	write    int
	filled   int
	sinceHop int

	in, out []complex128
	re, im  []float64
	mag     []float64
	db      []float64
	ready   bool
}

// NewAnalyzer creates an analyzer for audio at sampleRate.
func NewAnalyzer(sampleRate float64, opts ...Option) (*Analyzer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("spectrum sample rate must be > 0: %f", sampleRate)
	}

	cfg := defaultAnalyzerConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	plan, err := algofft.NewPlan64(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum init fft plan: %w", err)
	}

	n := cfg.fftSize
	bins := n/2 + 1

	win := window.Generate(cfg.window, n, window.WithPeriodic())
	gain, err := window.CoherentGain(win)
	if err != nil {
		return nil, fmt.Errorf("spectrum window: %w", err)
	}

	a := &Analyzer{
		sampleRate: sampleRate,
		cfg:        cfg,
		hopSize:    max(1, int(math.Round(float64(n)*(1-cfg.overlap)))),
		win:        win,
		winGain:    math.Max(gain, magnitudeEps),
		plan:       plan,
		forward:    plan.Forward,
		ring:       make([]float64, n),
		in:         make([]complex128, n),
		out:        make([]complex128, n),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		mag:        make([]float64, bins),
		db:         make([]float64, bins),
	}
	a.Reset()

	return a, nil
}

// Push appends samples to the analysis window, transforming a new frame at
// every hop once the window is full. Non-finite samples count as 0.
func (a *Analyzer) Push(block []float32) {
	n := len(a.ring)
	for _, s := range block {
		a.ring[a.write] = core.FiniteOr(float64(s), 0)

		a.write++
		if a.write >= n {
			a.write = 0
		}

		if a.filled < n {
			a.filled++
		}

		a.sinceHop++
		if a.filled < n || a.sinceHop < a.hopSize {
			continue
		}

		a.sinceHop = 0
		a.updateFrame()
	}
}

func (a *Analyzer) updateFrame() {
	n := len(a.ring)

	read := a.write
	for i := range n {
		a.in[i] = complex(a.ring[read]*a.win[i], 0)

		read++
		if read >= n {
			read = 0
		}
	}

	if err := a.forward(a.out, a.in); err != nil {
		// Keep the previous curve; the frame is dropped.
		if a.err == nil {
			a.err = fmt.Errorf("spectrum forward fft: %w", err)
		}
		return
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Magnitude(a.mag, a.re, a.im)

	norm := float64(n) * a.winGain
	last := len(a.db) - 1
	smooth := a.cfg.smoothing

	for k := 0; k <= last; k++ {
		m := a.mag[k] / norm
		// Single-sided spectrum: fold negative frequencies except DC and Nyquist.
		if k > 0 && k < last {
			m *= 2
		}

		valDB := core.LinearToDBFloor(math.Max(m, magnitudeEps), MinDB)

		if !a.ready {
			a.db[k] = valDB
			continue
		}

		a.db[k] = smooth*a.db[k] + (1-smooth)*valDB
	}

	a.ready = true
}

// Ready reports whether at least one frame has been analyzed.
func (a *Analyzer) Ready() bool {
	return a.ready
}

// Reset clears the window and the curve without reallocating.
func (a *Analyzer) Reset() {
	core.Zero(a.ring)
	a.write = 0
	a.filled = 0
	a.sinceHop = 0
	a.ready = false
	a.err = nil

	for i := range a.db {
		a.db[i] = MinDB
	}
}

// Err returns the first transform error since the last Reset, if any.
// Frames whose transform fails leave the curve unchanged.
func (a *Analyzer) Err() error {
	return a.err
}

// FFTSize returns the frame length.
func (a *Analyzer) FFTSize() int { return len(a.ring) }

// HopSize returns the number of samples between frames.
func (a *Analyzer) HopSize() int { return a.hopSize }

// SampleRate returns the sample rate in Hz.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// BinFrequency returns the center frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(len(a.ring))
}

// BinsDB returns the smoothed per-bin curve in dBFS. The slice is owned by
// the analyzer and is overwritten by later frames.
func (a *Analyzer) BinsDB() []float64 {
	return a.db
}

// CurveDB writes the smoothed level in dBFS at each of freqs into dst and
// returns it, interpolating linearly between bins. Frequencies are clamped
// to [0, sampleRate/2]. Before the first frame every value is MinDB.
func (a *Analyzer) CurveDB(freqs, dst []float64) []float64 {
	dst = core.EnsureLen(dst, len(freqs))

	last := len(a.db) - 1
	if !a.ready || last < 1 {
		for i := range dst {
			dst[i] = MinDB
		}
		return dst
	}

	nyquist := a.sampleRate * 0.5
	binHz := a.sampleRate / float64(len(a.ring))

	for i, f := range freqs {
		if math.IsNaN(f) {
			f = 0
		}

		bin := core.Clamp(f, 0, nyquist) / binHz
		if bin <= 0 {
			dst[i] = a.db[0]
			continue
		}
		if bin >= float64(last) {
			dst[i] = a.db[last]
			continue
		}

		base := int(bin)
		frac := bin - float64(base)
		d0 := a.db[base]
		d1 := a.db[base+1]
		dst[i] = d0 + frac*(d1-d0)
	}

	return dst
}
