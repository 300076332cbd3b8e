package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/core"
)

// Goertzel evaluates a single DFT bin over all samples fed since the last
// Reset.
//
// Spectral leakage occurs if the target frequency does not complete an
// integer number of cycles within the processed samples.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	count      int
}

// NewGoertzel creates a new Goertzel analyzer for the target frequency.
//
// frequency must be between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
	g.count = 0
}

// ProcessBlock feeds a block of samples.
func (g *Goertzel) ProcessBlock(input []float32) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := float64(x) + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
	g.count += len(input)
}

// Power returns |X[k]|^2 over the samples fed so far.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Amplitude returns the peak amplitude of a sinusoid at the target
// frequency, 2*|X[k]|/N. It is 0 before any sample was fed.
func (g *Goertzel) Amplitude() float64 {
	p := g.Power()
	if p <= 0 || g.count == 0 {
		return 0
	}

	return 2 * math.Sqrt(p) / float64(g.count)
}

// AmplitudeDB returns Amplitude in dBFS, floored at MinDB.
func (g *Goertzel) AmplitudeDB() float64 {
	return core.LinearToDBFloor(g.Amplitude(), MinDB)
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// ToneGainDB measures how the level of a tone at frequency changed between
// in and out, in dB. Both blocks must hold the same number of samples.
func ToneGainDB(in, out []float32, frequency, sampleRate float64) (float64, error) {
	if len(in) != len(out) {
		return 0, fmt.Errorf("tone gain: length mismatch: %d != %d", len(in), len(out))
	}

	gIn, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}
	gOut, _ := NewGoertzel(frequency, sampleRate)

	gIn.ProcessBlock(in)
	gOut.ProcessBlock(out)

	return gOut.AmplitudeDB() - gIn.AmplitudeDB(), nil
}
