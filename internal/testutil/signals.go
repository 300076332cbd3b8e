// Package testutil generates reproducible test signals and checks results
// for the DSP packages' tests.
package testutil

import (
	"math"
	"math/rand"
)

func generate(length int, sample func(i int) float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = sample(i)
	}
	return out
}

// DeterministicSine returns amplitude*sin(2*pi*freqHz*n/sampleRate), starting
// at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	return generate(length, func(i int) float64 {
		return amplitude * math.Sin(w*float64(i))
	})
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude). The
// same seed always yields the same samples.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	return generate(length, func(int) float64 {
		return amplitude * (2*rng.Float64() - 1)
	})
}

// Impulse returns a unit impulse at pos. An out-of-range pos gives silence.
func Impulse(length, pos int) []float64 {
	return generate(length, func(i int) float64 {
		if i == pos {
			return 1
		}
		return 0
	})
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	return generate(length, func(int) float64 { return value })
}
