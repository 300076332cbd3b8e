package dither

import (
	"fmt"
	"math"
)

const (
	defaultBitDepth = 16
	minBitDepth     = 8
	maxBitDepth     = 32
)

type config struct {
	bitDepth  int
	kind      Kind
	amplitude float64
	feedback  bool
	seed      uint64
	seeded    bool
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithBitDepth sets the target bit depth (8 to 32, default 16).
func WithBitDepth(bits int) Option {
	return func(cfg *config) error {
		if bits < minBitDepth || bits > maxBitDepth {
			return fmt.Errorf("dither: bit depth must be in [%d, %d]: %d", minBitDepth, maxBitDepth, bits)
		}
		cfg.bitDepth = bits
		return nil
	}
}

// WithKind sets the dither distribution (default [KindTriangular]).
func WithKind(k Kind) Option {
	return func(cfg *config) error {
		if !k.Valid() {
			return fmt.Errorf("dither: invalid kind: %d", k)
		}
		cfg.kind = k
		return nil
	}
}

// WithAmplitude scales the dither noise in LSB (default 1).
func WithAmplitude(amp float64) Option {
	return func(cfg *config) error {
		if amp < 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
			return fmt.Errorf("dither: amplitude must be >= 0 and finite: %f", amp)
		}
		cfg.amplitude = amp
		return nil
	}
}

// WithErrorFeedback enables first-order noise shaping, which moves
// quantization noise towards high frequencies.
func WithErrorFeedback(enabled bool) Option {
	return func(cfg *config) error {
		cfg.feedback = enabled
		return nil
	}
}

// WithSeed makes the dither noise reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		cfg.seeded = true
		return nil
	}
}
