package dither

import (
	"math"
	"math/rand/v2"
)

// Quantizer maps samples in [-1, 1] to signed integer codes of a fixed bit
// depth. Full scale is 2^(bits-1)-1; codes are limited to
// [-2^(bits-1), 2^(bits-1)-1].
type Quantizer struct {
	bitDepth  int
	kind      Kind
	amplitude float64
	feedback  bool
	rng       *rand.Rand

	scale  float64
	lo, hi float64
	err    float64
}

// NewQuantizer creates a quantizer. The default is 16-bit TPDF dither
// without error feedback.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := config{
		bitDepth:  defaultBitDepth,
		kind:      KindTriangular,
		amplitude: 1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	seed := cfg.seed
	if !cfg.seeded {
		seed = rand.Uint64()
	}

	full := math.Exp2(float64(cfg.bitDepth - 1))
	return &Quantizer{
		bitDepth:  cfg.bitDepth,
		kind:      cfg.kind,
		amplitude: cfg.amplitude,
		feedback:  cfg.feedback,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		scale:     full - 1,
		lo:        -full,
		hi:        full - 1,
	}, nil
}

// Quantize returns the integer code for x. Non-finite input maps to 0.
func (q *Quantizer) Quantize(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}

	target := x*q.scale - q.err
	code := math.Round(target + q.noise())
	code = math.Max(q.lo, math.Min(q.hi, code))

	if q.feedback {
		// Clamp the stored error so a clipped run cannot wind up.
		q.err = math.Max(-2, math.Min(2, code-target))
	}
	return int(code)
}

// QuantizeBlock writes the codes for src into dst, which must be at least
// as long as src.
func (q *Quantizer) QuantizeBlock(dst []int, src []float32) {
	for i, s := range src {
		dst[i] = q.Quantize(float64(s))
	}
}

// Reset clears the error feedback state.
func (q *Quantizer) Reset() {
	q.err = 0
}

// BitDepth returns the target bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// Kind returns the dither distribution.
func (q *Quantizer) Kind() Kind { return q.kind }

func (q *Quantizer) noise() float64 {
	switch q.kind {
	case KindRectangular:
		return q.amplitude * (q.rng.Float64() - 0.5)
	case KindTriangular:
		return q.amplitude * (q.rng.Float64() - q.rng.Float64())
	default:
		return 0
	}
}
