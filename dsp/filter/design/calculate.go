package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/filter/biquad"
)

const (
	// ButterworthQ is the quality factor used by [Calculate] (maximally flat).
	ButterworthQ = 0.707

	// MinCutoffHz is the lowest cutoff [Calculate] will design for.
	MinCutoffHz = 20.0

	// MaxCutoffRatio bounds the cutoff to this fraction of the sample rate,
	// keeping it clear of Nyquist.
	MaxCutoffRatio = 0.45
)

// Kind selects the pass type designed by [Calculate].
type Kind int

const (
	KindLowpass Kind = iota
	KindHighpass
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLowpass:
		return "lowpass"
	case KindHighpass:
		return "highpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ClampCutoff limits cutoffHz to [MinCutoffHz, MaxCutoffRatio*sampleRate].
// When the sample rate is so low that the bounds cross, the upper bound wins.
// NaN maps to MinCutoffHz before the upper bound is applied.
func ClampCutoff(cutoffHz, sampleRate float64) float64 {
	upper := MaxCutoffRatio * sampleRate
	if math.IsNaN(cutoffHz) || cutoffHz < MinCutoffHz {
		cutoffHz = MinCutoffHz
	}
	if cutoffHz > upper {
		cutoffHz = upper
	}
	return cutoffHz
}

// Calculate returns normalized low-pass or high-pass coefficients for
// cutoffHz at sampleRate, with Q fixed at ButterworthQ. The cutoff is
// clamped with [ClampCutoff] first, so for any positive finite sample rate
// the result is finite and its poles lie inside the unit circle.
// Unknown kinds design a low-pass.
func Calculate(kind Kind, cutoffHz, sampleRate float64) biquad.Coefficients {
	cutoffHz = ClampCutoff(cutoffHz, sampleRate)

	if kind == KindHighpass {
		return Highpass(cutoffHz, ButterworthQ, sampleRate)
	}
	return Lowpass(cutoffHz, ButterworthQ, sampleRate)
}
