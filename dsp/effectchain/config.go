package effectchain

import (
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/core"
)

const (
	defaultGain           = 1.0
	defaultLowpassCutoff  = 20000.0
	defaultHighpassCutoff = 20.0
)

// Config holds the per-block effect parameters.
//
// Out-of-range values are never an error: [Config.Normalize] and the stages
// clamp them silently.
type Config struct {
	// Gain is the linear input gain. It is not clamped: the limiter bounds
	// the output. NaN means unity; ±Inf is held at ±MaxFloat64 so silence
	// stays silent instead of turning into NaN.
	Gain float64

	// LowpassCutoff in Hz, clamped to [20, 0.45*sampleRate] per block.
	LowpassCutoff float64

	// HighpassCutoff in Hz, clamped like LowpassCutoff.
	HighpassCutoff float64

	// Distortion is the saturation amount in [0, 1].
	Distortion float64

	// DelayTime in seconds, clamped to the delay line capacity.
	DelayTime float64

	// DelayFeedback in [0, 1], additionally limited to 0.95 and scaled by 0.7.
	DelayFeedback float64

	// DelayMix is the wet amount in [0, 1].
	DelayMix float64
}

// DefaultConfig returns unity gain, a 20 kHz low-pass, a 20 Hz high-pass,
// no saturation and no delay.
func DefaultConfig() Config {
	return Config{
		Gain:           defaultGain,
		LowpassCutoff:  defaultLowpassCutoff,
		HighpassCutoff: defaultHighpassCutoff,
	}
}

// Normalize returns a copy with NaN and out-of-range fields replaced.
// Cutoffs are left for the coefficient calculator to clamp against the
// sample rate.
func (c Config) Normalize() Config {
	c.Gain = gain(c.Gain)
	c.LowpassCutoff = nanOr(c.LowpassCutoff, defaultLowpassCutoff)
	c.HighpassCutoff = nanOr(c.HighpassCutoff, defaultHighpassCutoff)
	c.Distortion = unit(c.Distortion)
	c.DelayTime = math.Max(nanOr(c.DelayTime, 0), 0)
	c.DelayFeedback = unit(c.DelayFeedback)
	c.DelayMix = unit(c.DelayMix)

	return c
}

func nanOr(x, fallback float64) float64 {
	if math.IsNaN(x) {
		return fallback
	}

	return x
}

func gain(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return defaultGain
	case math.IsInf(x, 0):
		return math.Copysign(math.MaxFloat64, x)
	}

	return x
}

func unit(x float64) float64 {
	return core.Clamp(nanOr(x, 0), 0, 1)
}
