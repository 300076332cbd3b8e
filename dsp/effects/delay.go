package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/core"
	"github.com/cwbudde/algo-fxchain/dsp/delay"
)

const (
	// MaxDelayFeedback is the largest feedback amount accepted by Configure.
	MaxDelayFeedback = 0.95

	// DelayFeedbackScale is applied on top of the clamped feedback, so the
	// effective loop gain never exceeds 0.95*0.7.
	DelayFeedbackScale = 0.7
)

// Delay is a feedback delay with dry/wet mix.
//
// The line holds round(sampleRate) samples, about one second, and is
// allocated once by [NewDelay]. Parameters set with [Delay.Configure] stay
// fixed until the next call.
type Delay struct {
	sampleRate float64
	line       *delay.Line

	delaySamples int
	feedback     float64
	mix          float64
}

// NewDelay creates a delay stage for sampleRate with zero time, feedback and mix.
func NewDelay(sampleRate float64) (*Delay, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("delay sample rate must be > 0: %f", sampleRate)
	}

	size := int(math.Round(sampleRate))
	if size < 1 {
		return nil, fmt.Errorf("delay sample rate too low for a one-second line: %f", sampleRate)
	}

	line, err := delay.New(size)
	if err != nil {
		return nil, err
	}

	return &Delay{sampleRate: sampleRate, line: line}, nil
}

// Configure sets the delay parameters used by subsequent samples.
//
// timeSeconds is clamped to [0, (Capacity()-1)/sampleRate] and rounded to
// whole samples. feedback is clamped to [0, MaxDelayFeedback] and scaled by
// DelayFeedbackScale. mix is clamped to [0, 1]. NaN values map to 0.
func (d *Delay) Configure(timeSeconds, feedback, mix float64) {
	maxIndex := d.line.Len() - 1
	maxTime := float64(maxIndex) / d.sampleRate

	timeSeconds = core.Clamp(nanToZero(timeSeconds), 0, maxTime)
	samples := int(math.Round(timeSeconds * d.sampleRate))
	if samples > maxIndex {
		samples = maxIndex
	}
	if samples < 0 {
		samples = 0
	}
	d.delaySamples = samples

	d.feedback = core.Clamp(nanToZero(feedback), 0, MaxDelayFeedback) * DelayFeedbackScale
	d.mix = core.Clamp(nanToZero(mix), 0, 1)
}

// ProcessSample processes one sample.
func (d *Delay) ProcessSample(input float64) float64 {
	delayed := d.line.Read(d.delaySamples)
	d.line.Write(input + delayed*d.feedback)
	return input*(1-d.mix*0.5) + delayed*d.mix
}

// ProcessInPlace applies the delay to buf in place.
func (d *Delay) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// Reset zeroes the line and rewinds its write position. Parameters are kept.
func (d *Delay) Reset() {
	d.line.Reset()
}

// SampleRate returns sample rate in Hz.
func (d *Delay) SampleRate() float64 { return d.sampleRate }

// Capacity returns the line length in samples.
func (d *Delay) Capacity() int { return d.line.Len() }

// SizeBytes returns the size of the line storage in bytes.
func (d *Delay) SizeBytes() int { return d.line.SizeBytes() }

// DelaySamples returns the configured delay in whole samples.
func (d *Delay) DelaySamples() int { return d.delaySamples }

// Feedback returns the effective loop gain after clamping and scaling.
func (d *Delay) Feedback() float64 { return d.feedback }

// Mix returns the wet amount in [0, 1].
func (d *Delay) Mix() float64 { return d.mix }

// Line exposes the underlying delay line.
func (d *Delay) Line() *delay.Line { return d.line }

func nanToZero(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}
