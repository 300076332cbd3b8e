package effectchain

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-fxchain/dsp/delay"
	"github.com/cwbudde/algo-fxchain/dsp/effects"
	"github.com/cwbudde/algo-fxchain/dsp/filter/biquad"
)

// ErrInvalidSampleRate is returned by [New] for a sample rate that is not
// positive and finite or that rounds to a zero-length delay line.
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// Processor owns the state of one mono effect chain.
type Processor struct {
	sampleRate float64

	lowpass  biquad.Section
	highpass biquad.Section
	delay    *effects.Delay
}

// New creates a processor for sampleRate. The delay line of round(sampleRate)
// samples is allocated here and nowhere else.
func New(sampleRate float64) (*Processor, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("effectchain: %w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if math.Round(sampleRate) < 1 {
		return nil, fmt.Errorf("effectchain: %w: %v rounds to an empty delay line", ErrInvalidSampleRate, sampleRate)
	}

	d, err := effects.NewDelay(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("effectchain: %w", err)
	}

	return &Processor{
		sampleRate: sampleRate,
		delay:      d,
	}, nil
}

// Reset zeroes both filter histories and the whole delay line and rewinds
// its write position. Nothing is reallocated.
func (p *Processor) Reset() {
	p.lowpass.Reset()
	p.highpass.Reset()
	p.delay.Reset()
}

// SampleRate returns the sample rate the processor was built for.
func (p *Processor) SampleRate() float64 {
	return p.sampleRate
}

// BufferCapacity returns the delay line capacity in samples.
func (p *Processor) BufferCapacity() int {
	return p.delay.Capacity()
}

// BufferSizeBytes returns the delay line storage in bytes.
func (p *Processor) BufferSizeBytes() int {
	return p.delay.SizeBytes()
}

// MemoryUsage returns the approximate memory held by the processor:
// its own struct, the delay stage and line structs and the line storage.
func (p *Processor) MemoryUsage() int {
	return int(unsafe.Sizeof(*p)) +
		int(unsafe.Sizeof(effects.Delay{})) +
		int(unsafe.Sizeof(delay.Line{})) +
		p.delay.SizeBytes()
}
