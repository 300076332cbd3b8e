package delay

import (
	"fmt"

	"github.com/cwbudde/algo-fxchain/dsp/core"
)

// Line is a fixed-capacity circular delay line.
//
// The write position always lies in [0, Len()) and advances by one on every
// [Line.Write]. Storage is allocated once by [New] and never grows.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a zeroed delay line holding size samples.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the line capacity in samples.
func (d *Line) Len() int {
	return len(d.buffer)
}

// SizeBytes returns the size of the sample storage in bytes.
func (d *Line) SizeBytes() int {
	return len(d.buffer) * 8
}

// Position returns the current write position.
func (d *Line) Position() int {
	return d.writePos
}

// Write stores sample at the write position and advances it.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the sample written delay steps before the next write slot.
// Read(0) returns the oldest sample, which is about to be overwritten.
// Delays outside [0, Len()) are clamped.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	if delay < 0 {
		delay = 0
	} else if delay >= size {
		delay = size - 1
	}
	readPos := d.writePos - delay
	if readPos < 0 {
		readPos += size
	}
	return d.buffer[readPos]
}

// Reset zeroes the stored samples and rewinds the write position.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}
