package biquad

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Array returns the coefficients in [b0, b1, b2, a1, a2] order.
func (c *Coefficients) Array() [5]float64 {
	return [5]float64{c.B0, c.B1, c.B2, c.A1, c.A2}
}

// IsFinite reports whether all five coefficients are finite.
func (c *Coefficients) IsFinite() bool {
	for _, v := range c.Array() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Section is the state of one Direct Form I biquad: the last two inputs
// (x1, x2) and the last two outputs (y1, y2). The zero value is a section
// at rest.
type Section struct {
	x1, x2 float64
	y1, y2 float64
}

// ProcessSample filters one input sample with c and returns the output.
func (s *Section) ProcessSample(x float64, c *Coefficients) float64 {
	y := c.B0*x + c.B1*s.x1 + c.B2*s.x2 - c.A1*s.y1 - c.A2*s.y2

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters buf in place with c. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64, c *Coefficients) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s.x1, s.x2, s.y1, s.y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.x1, s.x2, s.y1, s.y2 = x1, x2, y1, y2
}

// Reset clears the filter history to zero.
func (s *Section) Reset() {
	*s = Section{}
}

// State returns the current history as [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved history.
func (s *Section) SetState(state [4]float64) {
	s.x1, s.x2, s.y1, s.y2 = state[0], state[1], state[2], state[3]
}
