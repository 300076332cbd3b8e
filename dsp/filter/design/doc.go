// Package design provides biquad coefficient designers.
//
// [Lowpass] and [Highpass] are the RBJ cookbook second-order designs.
// [Calculate] wraps them with the fixed Butterworth quality factor and the
// cutoff clamp used by the effects chain, so that every frequency a caller
// can pass yields a finite, stable section.
package design
