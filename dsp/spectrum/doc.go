// Package spectrum analyzes the frequency content of processed audio.
//
// [Analyzer] keeps a sliding window over pushed blocks and produces a
// smoothed dBFS magnitude curve for display. [Goertzel] measures the
// amplitude of a single tone, which is what gain checks against a computed
// filter response need.
package spectrum
