// Package level measures sample peak and RMS levels of audio blocks.
//
// [Peak] and [RMS] evaluate a single buffer. [Meter] follows a stream of
// blocks and keeps the latest block levels in dBFS, a decaying peak hold
// and a count of clipped samples.
package level
