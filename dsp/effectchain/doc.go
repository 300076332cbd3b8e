// Package effectchain runs the fixed mono effect chain over blocks of samples.
//
// Every sample of a block passes through the same stages in the same order:
//
//	gain -> saturation -> low-pass -> high-pass -> feedback delay -> soft limiter
//
// Parameters arrive as a [Config] value with every [Processor.Process] call.
// Filter coefficients and delay settings are derived once per block and held
// for all of its samples. The processor owns the filter and delay state, and
// [Processor.Reset] returns it to the freshly constructed condition.
//
// A Processor is not safe for concurrent use.
package effectchain
