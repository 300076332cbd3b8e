// Package effects provides the non-I/O effect kernels of the chain.
//
// Effects in this package:
//   - Saturate: drive-scaled tanh waveshaper with level compensation.
//   - Delay: feedback delay with dry/wet mix over a fixed one-second line.
//   - SoftLimit: soft-knee safety limiter bounding output to [-1, 1].
//
// All kernels are designed for real-time processing with zero-allocation
// hot paths and support both single-sample and buffer-based processing.
// Building with the fastmath tag swaps the tanh used by Saturate and
// SoftLimit for a faster approximation.
package effects
