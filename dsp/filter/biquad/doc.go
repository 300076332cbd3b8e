// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form I processing: it keeps the last two
// inputs and the last two outputs and applies [Coefficients] supplied by the
// caller on every call. Keeping the coefficients outside the section lets a
// block processor recompute them once per block and hold them fixed for the
// whole block without touching filter history.
//
// Coefficient design (RBJ low-pass/high-pass) lives in dsp/filter/design.
package biquad
