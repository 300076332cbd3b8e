//go:build fastmath

package effects

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// tanhSaturation is where the fast path returns ±1 directly.
const tanhSaturation = 20.0

// mathTanh computes tanh(x) using fast approximation.
// Uses the identity: tanh(|x|) = 1 - 2/(e^(2|x|) + 1), with the sign of x
// copied back so the result is exactly odd.
func mathTanh(x float64) float64 {
	if x != x {
		return x
	}
	ax := math.Abs(x)
	if ax > tanhSaturation {
		return math.Copysign(1, x)
	}
	return math.Copysign(1-2/(approx.FastExp(2*ax)+1), x)
}
