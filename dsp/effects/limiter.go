package effects

const (
	// LimiterThreshold is the level above which SoftLimit starts compressing.
	LimiterThreshold = 0.95

	// limiterKnee is the headroom between the threshold and full scale.
	limiterKnee = 0.05
)

// SoftLimit is a memoryless soft-knee safety limiter.
//
// Samples with |x| <= LimiterThreshold pass unchanged. Above it the excess is
// folded through tanh into the remaining headroom:
//
//	y = sign(x) * (0.95 + tanh(|x| - 0.95) * 0.05)
//
// The result is finally clamped to [-1, 1]. NaN maps to 0, so every input
// yields a value in [-1, 1].
func SoftLimit(x float64) float64 {
	if x != x {
		return 0
	}

	abs := x
	if abs < 0 {
		abs = -abs
	}
	if abs <= LimiterThreshold {
		return x
	}

	y := LimiterThreshold + mathTanh(abs-LimiterThreshold)*limiterKnee
	if y > 1 {
		y = 1
	}
	if x < 0 {
		return -y
	}
	return y
}

// SoftLimitInPlace applies [SoftLimit] to every sample of buf.
func SoftLimitInPlace(buf []float64) {
	for i := range buf {
		buf[i] = SoftLimit(buf[i])
	}
}
