package effects

import "github.com/cwbudde/algo-fxchain/dsp/core"

const (
	// maxSaturationDrive is the drive reached at amount 1.
	maxSaturationDrive = 10.0

	// saturationTrim is the output attenuation applied at amount 1.
	saturationTrim = 0.1
)

// SaturationDrive returns the input drive used by [Saturate] for amount,
// 1 + amount*9. amount is clamped to [0, 1].
func SaturationDrive(amount float64) float64 {
	amount = core.Clamp(amount, 0, 1)
	return 1 + amount*(maxSaturationDrive-1)
}

// Saturate shapes x with a drive-scaled tanh and compensates the level:
//
//	drive = 1 + amount*9
//	y     = tanh(x*drive) / (0.5 + 0.5*drive) * (1 - 0.1*amount)
//
// amount is clamped to [0, 1]. There is no bypass: at amount 0 the result is
// still tanh(x). The output magnitude never exceeds 1.
func Saturate(x, amount float64) float64 {
	amount = core.Clamp(amount, 0, 1)
	drive := 1 + amount*(maxSaturationDrive-1)
	shaped := mathTanh(x*drive) / (0.5 + 0.5*drive)
	return shaped * (1 - amount*saturationTrim)
}

// SaturateInPlace applies [Saturate] to every sample of buf.
func SaturateInPlace(buf []float64, amount float64) {
	for i := range buf {
		buf[i] = Saturate(buf[i], amount)
	}
}
