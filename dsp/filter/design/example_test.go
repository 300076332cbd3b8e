package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-fxchain/dsp/filter/design"
)

func ExampleCalculate() {
	const sr = 48000.0

	lp := design.Calculate(design.KindLowpass, 1000, sr)
	fmt.Printf("%v at cutoff: %.2f dB, stable=%v\n", design.KindLowpass, lp.MagnitudeDB(1000, sr), lp.IsStable())

	hp := design.Calculate(design.KindHighpass, 1000, sr)
	fmt.Printf("%v at cutoff: %.2f dB, stable=%v\n", design.KindHighpass, hp.MagnitudeDB(1000, sr), hp.IsStable())
	// Output:
	// lowpass at cutoff: -3.01 dB, stable=true
	// highpass at cutoff: -3.01 dB, stable=true
}

func ExampleClampCutoff() {
	fmt.Println(design.ClampCutoff(5, 48000))
	fmt.Println(design.ClampCutoff(30000, 48000))
	// Output:
	// 20
	// 21600
}
