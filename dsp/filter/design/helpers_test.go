package design

import "github.com/cwbudde/algo-fxchain/dsp/filter/biquad"

type sectionUnderTest = biquad.Section
