package effectchain

import (
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/effects"
	"github.com/cwbudde/algo-fxchain/dsp/filter/design"
)

// Process applies the chain to block in place using cfg for every sample.
//
// Non-finite input samples are replaced by 0 before they reach any state.
// Every output sample lies in [-1, 1]. Process never allocates, and an empty
// block leaves the processor untouched.
func (p *Processor) Process(block []float32, cfg Config) {
	if len(block) == 0 {
		return
	}

	cfg = cfg.Normalize()

	lp := design.Calculate(design.KindLowpass, cfg.LowpassCutoff, p.sampleRate)
	hp := design.Calculate(design.KindHighpass, cfg.HighpassCutoff, p.sampleRate)
	p.delay.Configure(cfg.DelayTime, cfg.DelayFeedback, cfg.DelayMix)

	for i, s := range block {
		x := float64(s)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			x = 0
		}

		x *= cfg.Gain
		x = effects.Saturate(x, cfg.Distortion)
		x = p.lowpass.ProcessSample(x, &lp)
		x = p.highpass.ProcessSample(x, &hp)
		x = p.delay.ProcessSample(x)
		x = effects.SoftLimit(x)

		block[i] = float32(x)
	}
}
