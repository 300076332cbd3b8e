package effectchain

import (
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/core"
	"github.com/cwbudde/algo-fxchain/dsp/filter/design"
)

// responseFloorDB bounds ResponseDB from below.
const responseFloorDB = -240.0

// ResponseDB writes the combined low-pass and high-pass magnitude in dB at
// each of freqs into dst and returns it. dst is reused when large enough.
// The result reflects what Process would apply for cfg; processing state is
// not touched.
func (p *Processor) ResponseDB(cfg Config, freqs, dst []float64) []float64 {
	cfg = cfg.Normalize()
	lp := design.Calculate(design.KindLowpass, cfg.LowpassCutoff, p.sampleRate)
	hp := design.Calculate(design.KindHighpass, cfg.HighpassCutoff, p.sampleRate)

	dst = core.EnsureLen(dst, len(freqs))
	for i, f := range freqs {
		mag2 := lp.MagnitudeSquared(f, p.sampleRate) * hp.MagnitudeSquared(f, p.sampleRate)
		if math.IsNaN(mag2) || mag2 <= 0 {
			dst[i] = responseFloorDB
			continue
		}
		dst[i] = math.Max(responseFloorDB, 10*math.Log10(mag2))
	}

	return dst
}
