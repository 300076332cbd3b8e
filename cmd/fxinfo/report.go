package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-fxchain/dsp/core"
	"github.com/cwbudde/algo-fxchain/dsp/effectchain"
	"github.com/cwbudde/algo-fxchain/dsp/filter/design"
	"github.com/cwbudde/algo-fxchain/dsp/signal"
	"github.com/cwbudde/algo-fxchain/dsp/spectrum"
	"github.com/cwbudde/algo-fxchain/dsp/window"
	"github.com/cwbudde/algo-fxchain/internal/cli"
)

const (
	analyzerFFTSize = 2048
	toneAmplitude   = 0.01
)

func printReport(w io.Writer, proc *effectchain.Processor, cfg effectchain.Config, freqs []float64, measure bool) error {
	cfg = cfg.Normalize()
	sr := proc.SampleRate()
	gainDB := core.LinearToDB(cfg.Gain)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stage\tCutoff [Hz]\tPole Radius\tStable\n")
	fmt.Fprintf(tw, "-----\t-----------\t-----------\t------\n")
	for _, st := range []struct {
		kind   design.Kind
		cutoff float64
	}{
		{design.KindLowpass, cfg.LowpassCutoff},
		{design.KindHighpass, cfg.HighpassCutoff},
	} {
		fc := design.ClampCutoff(st.cutoff, sr)
		c := design.Calculate(st.kind, fc, sr)
		fmt.Fprintf(tw, "%s\t%.1f\t%.6f\t%t\n", st.kind, fc, c.PoleRadius(), c.IsStable())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	resp := proc.ResponseDB(cfg, freqs, nil)
	if measure {
		fmt.Fprintf(tw, "Freq [Hz]\tFilters [dB]\tWith Gain [dB]\tMeasured [dB]\n")
		fmt.Fprintf(tw, "---------\t------------\t--------------\t-------------\n")
	} else {
		fmt.Fprintf(tw, "Freq [Hz]\tFilters [dB]\tWith Gain [dB]\n")
		fmt.Fprintf(tw, "---------\t------------\t--------------\n")
	}
	for i, f := range freqs {
		if !measure {
			fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\n", f, resp[i], resp[i]+gainDB)
			continue
		}
		m, err := measureGainDB(sr, cfg, f)
		if err != nil {
			fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t-\n", f, resp[i], resp[i]+gainDB)
			continue
		}
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.2f\n", f, resp[i], resp[i]+gainDB, m)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintf(tw, "Sample Rate\t%.0f Hz\n", sr)
	fmt.Fprintf(tw, "Delay Capacity\t%d samples\n", proc.BufferCapacity())
	fmt.Fprintf(tw, "Delay Buffer\t%d bytes\n", proc.BufferSizeBytes())
	fmt.Fprintf(tw, "Memory Usage\t%d bytes\n", proc.MemoryUsage())
	fmt.Fprintf(tw, "SIMD\t%s\n", cli.SIMDSummary())
	return tw.Flush()
}

// measureGainDB runs a quiet tone at f through a fresh chain for one second
// and compares the second half of input and output.
func measureGainDB(sampleRate float64, cfg effectchain.Config, f float64) (float64, error) {
	proc, err := effectchain.New(sampleRate)
	if err != nil {
		return 0, err
	}

	gen := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(sampleRate)})
	in, err := gen.Sine(f, toneAmplitude, int(sampleRate))
	if err != nil {
		return 0, err
	}
	out := make([]float32, len(in))
	copy(out, in)

	cfg.DelayMix = 0
	proc.Process(out, cfg)

	half := len(in) / 2
	return spectrum.ToneGainDB(in[half:], out[half:], f, sampleRate)
}

func printWindows(w io.Writer, size int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tSidelobe [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\n")
	for _, t := range window.Types() {
		coeffs := window.Generate(t, size, window.WithPeriodic())
		cg, err := window.CoherentGain(coeffs)
		if err != nil {
			return err
		}
		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.1f\n", t, size, cg, enbw, window.Info(t).HighestSidelobe)
	}
	return tw.Flush()
}
