// Command fxrender runs a WAV file through the effect chain.
//
// Usage:
//
//	fxrender -in input.wav -out output.wav [flags]
//
// Multichannel input is averaged to mono. The output is always mono.
//
// Examples:
//
//	fxrender -in dry.wav -out wet.wav -distortion 0.4 -lowpass 6000
//	fxrender -in dry.wav -out wet.wav -delay-time 0.25 -delay-feedback 0.5 -delay-mix 0.4 -tail 2
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-fxchain/dsp/dither"
	"github.com/cwbudde/algo-fxchain/dsp/effectchain"
	"github.com/cwbudde/algo-fxchain/internal/cli"
)

func main() {
	def := effectchain.DefaultConfig()

	inPath := flag.String("in", "", "input WAV file")
	outPath := flag.String("out", "", "output WAV file")
	block := flag.Int("block", 512, "processing block size in samples")
	bits := flag.Int("bits", 16, "output bit depth (16 or 24)")
	ditherName := flag.String("dither", "tpdf", "output dither (none, rpdf, tpdf)")
	shape := flag.Bool("shape", false, "enable first-order noise shaping on the output")
	tail := flag.Float64("tail", 0, "seconds of silence appended to let the delay ring out")
	gain := flag.Float64("gain", def.Gain, "linear input gain")
	gainDB := flag.Float64("gain-db", 0, "extra input gain in dB, applied on top of -gain")
	lowpass := flag.Float64("lowpass", def.LowpassCutoff, "low-pass cutoff in Hz")
	highpass := flag.Float64("highpass", def.HighpassCutoff, "high-pass cutoff in Hz")
	distortion := flag.Float64("distortion", def.Distortion, "saturation amount [0,1]")
	delayTime := flag.Float64("delay-time", def.DelayTime, "delay time in seconds")
	delayFeedback := flag.Float64("delay-feedback", def.DelayFeedback, "delay feedback [0,1]")
	delayMix := flag.Float64("delay-mix", def.DelayMix, "delay wet amount [0,1]")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxrender -in input.wav -out output.wav [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a WAV file through gain, distortion, filters, delay and limiter.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fxrender -in dry.wav -out wet.wav -distortion 0.4 -lowpass 6000\n")
		fmt.Fprintf(os.Stderr, "  fxrender -in dry.wav -out wet.wav -delay-time 0.25 -delay-mix 0.4 -tail 2\n")
	}
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cli.LogHost(logger)

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	ditherKind, err := dither.ParseKind(*ditherName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := renderOptions{
		blockSize: *block,
		bitDepth:  *bits,
		dither:    ditherKind,
		shape:     *shape,
		tail:      *tail,
		cfg: effectchain.Config{
			Gain:           combinedGain(*gain, *gainDB),
			LowpassCutoff:  *lowpass,
			HighpassCutoff: *highpass,
			Distortion:     *distortion,
			DelayTime:      *delayTime,
			DelayFeedback:  *delayFeedback,
			DelayMix:       *delayMix,
		},
	}

	if err := run(*inPath, *outPath, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, opts renderOptions, logger *slog.Logger) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	stats, err := render(in, out, opts, logger)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(outPath)
		return err
	}

	logger.Info("rendered",
		"out", outPath,
		"frames", stats.frames,
		"sample_rate", stats.sampleRate,
		"peak_db", fmt.Sprintf("%.2f", stats.peakDB),
		"rms_db", fmt.Sprintf("%.2f", stats.rmsDB),
		"clips", stats.clips)
	return nil
}
