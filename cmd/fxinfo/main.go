// Command fxinfo prints the static properties of an effect chain setup.
//
// Usage:
//
//	fxinfo [flags] [frequency-hz ...]
//
// Without frequency arguments it evaluates a fixed set of octave points.
//
// Examples:
//
//	fxinfo -lowpass 8000 -highpass 120
//	fxinfo -rate 44100 -lowpass 2000 500 1000 2000 4000
//	fxinfo -measure -gain 2
//	fxinfo -windows
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-fxchain/dsp/effectchain"
	"github.com/cwbudde/algo-fxchain/internal/cli"
)

var defaultFreqs = []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}

func main() {
	def := effectchain.DefaultConfig()

	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	gain := flag.Float64("gain", def.Gain, "linear input gain")
	lowpass := flag.Float64("lowpass", def.LowpassCutoff, "low-pass cutoff in Hz")
	highpass := flag.Float64("highpass", def.HighpassCutoff, "high-pass cutoff in Hz")
	measure := flag.Bool("measure", false, "also measure each frequency by running a test tone through the chain")
	windows := flag.Bool("windows", false, "print the analyzer window table instead")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxinfo [flags] [frequency-hz ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints filter response, pole radii and memory footprint of the effect chain.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -lowpass 8000 -highpass 120\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -rate 44100 -lowpass 2000 500 1000 2000 4000\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -measure -gain 2\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -windows\n")
	}
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cli.LogHost(logger)

	if *windows {
		if err := printWindows(os.Stdout, analyzerFFTSize); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	freqs, err := parseFreqs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := effectchain.DefaultConfig()
	cfg.Gain = *gain
	cfg.LowpassCutoff = *lowpass
	cfg.HighpassCutoff = *highpass

	proc, err := effectchain.New(*rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printReport(os.Stdout, proc, cfg, freqs, *measure); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFreqs(args []string) ([]float64, error) {
	if len(args) == 0 {
		return defaultFreqs, nil
	}

	freqs := make([]float64, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("invalid frequency %q", a)
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}
