package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-fxchain/dsp/core"
	"github.com/cwbudde/algo-fxchain/dsp/dither"
	"github.com/cwbudde/algo-fxchain/dsp/effectchain"
	"github.com/cwbudde/algo-fxchain/measure/level"
)

type renderOptions struct {
	blockSize int
	bitDepth  int
	dither    dither.Kind
	// shape enables first-order noise shaping on the output quantizer.
	shape bool
	// tail is appended silence in seconds so the delay can ring out.
	tail float64
	cfg  effectchain.Config
}

type renderStats struct {
	frames     int
	sampleRate int
	peakDB     float64
	rmsDB      float64
	clips      int64
}

// combinedGain folds the -gain and -gain-db flags into one linear factor.
func combinedGain(linear, db float64) float64 {
	return linear * core.DBToLinear(db)
}

func render(in io.ReadSeeker, out io.WriteSeeker, opts renderOptions, logger *slog.Logger) (renderStats, error) {
	if opts.blockSize < 1 {
		return renderStats{}, fmt.Errorf("invalid block size: %d", opts.blockSize)
	}
	if err := checkOutputBitDepth(opts.bitDepth); err != nil {
		return renderStats{}, err
	}

	quant, err := dither.NewQuantizer(
		dither.WithBitDepth(opts.bitDepth),
		dither.WithKind(opts.dither),
		dither.WithErrorFeedback(opts.shape),
	)
	if err != nil {
		return renderStats{}, err
	}

	clip, err := decodeMono(in)
	if err != nil {
		return renderStats{}, err
	}
	logger.Debug("decoded input",
		"frames", len(clip.samples),
		"sample_rate", clip.sampleRate,
		"bits", clip.bitDepth,
		"channels", clip.channels)

	proc, err := effectchain.New(float64(clip.sampleRate))
	if err != nil {
		return renderStats{}, err
	}
	meter := level.NewMeter(
		level.WithSampleRate(float64(clip.sampleRate)),
		level.WithBlockSize(opts.blockSize),
	)

	tail := 0
	if opts.tail > 0 && !math.IsInf(opts.tail, 0) {
		tail = int(math.Round(opts.tail * float64(clip.sampleRate)))
	}
	samples := make([]float32, len(clip.samples)+tail)
	copy(samples, clip.samples)

	cfg := opts.cfg.Normalize()
	blocks := 0
	for start := 0; start < len(samples); start += opts.blockSize {
		block := samples[start:min(start+opts.blockSize, len(samples))]
		proc.Process(block, cfg)
		meter.Update(block)
		blocks++
	}
	logger.Debug("processed", "blocks", blocks, "block_size", opts.blockSize, "tail_frames", tail)

	wide := make([]float64, len(samples))
	core.Widen(wide, samples)

	stats := renderStats{
		frames:     len(samples),
		sampleRate: clip.sampleRate,
		peakDB:     core.LinearToDBFloor(level.Peak(wide), level.FloorDB),
		rmsDB:      core.LinearToDBFloor(level.RMS(wide), level.FloorDB),
		clips:      meter.Levels().Clips,
	}

	if err := encodeMono(out, samples, clip.sampleRate, quant); err != nil {
		return renderStats{}, err
	}
	return stats, nil
}
