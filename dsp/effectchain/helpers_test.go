package effectchain

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-fxchain/internal/testutil"
)

func mustNew(t *testing.T, sampleRate float64) *Processor {
	t.Helper()
	p, err := New(sampleRate)
	if err != nil {
		t.Fatalf("New(%v): %v", sampleRate, err)
	}
	return p
}

// busyConfig exercises every stage at once.
func busyConfig() Config {
	return Config{
		Gain:           2.5,
		LowpassCutoff:  6000,
		HighpassCutoff: 120,
		Distortion:     0.6,
		DelayTime:      0.013,
		DelayFeedback:  0.8,
		DelayMix:       0.5,
	}
}

func noiseBlock(seed int64, amplitude float64, n int) []float32 {
	return testutil.Float32Block(testutil.DeterministicNoise(seed, amplitude, n))
}

// splitCopy returns independent copies of consecutive blocks of signal.
func splitCopy(signal []float32, size int) [][]float32 {
	blocks := testutil.SplitBlocks(append([]float32(nil), signal...), size)
	return blocks
}

func requireBitIdentical(t *testing.T, got, want []float32) {
	t.Helper()
	testutil.RequireBitIdentical32(t, got, want)
}

func blockName(size int) string {
	return "block=" + strconv.Itoa(size)
}
