package testutil

import "github.com/cwbudde/algo-fxchain/dsp/core"

// Float32Block converts a generated signal into the single-precision block
// format taken by the effect chain.
func Float32Block(src []float64) []float32 {
	out := make([]float32, len(src))
	core.Narrow(out, src)
	return out
}

// SplitBlocks cuts signal into consecutive blocks of at most size samples.
// The blocks alias signal.
func SplitBlocks(signal []float32, size int) [][]float32 {
	if size <= 0 {
		return nil
	}
	blocks := make([][]float32, 0, (len(signal)+size-1)/size)
	for start := 0; start < len(signal); start += size {
		end := min(start+size, len(signal))
		blocks = append(blocks, signal[start:end])
	}
	return blocks
}
