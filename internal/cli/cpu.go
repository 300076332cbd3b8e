package cli

import (
	"log/slog"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// SIMDSummary names the vector extensions the block math kernels can use on
// this host, for example "amd64: sse2 avx2".
func SIMDSummary() string {
	return summarize(cpu.DetectFeatures())
}

func summarize(f cpu.Features) string {
	var ext []string
	if !f.ForceGeneric {
		if f.HasSSE2 {
			ext = append(ext, "sse2")
		}
		if f.HasAVX2 {
			ext = append(ext, "avx2")
		}
		if f.HasNEON {
			ext = append(ext, "neon")
		}
	}
	if len(ext) == 0 {
		ext = append(ext, "generic")
	}
	return f.Architecture + ": " + strings.Join(ext, " ")
}

// LogHost records the detected SIMD support at debug level.
func LogHost(logger *slog.Logger) {
	logger.Debug("host capabilities", "simd", SIMDSummary())
}
