package webdemo

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fxchain/dsp/core"
	"github.com/cwbudde/algo-fxchain/dsp/spectrum"
	"github.com/cwbudde/algo-fxchain/dsp/window"
)

// SpectrumParams configures the analyzer behind the spectrum display.
type SpectrumParams struct {
	FFTSize   int
	Overlap   float64
	Smoothing float64
	Window    string
}

func defaultSpectrumParams() SpectrumParams {
	return SpectrumParams{
		FFTSize:   2048,
		Overlap:   0.5,
		Smoothing: 0.8,
		Window:    "blackmanharris",
	}
}

// SetSpectrum updates analyzer settings used for the spectrum display.
// Out-of-range values are replaced; only an unknown window name fails.
func (e *Engine) SetSpectrum(p SpectrumParams) error {
	cfg := sanitizeSpectrumParams(p)

	winType, err := spectrumWindowType(cfg.Window)
	if err != nil {
		return err
	}

	a, err := spectrum.NewAnalyzer(e.sampleRate,
		spectrum.WithFFTSize(cfg.FFTSize),
		spectrum.WithOverlap(cfg.Overlap),
		spectrum.WithSmoothing(cfg.Smoothing),
		spectrum.WithWindow(winType),
	)
	if err != nil {
		return fmt.Errorf("spectrum init: %w", err)
	}

	e.spectrum = cfg
	e.analyzer = a

	return nil
}

// Spectrum returns the active analyzer settings.
func (e *Engine) Spectrum() SpectrumParams {
	return e.spectrum
}

func (e *Engine) initSpectrumAnalyzer() error {
	return e.SetSpectrum(e.spectrum)
}

func sanitizeSpectrumParams(p SpectrumParams) SpectrumParams {
	cfg := p
	switch cfg.FFTSize {
	case 256, 512, 1024, 2048, 4096, 8192:
	default:
		cfg.FFTSize = 2048
	}

	cfg.Overlap = core.Clamp(core.FiniteOr(cfg.Overlap, 0.5), 0.25, 0.95)
	cfg.Smoothing = core.Clamp(core.FiniteOr(cfg.Smoothing, 0.8), 0, 0.95)

	cfg.Window = strings.ToLower(strings.TrimSpace(cfg.Window))
	if cfg.Window == "" {
		cfg.Window = "blackmanharris"
	}

	return cfg
}

func spectrumWindowType(name string) (window.Type, error) {
	switch name {
	case "rectangular":
		return window.TypeRectangular, nil
	case "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	case "blackmanharris":
		return window.TypeBlackmanHarris4Term, nil
	case "flattop":
		return window.TypeFlatTop, nil
	default:
		return 0, fmt.Errorf("unsupported spectrum window: %s", name)
	}
}
