package level

import "github.com/cwbudde/algo-fxchain/dsp/core"

const defaultHoldDecayDBPerSecond = 20.0

// MeterConfig defines configuration for the level meter.
type MeterConfig struct {
	core.ProcessorConfig

	// HoldDecay is the fall rate of the peak hold in dB per second.
	HoldDecay float64
}

// MeterOption mutates a MeterConfig.
type MeterOption func(*MeterConfig)

// DefaultMeterConfig returns sensible defaults.
func DefaultMeterConfig() MeterConfig {
	return MeterConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		HoldDecay:       defaultHoldDecayDBPerSecond,
	}
}

// WithSampleRate sets the sample rate used to time the hold decay.
func WithSampleRate(sampleRate float64) MeterOption {
	return func(cfg *MeterConfig) {
		core.WithSampleRate(sampleRate)(&cfg.ProcessorConfig)
	}
}

// WithBlockSize sizes the scratch buffer for the expected block length.
// Longer blocks still work but grow the buffer once.
func WithBlockSize(blockSize int) MeterOption {
	return func(cfg *MeterConfig) {
		core.WithBlockSize(blockSize)(&cfg.ProcessorConfig)
	}
}

// WithHoldDecay sets the peak hold fall rate in dB per second.
// Zero holds the peak until Reset.
func WithHoldDecay(dBPerSecond float64) MeterOption {
	return func(cfg *MeterConfig) {
		if dBPerSecond >= 0 && core.IsFinite(dBPerSecond) {
			cfg.HoldDecay = dBPerSecond
		}
	}
}

// ApplyMeterOptions applies zero or more options to the default config.
func ApplyMeterOptions(opts ...MeterOption) MeterConfig {
	cfg := DefaultMeterConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
