package peaks

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-peaks/dsp/wavelet"
)

// Config holds every tunable of FindPeaks.
type Config struct {
	Ridge   RidgeConfig
	Filter  FilterConfig
	Extract ExtractConfig

	// NoiseWindow is the noise estimation window. Auto uses a tenth of the
	// trace length.
	NoiseWindow int
	// MinNoise is the noise floor. A negative value uses 1% of the largest
	// finest-scale coefficient.
	MinNoise float64

	Thresholds    Thresholds
	MinProminence float64

	Kernel wavelet.Kernel
	Logger *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults of FindPeaks.
func DefaultConfig() Config {
	return Config{
		Ridge:       DefaultRidgeConfig(),
		Filter:      DefaultFilterConfig(),
		Extract:     DefaultExtractConfig(),
		NoiseWindow: Auto,
		MinNoise:    Auto,
		Kernel:      wavelet.Ricker,
		Logger:      zap.NewNop(),
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRidgeGapThreshold sets how many gaps a ridge tolerates before it stops
// growing. Auto restores the default of a quarter of the scale count.
func WithRidgeGapThreshold(gaps int) Option {
	return func(cfg *Config) {
		if gaps >= Auto {
			cfg.Ridge.GapThreshold = gaps
		}
	}
}

// WithRidgeMinSNR sets the signal-to-noise ratio a ridge must exceed.
func WithRidgeMinSNR(snr float64) Option {
	return func(cfg *Config) {
		cfg.Filter.MinSNR = snr
	}
}

// WithRidgeMinLength sets the number of scales a ridge must exceed.
func WithRidgeMinLength(length int) Option {
	return func(cfg *Config) {
		if length >= Auto {
			cfg.Filter.MinLength = length
		}
	}
}

// WithNoiseWindow sets the noise estimation window.
func WithNoiseWindow(window int) Option {
	return func(cfg *Config) {
		if window >= Auto {
			cfg.NoiseWindow = window
		}
	}
}

// WithMinNoise sets the noise floor.
func WithMinNoise(floor float64) Option {
	return func(cfg *Config) {
		cfg.MinNoise = floor
	}
}

// WithHeightMethod selects how peak tops are located.
func WithHeightMethod(method HeightMethod) Option {
	return func(cfg *Config) {
		cfg.Extract.Height = method
	}
}

// WithIntegrationMethod selects the baseline used for peak areas.
func WithIntegrationMethod(method IntegrationMethod) Option {
	return func(cfg *Config) {
		cfg.Extract.Integration = method
	}
}

// WithEdgePolicy selects the handling of peaks that overlap the trace ends.
func WithEdgePolicy(policy EdgePolicy) Option {
	return func(cfg *Config) {
		cfg.Extract.Edges = policy
	}
}

// WithMinArea sets the minimum peak area.
func WithMinArea(area float64) Option {
	return func(cfg *Config) {
		cfg.Thresholds.MinArea = area
	}
}

// WithMinHeight sets the minimum peak height.
func WithMinHeight(height float64) Option {
	return func(cfg *Config) {
		cfg.Thresholds.MinHeight = height
	}
}

// WithMinWidth sets the minimum peak width.
func WithMinWidth(width float64) Option {
	return func(cfg *Config) {
		cfg.Thresholds.MinWidth = width
	}
}

// WithMinProminence sets the minimum peak prominence.
func WithMinProminence(prominence float64) Option {
	return func(cfg *Config) {
		cfg.MinProminence = prominence
	}
}

// WithKernel replaces the Ricker wavelet.
func WithKernel(kernel wavelet.Kernel) Option {
	return func(cfg *Config) {
		if kernel != nil {
			cfg.Kernel = kernel
		}
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}
