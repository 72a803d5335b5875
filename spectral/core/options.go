package core

import "math/rand/v2"

// Visible range covered by the fixed sampling grid, in nanometres.
const (
	DefaultFixedMin = 380.0
	DefaultFixedMax = 730.0
)

// SamplerConfig defines settings shared by the sampling strategies.
type SamplerConfig struct {
	// Source feeds the stochastic strategies. Nil selects the global
	// math/rand/v2 generator, which is not reproducible across runs.
	Source rand.Source

	// FixedMin and FixedMax bound the deterministic wavelength grid.
	FixedMin float64
	FixedMax float64
}

// SamplerOption mutates a SamplerConfig.
type SamplerOption func(*SamplerConfig)

// DefaultSamplerConfig returns the visible-range grid with the global source.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		FixedMin: DefaultFixedMin,
		FixedMax: DefaultFixedMax,
	}
}

// WithSource sets the random source used by stochastic strategies.
func WithSource(src rand.Source) SamplerOption {
	return func(cfg *SamplerConfig) {
		cfg.Source = src
	}
}

// WithSeed installs a PCG source seeded with seed.
func WithSeed(seed uint64) SamplerOption {
	return func(cfg *SamplerConfig) {
		cfg.Source = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

// WithFixedRange sets the bounds of the deterministic wavelength grid.
// Invalid ranges are ignored.
func WithFixedRange(minWL, maxWL float64) SamplerOption {
	return func(cfg *SamplerConfig) {
		if minWL < maxWL {
			cfg.FixedMin = minWL
			cfg.FixedMax = maxWL
		}
	}
}

// ApplySamplerOptions applies zero or more options to the default config.
func ApplySamplerOptions(opts ...SamplerOption) SamplerConfig {
	cfg := DefaultSamplerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
