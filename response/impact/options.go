package impact

import (
	"io"

	"github.com/cwbudde/algo-response/response"
)

// Config defines how planes are built.
type Config struct {
	// ImpactsPerWire is the number of tabulated paths per wire.
	ImpactsPerWire int

	// Electronics, when set, is convolved with every path response.
	Electronics response.Generator

	// Tolerance is the relative and absolute tolerance used to check that
	// impact and wire spacings are uniform.
	Tolerance float64

	// Concurrency bounds the number of planes built at once by NewPlanes.
	// Zero means one goroutine per plane.
	Concurrency int

	// OpsLog receives actionable diagnostics such as lookups that fall
	// outside the populated rows. DiagLog receives construction summaries.
	// Nil disables the stream.
	OpsLog  io.Writer
	DiagLog io.Writer
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration matching the common six impacts
// per wire tabulation, without electronics.
func DefaultConfig() Config {
	return Config{
		ImpactsPerWire: 6,
		Tolerance:      1e-6,
	}
}

// WithImpactsPerWire sets the number of tabulated paths per wire. Values
// below 2 are ignored.
func WithImpactsPerWire(n int) Option {
	return func(cfg *Config) {
		if n >= 2 {
			cfg.ImpactsPerWire = n
		}
	}
}

// WithColdElectronics convolves path responses with the cold-electronics
// response of the given gain and shaping time. A gain <= 0 disables
// convolution.
func WithColdElectronics(gain, shaping float64) Option {
	return func(cfg *Config) {
		if gain <= 0 {
			cfg.Electronics = nil
			return
		}
		cfg.Electronics = response.ColdElec{Gain: gain, Shaping: shaping}
	}
}

// WithElectronics convolves path responses with the response sampled from
// gen. Nil disables convolution.
func WithElectronics(gen response.Generator) Option {
	return func(cfg *Config) {
		cfg.Electronics = gen
	}
}

// WithTolerance sets the spacing tolerance. Values <= 0 are ignored.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.Tolerance = tol
		}
	}
}

// WithConcurrency bounds the number of planes built at once. Values <= 0
// are ignored.
func WithConcurrency(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Concurrency = n
		}
	}
}

// WithLogWriters sets the ops and diag log streams. Pass nil to disable a
// stream.
func WithLogWriters(ops, diag io.Writer) Option {
	return func(cfg *Config) {
		cfg.OpsLog = ops
		cfg.DiagLog = diag
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
