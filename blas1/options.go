package blas1

import (
	"log/slog"

	"github.com/cwbudde/algo-blas/exec"
)

// MaxUnroll is the widest column count with a fixed-width kernel path.
const MaxUnroll = 16

// Config holds engine settings.
type Config struct {
	// Space partitions outer loops.
	Space exec.Space

	// Backend pins a kernel backend by name; empty selects by CPU features.
	Backend string

	// UnrollLimit is the widest column-major multivector routed to the
	// fixed-width path, in [1, MaxUnroll].
	UnrollLimit int

	// Logger receives one Debug record per dispatch.
	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the serial, auto-selected, silent configuration.
func DefaultConfig() Config {
	return Config{
		Space:       exec.Default(),
		UnrollLimit: MaxUnroll,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithSpace sets the execution space. nil is ignored.
func WithSpace(space exec.Space) Option {
	return func(cfg *Config) {
		if space != nil {
			cfg.Space = space
		}
	}
}

// WithBackend pins the kernel backend ("generic", "vecmath", "fma").
func WithBackend(name string) Option {
	return func(cfg *Config) {
		cfg.Backend = name
	}
}

// WithUnrollLimit sets the widest column count for the fixed-width path.
// Values outside [1, MaxUnroll] are ignored.
func WithUnrollLimit(n int) Option {
	return func(cfg *Config) {
		if n >= 1 && n <= MaxUnroll {
			cfg.UnrollLimit = n
		}
	}
}

// WithLogger sets the dispatch logger. nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies opts to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
