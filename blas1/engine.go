package blas1

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"sync"

	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernels"
	_ "github.com/cwbudde/algo-blas/internal/kernels/arch/all"
	"github.com/cwbudde/algo-blas/internal/kernels/registry"
	"github.com/cwbudde/algo-blas/view"
)

// Tag classifies an axpby coefficient.
type Tag = kernels.Tag

const (
	TagZero     = kernels.TagZero
	TagMinusOne = kernels.TagMinusOne
	TagOne      = kernels.TagOne
	TagGeneral  = kernels.TagGeneral
	TagVector   = kernels.TagVector
)

// Classify returns the tag the dispatcher uses for a scalar coefficient.
func Classify[T view.Scalar](alpha T) Tag { return kernels.Classify(alpha) }

// Engine runs level-1 operations for element type T with one kernel
// backend and one execution space. An Engine is safe for concurrent use.
type Engine[T view.Scalar] struct {
	cfg     Config
	backend string
	set     *kernels.Set[T]
}

// New builds an engine. Without WithBackend the highest-priority backend
// supported by the CPU is used.
func New[T view.Scalar](opts ...Option) (*Engine[T], error) {
	cfg := ApplyOptions(opts...)

	var entry *registry.Entry
	if cfg.Backend != "" {
		entry = registry.Global.LookupName(cfg.Backend)
		if entry == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
		}
	} else {
		entry = registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			return nil, fmt.Errorf("%w: none registered", ErrUnknownBackend)
		}
	}

	set := registry.SetFor[T](entry)
	if set == nil {
		var zero T
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, zero)
	}

	return &Engine[T]{cfg: cfg, backend: entry.Name, set: set}, nil
}

// Backend returns the name of the kernel backend in use.
func (e *Engine[T]) Backend() string { return e.backend }

// Config returns the engine configuration.
func (e *Engine[T]) Config() Config { return e.cfg }

// run executes fn inside a trace region and logs the plan at Debug level.
func (e *Engine[T]) run(ctx context.Context, p Plan, fn func() error) error {
	if e.cfg.Logger.Enabled(ctx, slog.LevelDebug) {
		e.cfg.Logger.LogAttrs(ctx, slog.LevelDebug, "blas1 dispatch", p.attrs()...)
	}
	if p.Path == PathEmpty {
		return nil
	}

	var err error
	trace.WithRegion(ctx, "blas1."+p.Op+"["+e.backend+"]", func() {
		err = fn()
	})
	return err
}

var (
	default64 = sync.OnceValues(func() (*Engine[float64], error) { return New[float64]() })
	default32 = sync.OnceValues(func() (*Engine[float32], error) { return New[float32]() })
)

// Default returns the shared serial engine for T used by the package-level
// functions.
func Default[T view.Scalar]() (*Engine[T], error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		eng, err := default64()
		if err != nil {
			return nil, err
		}
		return any(eng).(*Engine[T]), nil
	case float32:
		eng, err := default32()
		if err != nil {
			return nil, err
		}
		return any(eng).(*Engine[T]), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, zero)
	}
}

func nonNil(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
