package blas1_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-blas/blas1"
	"github.com/cwbudde/algo-blas/exec"
	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/view"
)

func TestDefaultConfig(t *testing.T) {
	cfg := blas1.DefaultConfig()
	assert.Equal(t, "serial", cfg.Space.Name())
	assert.Empty(t, cfg.Backend)
	assert.Equal(t, blas1.MaxUnroll, cfg.UnrollLimit)
	require.NotNil(t, cfg.Logger)
	assert.False(t, cfg.Logger.Enabled(context.Background(), slog.LevelError))
}

func TestApplyOptions(t *testing.T) {
	threads := exec.NewThreads(exec.WithWorkers(2))
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name  string
		opts  []blas1.Option
		check func(t *testing.T, cfg blas1.Config)
	}{
		{"space", []blas1.Option{blas1.WithSpace(threads)}, func(t *testing.T, cfg blas1.Config) {
			assert.Same(t, threads, cfg.Space)
		}},
		{"nil space ignored", []blas1.Option{blas1.WithSpace(nil)}, func(t *testing.T, cfg blas1.Config) {
			assert.Equal(t, "serial", cfg.Space.Name())
		}},
		{"backend", []blas1.Option{blas1.WithBackend("fma")}, func(t *testing.T, cfg blas1.Config) {
			assert.Equal(t, "fma", cfg.Backend)
		}},
		{"unroll limit", []blas1.Option{blas1.WithUnrollLimit(8)}, func(t *testing.T, cfg blas1.Config) {
			assert.Equal(t, 8, cfg.UnrollLimit)
		}},
		{"unroll limit out of range", []blas1.Option{blas1.WithUnrollLimit(0), blas1.WithUnrollLimit(17)}, func(t *testing.T, cfg blas1.Config) {
			assert.Equal(t, blas1.MaxUnroll, cfg.UnrollLimit)
		}},
		{"logger", []blas1.Option{blas1.WithLogger(logger)}, func(t *testing.T, cfg blas1.Config) {
			assert.Same(t, logger, cfg.Logger)
		}},
		{"nil option", []blas1.Option{nil, blas1.WithLogger(nil)}, func(t *testing.T, cfg blas1.Config) {
			assert.NotNil(t, cfg.Logger)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, blas1.ApplyOptions(tc.opts...))
		})
	}
}

func TestNewBackendSelection(t *testing.T) {
	t.Cleanup(cpu.ResetDetection)

	cpu.SetForcedFeatures(cpu.Features{HasFMA: true})
	eng, err := blas1.New[float64]()
	require.NoError(t, err)
	assert.Equal(t, "fma", eng.Backend())

	cpu.SetForcedFeatures(cpu.Features{HasFMA: true, ForceGeneric: true})
	eng, err = blas1.New[float64]()
	require.NoError(t, err)
	assert.Equal(t, "generic", eng.Backend())

	if slices.Contains(backends, "vecmath") {
		cpu.SetForcedFeatures(cpu.Features{HasSSE2: true, HasNEON: true})
		eng, err = blas1.New[float64]()
		require.NoError(t, err)
		assert.Equal(t, "vecmath", eng.Backend())
	}

	cpu.SetForcedFeatures(cpu.Features{})
	eng32, err := blas1.New[float32]()
	require.NoError(t, err)
	assert.Equal(t, "generic", eng32.Backend())
}

func TestNewErrors(t *testing.T) {
	_, err := blas1.New[float64](blas1.WithBackend("avx9000"))
	require.ErrorIs(t, err, blas1.ErrUnknownBackend)

	type celsius float64
	_, err = blas1.New[celsius]()
	require.ErrorIs(t, err, blas1.ErrUnsupportedType)

	_, err = blas1.Default[celsius]()
	require.ErrorIs(t, err, blas1.ErrUnsupportedType)
}

func TestDispatchLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := newEngine[float64](t, "generic", blas1.WithLogger(logger))

	m := view.NewMatrix[float64](8, 3, view.LayoutLeft)
	require.NoError(t, eng.AxpbyMV(context.Background(), m, 2, m, 0, m))

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=\"blas1 dispatch\"", "op=axpby", "path=unrolled",
		"unroll=3", "a=scalar", "b=0", "rows=8", "cols=3", "backend=generic", "space=serial",
	} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	quiet := newEngine[float64](t, "generic",
		blas1.WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))))
	require.NoError(t, quiet.AxpbyMV(context.Background(), m, 2, m, 0, m))
	assert.Empty(t, buf.String())
}

func TestPlanString(t *testing.T) {
	eng := newEngine[float64](t, "generic")
	m := view.NewMatrix[float64](4, 2, view.LayoutLeft)
	p, err := eng.PlanAxpbyMV(m, 1, m, -1, m)
	require.NoError(t, err)
	assert.Equal(t, "axpby 4x2 path=unrolled a=1 b=-1 backend=generic space=serial unroll=2", p.String())
}

func TestPackageFunctions(t *testing.T) {
	ctx := context.Background()

	x := view.VectorOf([]float64{1, 2, 3})
	y := view.VectorOf([]float64{1, 1, 1})
	require.NoError(t, blas1.Axpy(ctx, 2, x, y))
	assert.Equal(t, []float64{3, 5, 7}, y.Slice())

	r := view.NewVector[float32](2)
	require.NoError(t, blas1.Axpby(ctx, r, 1, view.VectorOf([]float32{1, 2}), -1, view.VectorOf([]float32{2, 2})))
	assert.Equal(t, []float32{-1, 0}, r.Slice())

	m := matrixFrom(t, kindRight, []float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, blas1.AxpbyMV(ctx, m, 3, m, 0, m))
	assert.Equal(t, []float64{3, 6, 9, 12}, logical(m))

	require.NoError(t, blas1.AxpbyMVCoeffs(ctx, m, []float64{1, 0.5}, m, nil, m))
	assert.Equal(t, []float64{3, 3, 9, 6}, logical(m))

	a, b := view.VectorOf([]float64{1}), view.VectorOf([]float64{2})
	require.NoError(t, blas1.Rot(ctx, a, b, 0, 1))
	assert.Equal(t, []float64{2}, a.Slice())
	assert.Equal(t, []float64{-1}, b.Slice())

	// nil context is treated as Background.
	//nolint:staticcheck
	require.NoError(t, blas1.Axpy(nil, 1, x, y))
}
