// Package exec provides the execution spaces the blas1 kernels run on.
//
// A Space partitions an outer index range [0, n) into contiguous chunks and
// runs a range function on each one. Serial runs inline; Threads spreads
// chunks over a bounded set of goroutines.
//
// Usage:
//
//	space := exec.NewThreads(exec.WithWorkers(8))
//	err := space.ParallelFor(ctx, rows, func(lo, hi int) {
//	    processRows(lo, hi)
//	})
package exec

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Space runs a range function over [0, n).
type Space interface {
	// Name identifies the space in plans and logs.
	Name() string

	// Concurrency is the maximum number of chunks run at once.
	Concurrency() int

	// ParallelFor calls fn over disjoint ranges covering [0, n) and returns
	// once every call has finished. It returns ctx.Err() if ctx is done
	// before all chunks were scheduled.
	ParallelFor(ctx context.Context, n int, fn func(lo, hi int)) error
}

// Serial executes everything on the calling goroutine.
type Serial struct{}

// Name returns "serial".
func (Serial) Name() string { return "serial" }

// Concurrency returns 1.
func (Serial) Concurrency() int { return 1 }

// ParallelFor calls fn(0, n) unless ctx is already done.
func (Serial) ParallelFor(ctx context.Context, n int, fn func(lo, hi int)) error {
	if n <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	fn(0, n)
	return nil
}

// Default returns the space used when none is configured.
func Default() Space { return Serial{} }

// DefaultMinChunk is the smallest outer range handed to one worker.
const DefaultMinChunk = 4096

// Threads runs chunks on up to Workers goroutines.
type Threads struct {
	workers  int
	minChunk int
}

// ThreadsOption configures a Threads space.
type ThreadsOption func(*Threads)

// WithWorkers sets the worker count. Non-positive values are ignored.
func WithWorkers(n int) ThreadsOption {
	return func(t *Threads) {
		if n > 0 {
			t.workers = n
		}
	}
}

// WithMinChunk sets the smallest range given to one worker. Non-positive
// values are ignored.
func WithMinChunk(n int) ThreadsOption {
	return func(t *Threads) {
		if n > 0 {
			t.minChunk = n
		}
	}
}

// NewThreads returns a Threads space with GOMAXPROCS workers by default.
func NewThreads(opts ...ThreadsOption) *Threads {
	t := &Threads{
		workers:  runtime.GOMAXPROCS(0),
		minChunk: DefaultMinChunk,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Name returns "threads".
func (t *Threads) Name() string { return "threads" }

// Concurrency returns the worker count.
func (t *Threads) Concurrency() int { return t.workers }

// MinChunk returns the configured grain.
func (t *Threads) MinChunk() int { return t.minChunk }

// ParallelFor splits [0, n) into at most Concurrency() chunks of at least
// MinChunk() indices. Small ranges run inline. A panic in fn is re-raised
// on the calling goroutine once every scheduled chunk has finished.
func (t *Threads) ParallelFor(ctx context.Context, n int, fn func(lo, hi int)) error {
	if n <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	chunks := min(t.workers, n/t.minChunk)
	if chunks <= 1 {
		fn(0, n)
		return nil
	}
	chunkSize := (n + chunks - 1) / chunks

	var (
		g       errgroup.Group
		stopped error
		caught  panicValue
	)
	g.SetLimit(t.workers)
	for lo := 0; lo < n; lo += chunkSize {
		if err := ctx.Err(); err != nil {
			stopped = err
			break
		}
		hi := min(lo+chunkSize, n)
		g.Go(func() error {
			defer caught.capture()
			fn(lo, hi)
			return nil
		})
	}
	// Chunks never fail; Wait only joins them.
	_ = g.Wait()
	caught.repanic()
	return stopped
}

// panicValue keeps the first panic raised by a chunk so ParallelFor can
// re-raise it on the calling goroutine.
type panicValue struct {
	mu  sync.Mutex
	set bool
	val any
}

func (p *panicValue) capture() {
	v := recover()
	if v == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.set {
		p.set, p.val = true, v
	}
}

func (p *panicValue) repanic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.set {
		panic(p.val)
	}
}
