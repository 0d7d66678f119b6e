package blas1

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-blas/view"
)

// Path names the loop structure the dispatcher picked.
type Path string

const (
	PathEmpty          Path = "empty"
	PathVector         Path = "vector"
	PathVectorStrided  Path = "vector-strided"
	PathUnrolled       Path = "unrolled"
	PathGenericLeft    Path = "generic-left"
	PathGenericRight   Path = "generic-right"
	PathGenericStrided Path = "generic-strided"
)

// Plan describes one dispatch decision.
type Plan struct {
	Op      string
	Path    Path
	Unroll  int // column count of the fixed-width path, 0 otherwise
	A, B    Tag
	Rows    int
	Cols    int
	Backend string
	Space   string
}

// String formats the plan on one line.
func (p Plan) String() string {
	s := fmt.Sprintf("%s %dx%d path=%s a=%s b=%s backend=%s space=%s",
		p.Op, p.Rows, p.Cols, p.Path, p.A, p.B, p.Backend, p.Space)
	if p.Unroll > 0 {
		s += fmt.Sprintf(" unroll=%d", p.Unroll)
	}
	return s
}

func (p Plan) attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("op", p.Op),
		slog.String("path", string(p.Path)),
		slog.Int("unroll", p.Unroll),
		slog.String("a", p.A.String()),
		slog.String("b", p.B.String()),
		slog.Int("rows", p.Rows),
		slog.Int("cols", p.Cols),
		slog.String("backend", p.Backend),
		slog.String("space", p.Space),
	}
}

func (e *Engine[T]) newPlan(op string, rows, cols int, a, b Tag) Plan {
	return Plan{
		Op:      op,
		A:       a,
		B:       b,
		Rows:    rows,
		Cols:    cols,
		Backend: e.backend,
		Space:   e.cfg.Space.Name(),
	}
}

// planVector routes rank-1 operands.
func (e *Engine[T]) planVector(op string, a, b Tag, vs ...view.Vector[T]) Plan {
	p := e.newPlan(op, vs[0].Len(), 1, a, b)
	switch {
	case p.Rows == 0:
		p.Path = PathEmpty
	case allContiguous(vs...):
		p.Path = PathVector
	default:
		p.Path = PathVectorStrided
	}
	return p
}

// planMatrix routes rank-2 operands.
func (e *Engine[T]) planMatrix(op string, a, b Tag, ms ...view.Matrix[T]) Plan {
	m := ms[0]
	p := e.newPlan(op, m.Rows, m.Cols, a, b)

	switch {
	case m.Rows == 0 || m.Cols == 0:
		p.Path = PathEmpty
	case m.Cols == 1:
		cols := make([]view.Vector[T], len(ms))
		for i := range ms {
			cols[i] = ms[i].Col(0)
		}
		if allContiguous(cols...) {
			p.Path = PathVector
		} else {
			p.Path = PathVectorStrided
		}
	case allLayout(view.LayoutLeft, ms...):
		if m.Cols <= e.cfg.UnrollLimit {
			p.Path = PathUnrolled
			p.Unroll = m.Cols
		} else {
			p.Path = PathGenericLeft
		}
	case allLayout(view.LayoutRight, ms...):
		p.Path = PathGenericRight
	default:
		p.Path = PathGenericStrided
	}
	return p
}

func allContiguous[T view.Scalar](vs ...view.Vector[T]) bool {
	for _, v := range vs {
		if !v.Contiguous() {
			return false
		}
	}
	return true
}

func allLayout[T view.Scalar](layout view.Layout, ms ...view.Matrix[T]) bool {
	for _, m := range ms {
		if m.Layout() != layout {
			return false
		}
	}
	return true
}
