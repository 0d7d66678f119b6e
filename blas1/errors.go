package blas1

import "errors"

var (
	// ErrDimension reports operands whose lengths or shapes disagree.
	ErrDimension = errors.New("blas1: dimension mismatch")

	// ErrCoefficients reports a coefficient vector whose length is neither
	// zero nor the number of columns.
	ErrCoefficients = errors.New("blas1: coefficient vector length mismatch")

	// ErrUnknownBackend reports a backend name that is not registered.
	ErrUnknownBackend = errors.New("blas1: unknown kernel backend")

	// ErrUnsupportedType reports an element type no backend provides
	// kernels for (e.g., a named float type).
	ErrUnsupportedType = errors.New("blas1: unsupported element type")
)
