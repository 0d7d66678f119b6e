// Package blas1 implements the level-1 BLAS operations axpby and rot over
// dense vectors and multivectors.
//
// Every axpby call goes through three steps:
//
//  1. Each coefficient is classified as 0, -1, +1, a general scalar or a
//     per-column coefficient vector.
//  2. The tag pair selects one of 16 kernel cells from the backend chosen
//     for the running CPU (generic, vecmath or fma). Literal zero
//     coefficients follow BLAS semantics: the operand they scale is never
//     read, so NaN or Inf entries in it do not reach the result.
//  3. The operand shapes and memory layouts pick the loop structure: a
//     single column is handled as a vector, column-major multivectors with
//     up to UnrollLimit columns use the fixed-width path, and row-major or
//     strided multivectors use the generic paths for their memory order.
//
// Outer loops are partitioned by the configured exec.Space.
//
// Usage:
//
//	eng, err := blas1.New[float64](blas1.WithSpace(exec.NewThreads()))
//	if err != nil { ... }
//	// y = 2*x - y
//	err = eng.Axpby(ctx, y, 2, x, -1, y)
package blas1
