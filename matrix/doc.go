// Package matrix holds the numeric core of the mxv benchmark.
//
// The matrix package provides:
//
//   - Matrix, a row-major [][]int64 grid backed by one contiguous buffer,
//     with Allocate and an in-place Initialize for reuse across repetitions.
//   - Multiply, the naive triple-loop kernel with wrapping int64 arithmetic
//     and a single named accumulate step (MultiplyAdd).
//   - Verify, a fail-fast element-wise comparison that reports only the
//     first diverging cell.
//
// Errors are typed (DimensionMismatchError, ShapeMismatchError,
// ValueMismatchError) and unwrap to package sentinels, so callers can
// match with errors.Is and read payloads with errors.As.
//
// Nothing in this package is safe for concurrent mutation; the harness
// owns every matrix exclusively.
package matrix
