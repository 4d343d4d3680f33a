// SPDX-License-Identifier: MIT
// Package matrix: the naive multiply kernel.
//
// Purpose:
//   - Compute product = left × right with a plain triple loop over int64.
//   - Keep the innermost unit of work in one named function (MultiplyAdd)
//     so it can be swapped or instrumented without touching the loop nest.
//
// Notes:
//   - No blocking, tiling, vectorization or parallelism. The loop nest is
//     the thing being measured.
//   - Arithmetic wraps on overflow (two's complement); nothing is checked.

package matrix

// MultiplyAdd is the accumulation step of the inner loop: partial + left*right.
// Overflow wraps silently.
func MultiplyAdd(partial, left, right int64) int64 {
	return partial + left*right
}

// oneCell computes product[row][col] as the dot product of left's row and
// right's column, summing the shared index in increasing order.
func oneCell(product, left, right Matrix, row, col int) {
	inner := right.Rows()
	leftRow := left[row]
	var partial int64
	for i := 0; i < inner; i++ {
		partial = MultiplyAdd(partial, leftRow[i], right[i][col])
	}
	product[row][col] = partial
}

// Multiply computes product = left × right in place.
// MAIN DESCRIPTION:
//   - Every cell of product is overwritten with
//     Σ_i left[row][i] * right[i][col] using wrapping int64 arithmetic.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(left, right).
//   - Stage 2: ValidateShape(product, left.Rows() × right.Cols()).
//   - Stage 3: row-major walk over product; oneCell per (row, col).
//
// Errors:
//   - *DimensionMismatchError (ErrDimensionMismatch) when left.Cols() != right.Rows().
//   - *ShapeMismatchError (ErrShapeMismatch) when product has the wrong shape.
//   - Both are detected before any cell is written.
//
// Determinism:
//   - Output cells in row-major order; the shared index runs 0..inner-1.
//     Intermediate overflow therefore wraps identically on every run.
//
// Complexity:
//   - Time O(rows(left) * cols(left) * cols(right)), Space O(1).
func Multiply(product, left, right Matrix) error {
	if err := ValidateMulCompatible(left, right); err != nil {
		return matrixErrorf(opMul, err)
	}
	rows, cols := left.Rows(), right.Cols()
	if err := ValidateShape(product, Shape{Rows: rows, Cols: cols}); err != nil {
		return matrixErrorf(opMul, err)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			oneCell(product, left, right, row, col)
		}
	}

	return nil
}
