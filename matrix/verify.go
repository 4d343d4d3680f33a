// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
)

// Verify checks that actual equals expected cell by cell.
// MAIN DESCRIPTION:
//   - Shapes must match first; on mismatch no cell is compared.
//   - Cells are scanned in row-major order (the order Multiply writes them).
//     The first divergence is written to diag as a single line and returned
//     as *ValueMismatchError; later divergences are not reported.
//
// Inputs:
//   - diag: diagnostic stream; nil discards the diagnostic line.
//   - expected, actual: matrices to compare.
//
// Errors:
//   - *ShapeMismatchError (ErrShapeMismatch), *ValueMismatchError (ErrValueMismatch).
//
// Complexity:
//   - Time O(rows*cols) on success, Space O(1).
func Verify(diag io.Writer, expected, actual Matrix) error {
	if err := ValidateSameShape(expected, actual); err != nil {
		return matrixErrorf(opVerify, err)
	}

	rows, cols := expected.Rows(), expected.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			want, got := expected[row][col], actual[row][col]
			if want == got {
				continue
			}
			if diag != nil {
				// write errors on diag are ignored
				_, _ = fmt.Fprintf(diag, "  verify fails at expected[ %d ][ %d ]: %d !=  matrix[ %d ][ %d ]: %d\n",
					row, col, want, row, col, got)
			}

			return matrixErrorf(opVerify, &ValueMismatchError{
				Row:      row,
				Column:   col,
				Expected: want,
				Actual:   got,
			})
		}
	}

	return nil
}
