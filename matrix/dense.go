// SPDX-License-Identifier: MIT

// Package matrix - row-major int64 storage, allocation & in-place reset.
//
// Purpose:
//   - Provide the rectangular int64 grid the benchmark multiplies.
//   - Allocate once, reset in place: reallocating per repetition would put
//     allocator cost inside the timed window.
//
// Complexity quicksheet:
//   - Allocate: O(r*c); Initialize: O(r*c); Clone: O(r*c); Rows/Cols/Shape: O(1).

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a row-major grid of int64 values, indexed m[row][col].
//   - Rows() reads len(m); Cols() reads the length of the first row.
//   - All rows are assumed to share one length; ragged matrices are not
//     checked and produce undefined results in Multiply/Verify.
type Matrix [][]int64

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix(nil)

// Allocate creates a rows×cols matrix with every cell set to value.
// MAIN DESCRIPTION:
//   - Single contiguous backing buffer sliced into rows, so the whole grid
//     is laid out row-major in memory.
//
// Implementation:
//   - Stage 1: allocate one []int64 of rows*cols.
//   - Stage 2: slice it into rows with full-slice expressions (cap == cols)
//     so no row can grow into its neighbour.
//   - Stage 3: Initialize(value).
//
// Inputs:
//   - rows, cols: shape; the caller guarantees both are positive.
//   - value: fill value.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
//
// Notes:
//   - No shape validation; negative dimensions panic inside make. Callers
//     (the harness config) validate shape up front.
func Allocate(rows, cols int, value int64) Matrix {
	buf := make([]int64, rows*cols)
	m := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		m[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return Initialize(m, value)
}

// Initialize overwrites every cell of m with value and returns m.
// No reallocation takes place. Complexity: O(rows*cols).
func Initialize(m Matrix, value int64) Matrix {
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		row := m[i]
		for j := 0; j < cols; j++ {
			row[j] = value
		}
	}

	return m
}

// Clone returns a deep copy of m on a fresh contiguous buffer.
// Mutations of the copy never reach m. Complexity: O(rows*cols).
func Clone(m Matrix) Matrix {
	rows, cols := m.Rows(), m.Cols()
	cp := Allocate(rows, cols, 0)
	for i := 0; i < rows; i++ {
		copy(cp[i], m[i])
	}

	return cp
}

// Rows returns the row count. Complexity: O(1).
func (m Matrix) Rows() int { return len(m) }

// Cols returns the length of the first row, or 0 for a matrix without rows.
// Complexity: O(1).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Shape packs Rows() and Cols() into a Shape value.
func (m Matrix) Shape() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// Equal reports whether m and other share a shape and every cell.
// Unlike Verify it writes no diagnostics and returns no error.
func (m Matrix) Equal(other Matrix) bool {
	if m.Shape() != other.Shape() {
		return false
	}
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed, comma-separated line per row.
func (m Matrix) String() string {
	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			b.WriteString(strconv.FormatInt(m[i][j], 10))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Display writes a human-oriented dump of m to w: a shape header followed
// by one line of right-aligned cells per row. Intended for small matrices.
func Display(w io.Writer, m Matrix) error {
	rows, cols := m.Rows(), m.Cols()
	if _, err := fmt.Fprintf(w, "  matrix:  rows: %d X columns: %d\n", rows, cols); err != nil {
		return err
	}
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.Reset()
		b.WriteString("    ")
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "  %4d", m[i][j])
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}
