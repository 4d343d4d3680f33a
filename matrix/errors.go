// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the typed errors that carry
// offending dimensions, shapes and cell values.
// All operations MUST return errors that match these sentinels via
// errors.Is. No operation panics on a caller-triggered condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Typed errors Unwrap to their sentinel, so
// callers may use errors.Is for the kind and errors.As for the payload.
//
// ERROR PRIORITY (enforced in tests):
// inner dimension mismatch -> product shape mismatch -> value mismatch.

var (
	// ErrDimensionMismatch indicates incompatible operands for Multiply,
	// i.e. left.Cols() != right.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch indicates two matrices that were required to share a
	// shape do not (Verify operands, or Multiply's product target).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrValueMismatch indicates a cell whose actual value diverges from the
	// expected one.
	ErrValueMismatch = errors.New("matrix: value mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opMul    = "Multiply"
	opVerify = "Verify"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Shape is a (rows, cols) pair used in error payloads.
type Shape struct {
	Rows, Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// DimensionMismatchError carries both sides of a failed inner-dimension check.
type DimensionMismatchError struct {
	LeftColumns int // left.Cols()
	RightRows   int // right.Rows()
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%v: left columns (%d) != right rows (%d)",
		ErrDimensionMismatch, e.LeftColumns, e.RightRows)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// ShapeMismatchError carries the required and the observed shape.
type ShapeMismatchError struct {
	Expected Shape
	Actual   Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %v, got %v", ErrShapeMismatch, e.Expected, e.Actual)
}

// Unwrap exposes ErrShapeMismatch to errors.Is.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// ValueMismatchError reports the first diverging cell in row-major order.
type ValueMismatchError struct {
	Row, Column int
	Expected    int64
	Actual      int64
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("%v at [%d][%d]: expected %d, got %d",
		ErrValueMismatch, e.Row, e.Column, e.Expected, e.Actual)
}

// Unwrap exposes ErrValueMismatch to errors.Is.
func (e *ValueMismatchError) Unwrap() error { return ErrValueMismatch }
