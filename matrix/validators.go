// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the shape checks used
//     by Multiply and Verify.
//   - Keep kernels minimal by delegating guard logic here.
//
// Determinism & Performance:
//   - All checks are pure, O(1), and allocate only on failure.
//
// Note:
//   - Validators return typed errors unwrapped; the public operation wraps
//     them once with its op tag.

package matrix

// ValidateMulCompatible ensures left.Cols() == right.Rows().
//
// Returns: nil or *DimensionMismatchError.
// Complexity: O(1).
func ValidateMulCompatible(left, right Matrix) error {
	if left.Cols() != right.Rows() {
		return &DimensionMismatchError{LeftColumns: left.Cols(), RightRows: right.Rows()}
	}

	return nil
}

// ValidateShape ensures m has exactly the shape want.
//
// Returns: nil or *ShapeMismatchError.
// Complexity: O(1).
func ValidateShape(m Matrix, want Shape) error {
	got := m.Shape()
	if got != want {
		return &ShapeMismatchError{Expected: want, Actual: got}
	}

	return nil
}

// ValidateSameShape ensures a and b share a shape; a is treated as the
// expected side in the error payload.
//
// Returns: nil or *ShapeMismatchError.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	return ValidateShape(b, a.Shape())
}
