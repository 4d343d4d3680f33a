package matrix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mxv/matrix"
)

// TestVerifyIdentical succeeds silently.
func TestVerifyIdentical(t *testing.T) {
	var diag bytes.Buffer
	expected := matrix.Allocate(4, 3, 12)
	actual := matrix.Allocate(4, 3, 12)

	require.NoError(t, matrix.Verify(&diag, expected, actual))
	require.Zero(t, diag.Len())
}

// TestVerifyShapeMismatch fails without comparing or printing anything.
func TestVerifyShapeMismatch(t *testing.T) {
	cases := []struct {
		name             string
		expected, actual matrix.Matrix
	}{
		{"rows", matrix.Allocate(3, 1, 4), matrix.Allocate(2, 1, 4)},
		{"cols", matrix.Allocate(3, 1, 4), matrix.Allocate(3, 2, 4)},
		{"both", matrix.Allocate(1, 1, 0), matrix.Allocate(2, 2, 9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var diag bytes.Buffer
			err := matrix.Verify(&diag, tc.expected, tc.actual)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			require.NotErrorIs(t, err, matrix.ErrValueMismatch)

			var sm *matrix.ShapeMismatchError
			require.True(t, errors.As(err, &sm))
			require.Equal(t, tc.expected.Shape(), sm.Expected)
			require.Equal(t, tc.actual.Shape(), sm.Actual)
			require.Zero(t, diag.Len())
		})
	}
}

// TestVerifyFirstMismatchOnly reports the first diverging cell in row-major order.
func TestVerifyFirstMismatchOnly(t *testing.T) {
	var diag bytes.Buffer
	expected := matrix.Allocate(3, 2, 4)
	actual := matrix.Allocate(3, 2, 4)
	actual[1][1] = 5  // first divergence in row-major order
	actual[2][0] = -1 // must not be reported

	err := matrix.Verify(&diag, expected, actual)
	require.ErrorIs(t, err, matrix.ErrValueMismatch)

	var vm *matrix.ValueMismatchError
	require.True(t, errors.As(err, &vm))
	require.Equal(t, matrix.ValueMismatchError{Row: 1, Column: 1, Expected: 4, Actual: 5}, *vm)

	require.Equal(t, "  verify fails at expected[ 1 ][ 1 ]: 4 !=  matrix[ 1 ][ 1 ]: 5\n", diag.String())
	require.NotContains(t, diag.String(), "-1")
}

// TestVerifyNilDiagnostic still fails when no diagnostic stream is given.
func TestVerifyNilDiagnostic(t *testing.T) {
	err := matrix.Verify(nil, matrix.Allocate(1, 1, 1), matrix.Allocate(1, 1, 2))
	require.ErrorIs(t, err, matrix.ErrValueMismatch)
	require.EqualError(t, err, "Verify: matrix: value mismatch at [0][0]: expected 1, got 2")
}
