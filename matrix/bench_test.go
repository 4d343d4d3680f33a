// Package matrix_test provides benchmarks for the multiply kernel, the
// in-place reset and the verifier.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mxv/matrix"
)

// benchShapes are (rows, columns) of the left operand; right is columns×1.
var benchShapes = [][2]int{{128, 128}, {512, 256}, {1000, 800}}

// sinks to defeat dead-code elimination
var (
	sinkM   matrix.Matrix
	sinkErr error
)

func BenchmarkMultiply(b *testing.B) {
	for _, s := range benchShapes {
		r, c := s[0], s[1]
		b.Run(fmt.Sprintf("%dx%d", r, c), func(b *testing.B) {
			left := matrix.Allocate(r, c, 1)
			right := matrix.Allocate(c, 1, 1)
			product := matrix.Allocate(r, 1, 0)
			b.ReportAllocs()
			b.SetBytes(int64(8 * (r*c + c + r)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = matrix.Multiply(product, left, right)
			}
			sinkM = product
		})
	}
}

func BenchmarkInitialize(b *testing.B) {
	for _, s := range benchShapes {
		r, c := s[0], s[1]
		b.Run(fmt.Sprintf("%dx%d", r, c), func(b *testing.B) {
			m := matrix.Allocate(r, c, 1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = matrix.Initialize(m, 0)
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, s := range benchShapes {
		r := s[0]
		b.Run(fmt.Sprintf("rows=%d", r), func(b *testing.B) {
			expected := matrix.Allocate(r, 1, 7)
			actual := matrix.Allocate(r, 1, 7)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = matrix.Verify(nil, expected, actual)
			}
		})
	}
}
