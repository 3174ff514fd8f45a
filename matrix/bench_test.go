// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV *matrix.Vector
	sinkF float64
)

func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rng.Float64())
		}
	}

	return m
}

func benchVector(b *testing.B, n int, seed int64) *matrix.Vector {
	b.Helper()
	v, err := matrix.NewVector(n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		_ = v.Set(i, rng.Float64())
	}

	return v
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			B := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 3)
			x := benchVector(b, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MulVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.T()
			}
		})
	}
}

func BenchmarkInnerProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchVector(b, n, 6)
			y := benchVector(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.InnerProduct(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}
