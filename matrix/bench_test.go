// Package matrix_test provides benchmarks for the exact matrix kernels,
// using deterministic random integer fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/exactlu/matrix"
)

// benchSizes are the matrix sizes to benchmark. Rational products are costly,
// so the sizes stay small.
var benchSizes = []int{8, 16, 32}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkV matrix.Vector
)

// randDense fills an n×n matrix with integers in [-50, 50] from seed.
func randDense(b *testing.B, n int, seed int64) *matrix.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(101) - 50
		}
	}
	m, err := matrix.FromNumbers(rows)
	if err != nil {
		b.Fatalf("FromNumbers: %v", err)
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 1337)
			B := randDense(b, n, 4242)
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
			A := randDense(b, n, 1337)
			x := A.Rows()[0]
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.MulVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkReflect(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Reflect(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
