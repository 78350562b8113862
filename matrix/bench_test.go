// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{60, 128, 200}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 1337)
			B := RandomDense(b, n, n, 4242)
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

func BenchmarkGram(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := matrix.Gram(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = g
			}
		})
	}
}

func BenchmarkEigen(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 60} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := matrix.Gram(RandomDense(b, n, n, 7))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, _, err := matrix.Eigen(g, 1e-9, 100)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = vals
			}
		})
	}
}
