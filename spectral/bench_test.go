// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/katalvlaran/lowrank/spectral"
)

func benchmarkDecompose(b *testing.B, backend spectral.Backend, n int) {
	a := randomDense(b, n, n, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.Decompose(a, spectral.WithBackend(backend)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecomposeLAPACK60(b *testing.B)  { benchmarkDecompose(b, spectral.BackendLAPACK, 60) }
func BenchmarkDecomposeJacobi60(b *testing.B)  { benchmarkDecompose(b, spectral.BackendJacobi, 60) }
func BenchmarkDecomposeLAPACK200(b *testing.B) { benchmarkDecompose(b, spectral.BackendLAPACK, 200) }

func BenchmarkReconstruct(b *testing.B) {
	d := mustDecompose(b, scenario(b).Noisy)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := spectral.Reconstruct(d, 10); err != nil {
			b.Fatal(err)
		}
	}
}
