// Package givens_test provides benchmarks for the synthesis kernels on
// deterministic random unitaries.
package givens_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/katalvlaran/fermiq/cmat"
	"github.com/katalvlaran/fermiq/givens"
	"github.com/katalvlaran/fermiq/spectral"
)

// benchModes are the register sizes to benchmark.
var benchModes = []int{8, 16, 32}

// sink defeats dead-code elimination.
var sinkC *circuit.Circuit

func benchUnitary(b *testing.B, n int) *cmat.Dense {
	b.Helper()
	h, err := cmat.RandomHermitian(n, 1337)
	if err != nil {
		b.Fatal(err)
	}
	dec, err := spectral.Decompose(h)
	if err != nil {
		b.Fatal(err)
	}

	return dec.U
}

func BenchmarkSynthesize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchModes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			u := benchUnitary(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := givens.Synthesize(u)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = c
			}
		})
	}
}

func BenchmarkSynthesizePrepare(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchModes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			u := benchUnitary(b, n)
			rows := make([][]complex128, n/2)
			for k := range rows {
				rows[k] = u.Row(k)
			}
			q, err := cmat.FromRows(rows)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := givens.SynthesizePrepare(q)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = c
			}
		})
	}
}
