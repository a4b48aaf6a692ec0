// Package matrix_test provides benchmarks for BoolDense row operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/scandict/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkM *matrix.BoolDense
)

func randomAdjacency(b *testing.B, n int, seed int64) *matrix.BoolDense {
	b.Helper()
	m, err := matrix.NewBoolDense(n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(2) == 0 {
				_ = m.Set(i, j, true)
				_ = m.Set(j, i, true)
			}
		}
	}

	return m
}

func BenchmarkDegree(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomAdjacency(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = m.Degree(i % n)
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomAdjacency(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = m.Clone()
			}
		})
	}
}
