package compat_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/scandict/compat"
	"github.com/katalvlaran/scandict/matrix"
)

var sinkAdj *matrix.BoolDense

func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{256, 1024} {
		r := mustRegistry(b, randomPatterns(1337, n, 32)...)
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					adj, err := compat.Build(r, compat.WithWorkers(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkAdj = adj
				}
			})
		}
	}
}
