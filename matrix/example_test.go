package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/scandict/matrix"
)

// ExampleBoolDense builds a triangle with a pendant vertex and removes one
// vertex from a working copy.
func ExampleBoolDense() {
	m, _ := matrix.NewBoolDense(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}} {
		_ = m.Set(e[0], e[1], true)
		_ = m.Set(e[1], e[0], true)
	}

	work := m.Clone()
	_ = work.ClearVertex(2)

	fmt.Println("degree(2):", m.Degree(2), "→", work.Degree(2))
	fmt.Println("edges:", m.EdgeCount(), "→", work.EdgeCount())
	fmt.Print(work)
	// Output:
	// degree(2): 3 → 0
	// edges: 4 → 1
	// 0100
	// 1000
	// 0000
	// 0000
}
