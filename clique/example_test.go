package clique_test

import (
	"fmt"

	"github.com/katalvlaran/scandict/clique"
	"github.com/katalvlaran/scandict/matrix"
)

// ExampleCover peels cliques off a 6-vertex graph: a triangle {0,1,2}, a
// vertex 3 hanging off 0 and 1, and an edge {4,5}.
func ExampleCover() {
	g, _ := matrix.NewBoolDense(6)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {4, 5}} {
		_ = g.Set(e[0], e[1], true)
		_ = g.Set(e[1], e[0], true)
	}

	res, err := clique.Cover(g, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, grp := range res.Groups {
		fmt.Printf("group %d: %v\n", i, grp)
	}
	fmt.Println("exhausted:", res.Exhausted, "shortfall:", res.Shortfall())
	// Output:
	// group 0: [0 1 2]
	// group 1: [3]
	// group 2: [4 5]
	// exhausted: true shortfall: 7
}
