package compat_test

import (
	"fmt"

	"github.com/katalvlaran/scandict/compat"
	"github.com/katalvlaran/scandict/pattern"
	"github.com/katalvlaran/scandict/registry"
)

// ExampleBuild prints the compatibility table of four 4-bit patterns.
// "0XXX" conflicts with the other three at position 0.
func ExampleBuild() {
	reg, _ := registry.New([]pattern.Pattern{"10XX", "1X1X", "1XX0", "0XXX"})
	adj, err := compat.Build(reg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(adj)
	fmt.Println("edges:", adj.EdgeCount())
	// Output:
	// 0110
	// 1010
	// 1100
	// 0000
	// edges: 3
}
