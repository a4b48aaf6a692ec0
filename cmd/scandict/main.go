// Command scandict compacts scan-test patterns into a dictionary of merged
// entries.
//
// Usage:
//
//	scandict compact <input> <groups> <width> <output>
//	scandict compact --input vectors.txt --groups 16 --width 32 --output dict.txt
//	scandict stats --input vectors.txt --width 32
//	scandict config
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
