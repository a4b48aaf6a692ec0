package compact_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/scandict/compact"
	"github.com/katalvlaran/scandict/pattern"
)

// ExampleCompact compacts four 4-bit patterns into a two-entry dictionary.
func ExampleCompact() {
	in := []pattern.Pattern{"10XX", "1X1X", "1XX0", "0XXX"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	res, err := compact.Compact(context.Background(), in, 2, compact.WithLogger(logger))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range res.Patterns {
		fmt.Println(p, res.Groups[i])
	}
	fmt.Println("shortfall:", res.Shortfall())
	// Output:
	// 1010 [1 2 3]
	// 0XXX [4]
	// shortfall: 0
}
