package compact

import (
	"sort"

	"github.com/katalvlaran/scandict/clique"
)

// SortBySizeDesc orders groups by descending size in place. Groups of equal
// size keep their extraction order.
// Complexity: O(K log K).
func SortBySizeDesc(groups []clique.Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Len() > groups[j].Len()
	})
}
