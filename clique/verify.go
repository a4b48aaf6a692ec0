package clique

import (
	"fmt"

	"github.com/katalvlaran/scandict/matrix"
)

// Verify checks finalized groups against adj:
//   - every member is a valid vertex (ErrVertexOutOfRange),
//   - no group is empty (ErrEmptyGroup),
//   - every pair within a group is adjacent (ErrNotClique),
//   - no vertex appears twice across all groups (ErrDuplicateVertex),
//   - with requireCoverage, every vertex appears somewhere (ErrUncovered).
//
// A failure means the cover or the graph builder is defective.
// Complexity: O(N + Σ|g|²).
func Verify(adj *matrix.BoolDense, groups []Group, requireCoverage bool) error {
	if adj == nil {
		return ErrGraphNil
	}
	n := adj.N()
	seen := make([]int, n) // group index + 1, 0 = unseen
	for gi, g := range groups {
		if len(g) == 0 {
			return fmt.Errorf("group %d: %w", gi, ErrEmptyGroup)
		}
		for a, u := range g {
			if u < 0 || u >= n {
				return fmt.Errorf("group %d: vertex %d: %w", gi, u, ErrVertexOutOfRange)
			}
			if seen[u] != 0 {
				return fmt.Errorf("group %d: vertex %d already in group %d: %w", gi, u, seen[u]-1, ErrDuplicateVertex)
			}
			seen[u] = gi + 1
			for _, v := range g[:a] {
				if !adj.Has(u, v) {
					return fmt.Errorf("group %d: vertices %d and %d: %w", gi, v, u, ErrNotClique)
				}
			}
		}
	}
	if requireCoverage {
		for v, s := range seen {
			if s == 0 {
				return fmt.Errorf("vertex %d: %w", v, ErrUncovered)
			}
		}
	}

	return nil
}
