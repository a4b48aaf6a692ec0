package compat

import (
	"github.com/katalvlaran/scandict/matrix"
	"github.com/katalvlaran/scandict/pattern"
	"github.com/katalvlaran/scandict/registry"
	"golang.org/x/sync/errgroup"
)

// Build computes the compatibility adjacency table for every identity in reg.
//
// Implementation:
//   - Stage 1: validate registry and options.
//   - Stage 2: allocate a MaxID×MaxID table.
//   - Stage 3: for each pair (i,j), i before j in input order, set (i,j) and
//     (j,i) when the patterns are compatible. Sequential or fanned out by row.
//
// Complexity: O(N²·L) time, O(N²) memory.
func Build(reg *registry.Registry, opts ...Option) (*matrix.BoolDense, error) {
	if reg == nil {
		return nil, ErrRegistryNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj, err := matrix.NewBoolDense(reg.MaxID())
	if err != nil {
		return nil, err
	}

	ids := reg.IDs()
	pats := make([]pattern.Pattern, len(ids))
	for k, id := range ids {
		pats[k], _ = reg.Pattern(id)
	}

	if o.Workers == 1 || len(ids) < 2 {
		for a := range ids {
			scanRow(adj, ids, pats, a)
		}

		return adj, nil
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for a := range ids {
		a := a
		g.Go(func() error {
			scanRow(adj, ids, pats, a)
			return nil
		})
	}
	_ = g.Wait() // scanRow never fails

	return adj, nil
}

// scanRow tests input position a against every later position and sets both
// cells of each compatible pair.
func scanRow(adj *matrix.BoolDense, ids []int, pats []pattern.Pattern, a int) {
	ia := registry.Index(ids[a])
	for b := a + 1; b < len(ids); b++ {
		if !pattern.Compatible(pats[a], pats[b]) {
			continue
		}
		ib := registry.Index(ids[b])
		// indices come from the registry and are always in range
		_ = adj.Set(ia, ib, true)
		_ = adj.Set(ib, ia, true)
	}
}
