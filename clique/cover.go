package clique

import (
	"github.com/katalvlaran/scandict/matrix"
)

// coverer owns the mutable state of one Cover run.
type coverer struct {
	original  *matrix.BoolDense // read-only input
	remaining *matrix.BoolDense // owned copy, edges cleared as vertices are consumed
	visited   []bool
	degree    []int // original-table degrees, filled for OriginalDegree
	opts      Options
}

// Cover extracts up to maxGroups cliques from adj.
// maxGroups <= 0 yields an empty result. adj itself is never modified.
//
// Implementation:
//   - Stage 1: validate input and options; maxGroups <= 0 returns early.
//   - Stage 2: copy adj into the remaining graph; precompute original degrees.
//   - Stage 3: run rounds until maxGroups groups exist or no seed is left.
//
// Complexity: see package doc.
func Cover(adj *matrix.BoolDense, maxGroups int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Requested: maxGroups}
	if maxGroups <= 0 {
		return res, nil
	}

	c := &coverer{
		original:  adj,
		remaining: adj.Clone(),
		visited:   make([]bool, adj.N()),
		opts:      o,
	}
	if o.Policy == OriginalDegree {
		// the original table never changes, so its degrees are computed once
		c.degree = make([]int, adj.N())
		for i := range c.degree {
			c.degree[i] = adj.Degree(i)
		}
	}

	for len(res.Groups) < maxGroups {
		seed := c.pickSeed()
		if seed < 0 {
			res.Exhausted = true
			break
		}
		g := c.extend(seed, c.candidates(seed))
		c.finalize(g)
		c.opts.OnGroup(len(res.Groups), g)
		res.Groups = append(res.Groups, g)
	}

	return res, nil
}

// pickSeed returns the unvisited vertex with the strictly highest degree,
// lowest index on ties, or -1 when every vertex is visited.
func (c *coverer) pickSeed() int {
	seed, best := -1, -1
	for i, done := range c.visited {
		if done {
			continue
		}
		var deg int
		if c.opts.Policy == OriginalDegree {
			deg = c.degree[i]
		} else {
			deg = c.remaining.Degree(i)
		}
		if deg > best {
			best, seed = deg, i
		}
	}

	return seed
}

// candidates lists the seed's unvisited neighbors in the remaining graph,
// ascending. The seed itself is excluded.
func (c *coverer) candidates(seed int) []int {
	var out []int
	for _, v := range c.remaining.Neighbors(seed) {
		if v != seed && !c.visited[v] {
			out = append(out, v)
		}
	}

	return out
}

// extend grows the clique greedily: a candidate joins iff it is adjacent to
// every vertex accepted before it. Every candidate is already adjacent to
// the seed, so seed + accepted is a clique.
func (c *coverer) extend(seed int, cands []int) Group {
	g := make(Group, 1, len(cands)+1)
	g[0] = seed
	for _, v := range cands {
		ok := true
		for _, s := range g[1:] {
			if !c.remaining.Has(v, s) {
				ok = false
				break
			}
		}
		if ok {
			g = append(g, v)
		}
	}

	return g
}

// finalize marks every member visited and clears its edges from the
// remaining graph.
func (c *coverer) finalize(g Group) {
	for _, v := range g {
		c.visited[v] = true
		// v comes from the table's own index range
		_ = c.remaining.ClearVertex(v)
	}
}
