package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/scandict/matrix"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   *matrix.BoolDense
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on adj starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(adj *matrix.BoolDense, start int, opts ...Option) (*BFSResult, error) {
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
	n := adj.N()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}

	w := newWalker(adj, o)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

func newWalker(adj *matrix.BoolDense, o BFSOptions) *walker {
	n := adj.N()
	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	return w
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for u := 0; u < w.adj.N(); u++ {
			if w.adj.Has(item.v, u) && w.res.Depth[u] == Unreached {
				w.enqueue(u, next, item.v)
			}
		}
	}

	return nil
}

// Components partitions the vertices of adj into connected components.
// Each component lists its vertices in BFS order from its lowest index;
// components are ordered by their lowest index. Isolated vertices form
// singleton components.
//
// Complexity: O(N²).
func Components(adj *matrix.BoolDense) ([][]int, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	seen := make([]bool, adj.N())
	var comps [][]int
	for s := 0; s < adj.N(); s++ {
		if seen[s] {
			continue
		}
		res, err := BFS(adj, s)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
