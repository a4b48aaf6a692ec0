// Package bfs provides breadth-first search over a matrix.BoolDense
// adjacency table, returning unweighted distances, parent links and visit
// order, plus connected components.
//
// Vertices are table indices 0..N-1. Neighbors are explored in ascending
// index order, so results are deterministic.
//
// In scandict the compatibility graph's components bound the dictionary
// from below: two patterns in different components are never compatible,
// so every component needs at least one entry of its own.
//
// Complexity:
//
//	BFS:        O(N²) on a dense table (each dequeued row is scanned once).
//	Components: O(N²).
//	Memory:     O(N).
package bfs
