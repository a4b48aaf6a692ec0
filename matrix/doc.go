// Package matrix provides the dense boolean adjacency table used to represent
// the pattern compatibility graph.
//
// The matrix package provides:
//
//   - BoolDense, a square row-major table with O(1) edge lookups and O(V²)
//     memory.
//   - Row queries (Degree, Neighbors) in ascending column order.
//   - ClearVertex, which zeroes a row and its column to remove a vertex from a
//     working copy.
//   - Validators for the undirected, loop-free shape the cover engine expects.
//
// A dense table is the right fit here: dictionaries are small, the graph is
// typically dense, and the cover engine reads arbitrary (i,j) cells.
package matrix
