// Package compat builds the compatibility graph of a pattern set.
//
// What
//
//   - Build turns a registry.Registry into a matrix.BoolDense adjacency table.
//   - Cell (i,j) is set iff the patterns with identities i+1 and j+1 are
//     compatible (pattern.Compatible); the diagonal is never set.
//   - The table is sized by the largest identity, not by the count of
//     distinct strings, so every identity owns a row.
//
// Parallel scan
//
//	The pairwise scan is read-only and embarrassingly parallel. WithWorkers(n)
//	with n > 1 splits the upper-triangle rows over a bounded errgroup. Each
//	unordered pair {i,j} is tested by exactly one worker, which writes the two
//	distinct cells (i,j) and (j,i); no two workers touch the same cell. The
//	result is identical to the sequential scan.
//
// Complexity (N = identities, L = width)
//
//   - Time:   O(N²·L)
//   - Memory: O(N²)
//
// Errors
//
//   - ErrRegistryNil      if the registry is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. WithWorkers(0)).
package compat
