// Package clique implements the greedy clique cover used to group mergeable
// patterns.
//
// What
//
//	Cover repeatedly peels one greedily grown clique off a compatibility
//	graph until the requested number of groups is reached or every vertex
//	has been consumed. It is a deterministic heuristic, not an exact
//	maximum-clique solver, and its exact output is part of the contract.
//
// One round
//
//  1. Seed: among unvisited vertices pick the one with the strictly highest
//     degree. Under the default OriginalDegree policy the degree is counted in
//     the original, unmodified table, including edges to vertices consumed in
//     earlier rounds. Ties go to the lowest index.
//  2. Candidates: the seed's unvisited neighbors in the remaining graph,
//     ascending.
//  3. Extension: walk candidates ascending; accept one iff it is adjacent (in
//     the remaining graph) to every vertex accepted so far.
//  4. Finalize: the group is the seed followed by the accepted set. Its
//     vertices are marked visited and every incident edge is cleared from
//     the remaining graph.
//
// Determinism
//
//	Ascending index scans and the strict ">" seed comparison fix the output
//	for a given table. Groups list the seed first, then accepted vertices in
//	ascending order.
//
// Degree policy
//
//	RemainingDegree counts degree in the shrinking remaining graph instead.
//	It is an explicit opt-in that changes which groups are produced; the
//	default reproduces the reference behavior.
//
// Complexity (N = vertices, K = groups produced)
//
//   - Time:   O(N²) for the degree table + O(K·N·(N + C)) where C is the
//     largest accepted set; O(K·N²) under RemainingDegree.
//   - Memory: O(N²) for the remaining-graph copy.
//
// Errors
//
//   - ErrGraphNil          if the adjacency table is nil.
//   - ErrOptionViolation   for an unknown degree policy.
//   - Verify reports ErrNotClique, ErrDuplicateVertex, ErrVertexOutOfRange,
//     ErrEmptyGroup and ErrUncovered.
package clique
