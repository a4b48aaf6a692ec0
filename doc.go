// Package scandict compacts scan-test patterns into a dictionary of merged
// entries.
//
// A pattern is a fixed-width string over {0,1,X}. Two patterns are
// compatible when no position holds 0 in one and 1 in the other; a set of
// pairwise compatible patterns can be replaced by a single merged pattern.
// scandict finds such sets with a greedy heuristic clique cover over the
// compatibility graph and emits one merged pattern per set, largest first.
//
// Packages:
//
//	pattern/      symbols, parsing, compatibility of two patterns
//	registry/     identities 1..N for input patterns
//	matrix/       dense boolean adjacency table + validators
//	compat/       compatibility graph construction (optionally parallel)
//	bfs/          traversal and connected components over the table
//	clique/       greedy heuristic clique cover and cover verification
//	reduce/       column-wise merge of a group
//	compact/      end-to-end pipeline with logging, tracing and metrics
//	patternio/    line-oriented pattern files
//	config/       YAML run configuration
//	cmd/scandict  command-line front end
//
// Quick example:
//
//	res, err := compact.Compact(ctx, patterns, 16)
//	if err != nil {
//		return err
//	}
//	for i, p := range res.Patterns {
//		fmt.Println(i, p, res.Groups[i])
//	}
//
// See examples/ for a runnable program.
package scandict
