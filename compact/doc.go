// Package compact is the entry point of the dictionary compaction core.
//
// Compact takes a validated list of equal-width patterns and a requested
// dictionary size and runs the whole pipeline:
//
//	patterns → registry → compatibility graph → clique cover
//	         → groups sorted by descending size → merged patterns
//
// The result carries the merged patterns, the groups as identities, and the
// produced/requested counts so the caller can surface a shortfall. Producing
// fewer groups than requested is not an error.
//
// Errors
//
//   - ErrUnusableInput   if the pattern list is empty or inconsistent.
//   - ErrInternal        if verification finds a group that is not a clique,
//     a vertex covered twice, or a merge conflict. This means a defect, not
//     bad input.
//   - ErrOptionViolation for invalid options.
//
// Compact never exits the process and never writes output; both belong to
// the caller.
//
// Observability
//
//	Each run opens an OpenTelemetry span and records duration, produced
//	groups and edge-count instruments on the global meter; without installed
//	providers these are no-ops. Structured logs go to the configured
//	*slog.Logger (slog.Default() by default).
package compact
