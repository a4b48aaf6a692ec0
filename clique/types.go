package clique

import (
	"errors"
	"fmt"
)

// Sentinel errors for cover execution and verification.
var (
	// ErrGraphNil is returned if a nil adjacency table is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")

	// ErrNotClique reports two members of one group that are not adjacent.
	ErrNotClique = errors.New("clique: group is not a clique")

	// ErrDuplicateVertex reports a vertex that appears in more than one group
	// or twice in the same group.
	ErrDuplicateVertex = errors.New("clique: vertex appears more than once")

	// ErrVertexOutOfRange reports a group member outside the table.
	ErrVertexOutOfRange = errors.New("clique: vertex out of range")

	// ErrEmptyGroup reports a group without members.
	ErrEmptyGroup = errors.New("clique: empty group")

	// ErrUncovered reports a vertex that belongs to no group when full
	// coverage was required.
	ErrUncovered = errors.New("clique: vertex not covered")
)

// DegreePolicy selects the table used to rank seed candidates.
type DegreePolicy int

const (
	// OriginalDegree counts degree in the original table. Default.
	OriginalDegree DegreePolicy = iota

	// RemainingDegree counts degree in the remaining graph, ignoring edges
	// to vertices consumed in earlier rounds.
	RemainingDegree
)

// String implements fmt.Stringer.
func (p DegreePolicy) String() string {
	switch p {
	case OriginalDegree:
		return "original"
	case RemainingDegree:
		return "remaining"
	default:
		return fmt.Sprintf("DegreePolicy(%d)", int(p))
	}
}

// ParseDegreePolicy maps "original" / "remaining" to a DegreePolicy.
func ParseDegreePolicy(s string) (DegreePolicy, error) {
	switch s {
	case "", "original":
		return OriginalDegree, nil
	case "remaining":
		return RemainingDegree, nil
	default:
		return 0, fmt.Errorf("%w: unknown degree policy %q", ErrOptionViolation, s)
	}
}

// Group is one finalized clique: zero-based vertex indices, seed first, then
// the accepted vertices ascending.
type Group []int

// Len returns the number of members.
func (g Group) Len() int { return len(g) }

// Seed returns the seed vertex, or -1 for an empty group.
func (g Group) Seed() int {
	if len(g) == 0 {
		return -1
	}

	return g[0]
}

// Result is the outcome of a Cover run.
//   - Groups: finalized cliques in extraction order.
//   - Requested: the maxGroups argument.
//   - Exhausted: the run stopped because no unvisited vertex remained before
//     Requested groups were produced.
type Result struct {
	Groups    []Group
	Requested int
	Exhausted bool
}

// Shortfall returns how many requested groups could not be produced.
func (r *Result) Shortfall() int {
	if d := r.Requested - len(r.Groups); d > 0 {
		return d
	}

	return 0
}

// Option configures Cover via functional arguments.
type Option func(*Options)

// Options holds Cover parameters and callbacks.
type Options struct {
	// Policy selects the seed-ranking degree table.
	Policy DegreePolicy

	// OnGroup is called after each group is finalized, with its zero-based
	// round number. The group must not be modified.
	OnGroup func(round int, g Group)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns OriginalDegree with a no-op OnGroup hook.
func DefaultOptions() Options {
	return Options{
		Policy:  OriginalDegree,
		OnGroup: func(int, Group) {},
	}
}

// WithDegreePolicy selects the seed-ranking degree table.
func WithDegreePolicy(p DegreePolicy) Option {
	return func(o *Options) {
		switch p {
		case OriginalDegree, RemainingDegree:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown degree policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithOnGroup registers a callback invoked after each finalized group.
func WithOnGroup(fn func(round int, g Group)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGroup = fn
		}
	}
}
