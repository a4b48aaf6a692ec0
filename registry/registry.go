package registry

import (
	"fmt"

	"github.com/katalvlaran/scandict/pattern"
)

// Registry maps identities to patterns and back.
//
// ids holds identities in input order; byID[i] is the pattern of identity
// i+BaseID; byPattern keeps the last identity assigned to each distinct string.
type Registry struct {
	ids       []int
	byID      []pattern.Pattern
	byPattern map[pattern.Pattern]int
	width     int
}

// New registers patterns in order and returns the populated Registry.
//
// Implementation:
//   - Stage 1: reject empty input (ErrEmptyInput).
//   - Stage 2: assign BaseID, BaseID+1, ... per occurrence; check widths.
//   - Stage 3: record the reverse lookup, last occurrence wins.
//
// Complexity: O(N) time and memory.
func New(patterns []pattern.Pattern) (*Registry, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyInput
	}

	r := &Registry{
		ids:       make([]int, 0, len(patterns)),
		byID:      make([]pattern.Pattern, 0, len(patterns)),
		byPattern: make(map[pattern.Pattern]int, len(patterns)),
		width:     patterns[0].Width(),
	}
	for i, p := range patterns {
		if p.Width() != r.width {
			return nil, fmt.Errorf("%w: pattern %d has width %d, want %d", ErrWidthMismatch, i+1, p.Width(), r.width)
		}
		id := BaseID + i
		r.ids = append(r.ids, id)
		r.byID = append(r.byID, p)
		r.byPattern[p] = id
	}

	return r, nil
}

// IDs returns a copy of the identities in input order.
func (r *Registry) IDs() []int {
	out := make([]int, len(r.ids))
	copy(out, r.ids)

	return out
}

// Len returns the number of registered occurrences.
func (r *Registry) Len() int { return len(r.ids) }

// Width returns the common pattern width.
func (r *Registry) Width() int { return r.width }

// MaxID returns the largest identity. The adjacency table is sized by it.
func (r *Registry) MaxID() int {
	maxID := 0
	for _, id := range r.ids {
		if id > maxID {
			maxID = id
		}
	}

	return maxID
}

// Pattern returns the pattern registered under id.
func (r *Registry) Pattern(id int) (pattern.Pattern, bool) {
	i := id - BaseID
	if i < 0 || i >= len(r.byID) {
		return "", false
	}

	return r.byID[i], true
}

// Lookup returns the last identity assigned to p.
func (r *Registry) Lookup(p pattern.Pattern) (int, bool) {
	id, ok := r.byPattern[p]

	return id, ok
}

// Index converts an identity to its zero-based table index.
func Index(id int) int { return id - BaseID }

// ID converts a zero-based table index to its identity.
func ID(index int) int { return index + BaseID }
