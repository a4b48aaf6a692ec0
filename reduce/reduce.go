package reduce

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scandict/pattern"
)

// Sentinel errors for pattern reduction.
var (
	// ErrEmptyGroup is returned for a group without members.
	ErrEmptyGroup = errors.New("reduce: empty group")

	// ErrWidthMismatch is returned when members differ in width.
	ErrWidthMismatch = errors.New("reduce: member width mismatch")

	// ErrConflict reports a column holding both 0 and 1 across members.
	ErrConflict = errors.New("reduce: conflicting symbols in group")
)

// Merge reduces members to one pattern of the same width.
// Stage 1 (Validate): non-empty, equal widths.
// Stage 2 (Execute): per column, first defined symbol wins; else X.
// Complexity: O(L·|members|) worst case, usually far less.
func Merge(members []pattern.Pattern) (pattern.Pattern, error) {
	width, err := validate(members)
	if err != nil {
		return "", err
	}

	out := make([]byte, width)
	for j := 0; j < width; j++ {
		out[j] = pattern.DontCare
		for _, m := range members {
			if s := m.At(j); pattern.IsDefined(s) {
				out[j] = s
				break
			}
		}
	}

	return pattern.Pattern(out), nil
}

// Check scans every column of every member and returns ErrConflict, naming
// the column and the first two disagreeing members, if any column holds both
// a 0 and a 1.
// Complexity: O(L·|members|).
func Check(members []pattern.Pattern) error {
	width, err := validate(members)
	if err != nil {
		return err
	}
	for j := 0; j < width; j++ {
		first := -1
		for k, m := range members {
			s := m.At(j)
			if !pattern.IsDefined(s) {
				continue
			}
			if first < 0 {
				first = k
				continue
			}
			if s != members[first].At(j) {
				return fmt.Errorf("%w: column %d, members %d and %d", ErrConflict, j, first, k)
			}
		}
	}

	return nil
}

func validate(members []pattern.Pattern) (int, error) {
	if len(members) == 0 {
		return 0, ErrEmptyGroup
	}
	width := members[0].Width()
	for k, m := range members[1:] {
		if m.Width() != width {
			return 0, fmt.Errorf("%w: member %d has width %d, want %d", ErrWidthMismatch, k+1, m.Width(), width)
		}
	}

	return width, nil
}
