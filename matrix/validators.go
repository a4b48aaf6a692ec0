// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical shape checks for an undirected, loop-free adjacency.
//  - Return sentinels wrapped with a validator tag so call sites can match
//    with errors.Is.
//
// Determinism & Performance:
//  - Pure, allocation-free. Symmetry runs O(n²) over the upper triangle.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *BoolDense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSymmetric checks (i,j) == (j,i) for all i<j.
// The first violating pair is reported in row-major order.
// Complexity: O(n²).
func ValidateSymmetric(m *BoolDense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return fmt.Errorf("ValidateSymmetric: cells (%d,%d)/(%d,%d): %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNoLoops checks that no diagonal cell is set.
// Complexity: O(n).
func ValidateNoLoops(m *BoolDense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNoLoops", err)
	}
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] {
			return fmt.Errorf("ValidateNoLoops: cell (%d,%d): %w", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateAdjacency is the composite NotNil → NoLoops → Symmetric check.
// Complexity: O(n²).
func ValidateAdjacency(m *BoolDense) error {
	if err := ValidateNoLoops(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	if err := ValidateSymmetric(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}

	return nil
}
