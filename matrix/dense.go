// SPDX-License-Identifier: MIT
// Package matrix: BoolDense, a row-major square boolean table.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with BoolDense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("BoolDense.%s(%d,%d): %w", method, row, col, err)
}

// BoolDense is an n×n row-major matrix of bool values.
// data holds n*n cells; cell (i,j) lives at data[i*n+j].
type BoolDense struct {
	n    int    // rows == cols
	data []bool // flat backing storage, length == n*n
}

// NewBoolDense creates an n×n BoolDense with every cell false.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewBoolDense(n int) (*BoolDense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &BoolDense{n: n, data: make([]bool, n*n)}, nil
}

// N returns the dimension of the matrix.
// Complexity: O(1).
func (m *BoolDense) N() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *BoolDense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (m *BoolDense) At(row, col int) (bool, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). It does not mirror the value; callers that
// build an undirected table set both (i,j) and (j,i).
// Complexity: O(1).
func (m *BoolDense) Set(row, col int, v bool) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Has reports the cell at (row, col), treating out-of-range indices as false.
// It is the unchecked read used in hot loops.
func (m *BoolDense) Has(row, col int) bool {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return false
	}

	return m.data[row*m.n+col]
}

// Degree counts the true cells in row i. Out-of-range rows have degree 0.
// Complexity: O(n).
func (m *BoolDense) Degree(i int) int {
	if i < 0 || i >= m.n {
		return 0
	}
	deg := 0
	for _, v := range m.data[i*m.n : (i+1)*m.n] {
		if v {
			deg++
		}
	}

	return deg
}

// Neighbors returns the columns j with (i,j) set, ascending.
// Complexity: O(n).
func (m *BoolDense) Neighbors(i int) []int {
	if i < 0 || i >= m.n {
		return nil
	}
	var out []int
	row := m.data[i*m.n : (i+1)*m.n]
	for j, v := range row {
		if v {
			out = append(out, j)
		}
	}

	return out
}

// ClearVertex zeroes row v and column v, removing every edge incident to v.
// Complexity: O(n).
func (m *BoolDense) ClearVertex(v int) error {
	if v < 0 || v >= m.n {
		return denseErrorf("ClearVertex", v, v, ErrOutOfRange)
	}
	for j := 0; j < m.n; j++ {
		m.data[v*m.n+j] = false
		m.data[j*m.n+v] = false
	}

	return nil
}

// EdgeCount returns the number of undirected edges, counting the strict
// upper triangle only.
// Complexity: O(n²).
func (m *BoolDense) EdgeCount() int {
	e := 0
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] {
				e++
			}
		}
	}

	return e
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *BoolDense) Clone() *BoolDense {
	cp := make([]bool, len(m.data))
	copy(cp, m.data)

	return &BoolDense{n: m.n, data: cp}
}

// String renders the table as rows of 0/1, one row per line.
// Complexity: O(n²).
func (m *BoolDense) String() string {
	var sb strings.Builder
	sb.Grow(m.n * (m.n + 1))
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.data[i*m.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
