package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scandict/matrix"
)

func TestNewBoolDense(t *testing.T) {
	m, err := matrix.NewBoolDense(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.False(t, v)
		}
	}

	_, err = matrix.NewBoolDense(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewBoolDense(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.NewBoolDense(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, true))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, v)
	assert.True(t, m.Has(0, 1))
	assert.False(t, m.Has(1, 0), "Set does not mirror")

	assert.ErrorIs(t, m.Set(2, 0, true), matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.False(t, m.Has(5, 5))
}

// TestDegreeNeighbors checks row queries on a 4-vertex path 0-1-2-3.
func TestDegreeNeighbors(t *testing.T) {
	m := pathGraph(t, 4)

	assert.Equal(t, 1, m.Degree(0))
	assert.Equal(t, 2, m.Degree(1))
	assert.Equal(t, 0, m.Degree(9))
	assert.Equal(t, []int{0, 2}, m.Neighbors(1))
	assert.Nil(t, m.Neighbors(-1))
	assert.Equal(t, 3, m.EdgeCount())
}

func TestClearVertex(t *testing.T) {
	m := pathGraph(t, 4)
	orig := m.Clone()

	require.NoError(t, m.ClearVertex(1))
	assert.Equal(t, 0, m.Degree(1))
	assert.Equal(t, 0, m.Degree(0))
	assert.Equal(t, []int{3}, m.Neighbors(2))
	assert.Equal(t, 1, m.EdgeCount())

	// the clone is independent
	assert.Equal(t, 2, orig.Degree(1))
	assert.Equal(t, 3, orig.EdgeCount())

	assert.ErrorIs(t, m.ClearVertex(4), matrix.ErrOutOfRange)
}

func TestString(t *testing.T) {
	m := pathGraph(t, 3)
	assert.Equal(t, "010\n101\n010\n", m.String())
}

// pathGraph builds an undirected path 0-1-...-(n-1).
func pathGraph(t *testing.T, n int) *matrix.BoolDense {
	t.Helper()
	m, err := matrix.NewBoolDense(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, m.Set(i, i+1, true))
		require.NoError(t, m.Set(i+1, i, true))
	}

	return m
}
