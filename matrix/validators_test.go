package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scandict/matrix"
)

func TestValidateAdjacency(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateAdjacency(nil), matrix.ErrNilMatrix)

	m := pathGraph(t, 3)
	require.NoError(t, matrix.ValidateAdjacency(m))

	asym := m.Clone()
	require.NoError(t, asym.Set(0, 2, true))
	require.ErrorIs(t, matrix.ValidateSymmetric(asym), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateAdjacency(asym), matrix.ErrAsymmetry)

	loop := m.Clone()
	require.NoError(t, loop.Set(1, 1, true))
	require.ErrorIs(t, matrix.ValidateNoLoops(loop), matrix.ErrNonZeroDiagonal)
	require.ErrorIs(t, matrix.ValidateAdjacency(loop), matrix.ErrNonZeroDiagonal)
}
