package clique_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scandict/clique"
)

func TestVerify(t *testing.T) {
	g := graphFromEdges(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})

	require.NoError(t, clique.Verify(g, []clique.Group{{0, 1, 2}, {3}}, true))
	require.NoError(t, clique.Verify(g, []clique.Group{{1, 0}}, false))

	cases := []struct {
		name   string
		groups []clique.Group
		cover  bool
		want   error
	}{
		{"nil graph", nil, false, clique.ErrGraphNil},
		{"not clique", []clique.Group{{0, 3}}, false, clique.ErrNotClique},
		{"duplicate across groups", []clique.Group{{0, 1}, {1}}, false, clique.ErrDuplicateVertex},
		{"duplicate in group", []clique.Group{{2, 2}}, false, clique.ErrDuplicateVertex},
		{"out of range", []clique.Group{{4}}, false, clique.ErrVertexOutOfRange},
		{"empty group", []clique.Group{{}}, false, clique.ErrEmptyGroup},
		{"uncovered", []clique.Group{{0, 1, 2}}, true, clique.ErrUncovered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adj := g
			if tc.want == clique.ErrGraphNil {
				adj = nil
			}
			require.ErrorIs(t, clique.Verify(adj, tc.groups, tc.cover), tc.want)
		})
	}
}
