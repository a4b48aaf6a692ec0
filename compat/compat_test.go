package compat_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scandict/compat"
	"github.com/katalvlaran/scandict/matrix"
	"github.com/katalvlaran/scandict/pattern"
	"github.com/katalvlaran/scandict/registry"
)

func mustRegistry(t testing.TB, in ...string) *registry.Registry {
	t.Helper()
	pats := make([]pattern.Pattern, len(in))
	for i, s := range in {
		pats[i] = pattern.MustParse(s)
	}
	r, err := registry.New(pats)
	require.NoError(t, err)

	return r
}

// randomPatterns draws n patterns of the given width with a fixed seed.
func randomPatterns(seed int64, n, width int) []string {
	rng := rand.New(rand.NewSource(seed))
	alphabet := []byte{pattern.Zero, pattern.One, pattern.DontCare, pattern.DontCare}
	out := make([]string, n)
	for i := range out {
		b := make([]byte, width)
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}

	return out
}

func TestBuild_Errors(t *testing.T) {
	_, err := compat.Build(nil)
	require.ErrorIs(t, err, compat.ErrRegistryNil)

	r := mustRegistry(t, "0000")
	_, err = compat.Build(r, compat.WithWorkers(0))
	require.ErrorIs(t, err, compat.ErrOptionViolation)
}

func TestBuild_SizedByMaxID(t *testing.T) {
	r := mustRegistry(t, "1010", "1X10", "X010", "0101")
	adj, err := compat.Build(r)
	require.NoError(t, err)
	assert.Equal(t, r.MaxID(), adj.N())
}

// TestBuild_Triangle covers scenario 1: three pairwise-compatible patterns.
func TestBuild_Triangle(t *testing.T) {
	adj, err := compat.Build(mustRegistry(t, "1010", "1X10", "X010"))
	require.NoError(t, err)
	assert.Equal(t, "011\n101\n110\n", adj.String())
	require.NoError(t, matrix.ValidateAdjacency(adj))
}

func TestBuild_Conflict(t *testing.T) {
	adj, err := compat.Build(mustRegistry(t, "0000", "1111"))
	require.NoError(t, err)
	assert.Equal(t, 0, adj.EdgeCount())
}

// TestBuild_DuplicateOccurrences keeps both copies as distinct vertices.
func TestBuild_DuplicateOccurrences(t *testing.T) {
	adj, err := compat.Build(mustRegistry(t, "10XX", "10XX", "0XXX"))
	require.NoError(t, err)
	assert.True(t, adj.Has(0, 1))
	assert.False(t, adj.Has(0, 2))
	assert.False(t, adj.Has(1, 2))
	assert.False(t, adj.Has(0, 0), "no self edges even though a pattern is compatible with itself")
}

// TestBuild_MatchesPredicate cross-checks every cell against pattern.Compatible.
func TestBuild_MatchesPredicate(t *testing.T) {
	in := randomPatterns(7, 60, 8)
	r := mustRegistry(t, in...)
	adj, err := compat.Build(r)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(adj))

	for i := range in {
		for j := range in {
			want := i != j && pattern.Compatible(pattern.Pattern(in[i]), pattern.Pattern(in[j]))
			require.Equal(t, want, adj.Has(i, j), "cell (%d,%d)", i, j)
		}
	}
}

// TestBuild_ParallelMatchesSequential runs the fan-out with several worker counts.
func TestBuild_ParallelMatchesSequential(t *testing.T) {
	r := mustRegistry(t, randomPatterns(99, 150, 16)...)
	seq, err := compat.Build(r)
	require.NoError(t, err)

	for _, w := range []int{2, 4, 16} {
		t.Run(fmt.Sprintf("workers=%d", w), func(t *testing.T) {
			par, err := compat.Build(r, compat.WithWorkers(w))
			require.NoError(t, err)
			require.Equal(t, seq.String(), par.String())
		})
	}
}
