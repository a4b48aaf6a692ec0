package pattern_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scandict/pattern"
)

func TestParse(t *testing.T) {
	p, err := pattern.Parse("10X1")
	require.NoError(t, err)
	assert.Equal(t, pattern.Pattern("10X1"), p)
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, pattern.DontCare, p.At(2))

	_, err = pattern.Parse("")
	assert.True(t, errors.Is(err, pattern.ErrEmptyPattern))

	_, err = pattern.Parse("10x1")
	require.ErrorIs(t, err, pattern.ErrBadSymbol)
	assert.Contains(t, err.Error(), "position 2")

	assert.Panics(t, func() { pattern.MustParse("2") })
}

func TestValidWidth(t *testing.T) {
	for _, w := range []int{4, 8, 16, 32, 64} {
		assert.True(t, pattern.ValidWidth(w), "width %d", w)
	}
	for _, w := range []int{0, 1, 5, 12, 128} {
		assert.False(t, pattern.ValidWidth(w), "width %d", w)
	}
}

// TestCompatible checks the merge predicate on hand-picked pairs.
func TestCompatible(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1010", "1X10", true},
		{"1X10", "X010", true},
		{"0000", "1111", false},
		{"10XX", "0XXX", false},
		{"XXXX", "0110", true},
		{"1XX0", "1X1X", true},
		{"10XX", "1XX0", true},
		{"1010", "10101010", false},
	}
	for _, tc := range cases {
		got := pattern.Compatible(pattern.Pattern(tc.a), pattern.Pattern(tc.b))
		assert.Equal(t, tc.want, got, "%s ~ %s", tc.a, tc.b)
	}
}

// TestCompatible_Symmetric enumerates every pair of width-3 patterns.
func TestCompatible_Symmetric(t *testing.T) {
	alphabet := []byte{pattern.Zero, pattern.One, pattern.DontCare}
	var all []pattern.Pattern
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				all = append(all, pattern.Pattern([]byte{a, b, c}))
			}
		}
	}
	for _, p := range all {
		for _, q := range all {
			require.Equal(t, pattern.Compatible(p, q), pattern.Compatible(q, p), "%s vs %s", p, q)
		}
	}
}

func TestCareBitsAndDensity(t *testing.T) {
	assert.Equal(t, 2, pattern.CareBits("1XX0"))
	assert.InDelta(t, 0.5, pattern.DontCareDensity("1XX0"), 1e-12)
	assert.InDelta(t, 1.0, pattern.DontCareDensity("XXXX"), 1e-12)
	assert.Zero(t, pattern.DontCareDensity(""))
}
