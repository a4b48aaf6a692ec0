package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scandict/pattern"
	"github.com/katalvlaran/scandict/registry"
)

func TestNew_AssignsIdentitiesInOrder(t *testing.T) {
	in := []pattern.Pattern{"1010", "1X10", "X010"}
	r, err := registry.New(in)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, r.IDs())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.MaxID())
	assert.Equal(t, 4, r.Width())

	for i, want := range in {
		got, ok := r.Pattern(registry.ID(i))
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := r.Pattern(0)
	assert.False(t, ok)
	_, ok = r.Pattern(4)
	assert.False(t, ok)
}

// TestNew_DuplicatesGetOwnIdentity checks per-occurrence identities and the
// last-seen-wins reverse lookup.
func TestNew_DuplicatesGetOwnIdentity(t *testing.T) {
	r, err := registry.New([]pattern.Pattern{"0000", "1111", "0000"})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, r.IDs())
	id, ok := r.Lookup("0000")
	require.True(t, ok)
	assert.Equal(t, 3, id)

	_, ok = r.Lookup("XXXX")
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	_, err := registry.New(nil)
	assert.ErrorIs(t, err, registry.ErrEmptyInput)

	_, err = registry.New([]pattern.Pattern{"0000", "00000000"})
	assert.ErrorIs(t, err, registry.ErrWidthMismatch)
}

func TestIDsReturnsCopy(t *testing.T) {
	r, err := registry.New([]pattern.Pattern{"0000"})
	require.NoError(t, err)
	ids := r.IDs()
	ids[0] = 42
	assert.Equal(t, []int{1}, r.IDs())
}

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, registry.Index(registry.ID(i)))
	}
	assert.Equal(t, registry.BaseID, registry.ID(0))
}
