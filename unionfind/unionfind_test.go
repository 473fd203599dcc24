package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidSize verifies that a non-positive universe is rejected.
func TestNew_InvalidSize(t *testing.T) {
	for _, m := range []int{0, -1, -100} {
		ds, err := unionfind.New(m)
		assert.ErrorIs(t, err, unionfind.ErrInvalidArgument, "size %d", m)
		assert.Nil(t, ds)
	}
}

// TestNew_Singletons checks that every element starts in its own set.
func TestNew_Singletons(t *testing.T) {
	ds, err := unionfind.New(5)
	require.NoError(t, err)

	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, 5, ds.Count())
	for i := 0; i < 5; i++ {
		root, err := ds.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root, "fresh element must be its own root")

		size, err := ds.SizeOf(i)
		require.NoError(t, err)
		assert.Equal(t, 1, size)
	}
}

// TestUnion_Transitive verifies that connectivity is transitive and that
// Count drops only on effective merges.
func TestUnion_Transitive(t *testing.T) {
	ds, err := unionfind.New(6)
	require.NoError(t, err)

	require.NoError(t, ds.Union(0, 1))
	require.NoError(t, ds.Union(1, 2))
	require.NoError(t, ds.Union(3, 4))
	assert.Equal(t, 3, ds.Count()) // {0,1,2} {3,4} {5}

	ok, err := ds.Connected(0, 2)
	require.NoError(t, err)
	assert.True(t, ok, "0 and 2 joined through 1")

	ok, err = ds.Connected(2, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	// Redundant union is a no-op.
	require.NoError(t, ds.Union(2, 0))
	assert.Equal(t, 3, ds.Count())

	require.NoError(t, ds.Union(4, 2))
	assert.Equal(t, 2, ds.Count())

	size, err := ds.SizeOf(3)
	require.NoError(t, err)
	assert.Equal(t, 5, size)

	r0, _ := ds.Find(0)
	r4, _ := ds.Find(4)
	assert.Equal(t, r0, r4)
}

// TestUnion_LargerRootSurvives checks union by size: merging a singleton into
// a bigger set keeps the bigger set's root.
func TestUnion_LargerRootSurvives(t *testing.T) {
	ds, err := unionfind.New(4)
	require.NoError(t, err)

	require.NoError(t, ds.Union(0, 1))
	require.NoError(t, ds.Union(0, 2))
	before, _ := ds.Find(0)

	require.NoError(t, ds.Union(3, 0))
	after, _ := ds.Find(3)
	assert.Equal(t, before, after)
}

// TestOutOfRange ensures every operation fails fast on bad ids.
func TestOutOfRange(t *testing.T) {
	ds, err := unionfind.New(3)
	require.NoError(t, err)

	_, err = ds.Find(-1)
	assert.ErrorIs(t, err, unionfind.ErrInvalidArgument)
	_, err = ds.Find(3)
	assert.ErrorIs(t, err, unionfind.ErrInvalidArgument)
	assert.ErrorIs(t, ds.Union(0, 3), unionfind.ErrInvalidArgument)
	assert.ErrorIs(t, ds.Union(-1, 0), unionfind.ErrInvalidArgument)
	_, err = ds.Connected(0, 7)
	assert.ErrorIs(t, err, unionfind.ErrInvalidArgument)
	_, err = ds.SizeOf(9)
	assert.ErrorIs(t, err, unionfind.ErrInvalidArgument)

	// A failed call leaves the structure untouched.
	assert.Equal(t, 3, ds.Count())
}

// TestRandomUnions_MatchNaiveLabels compares against a quadratic relabeling
// model over a few hundred random merges.
func TestRandomUnions_MatchNaiveLabels(t *testing.T) {
	const m = 64
	r := rand.New(rand.NewSource(7))

	ds, err := unionfind.New(m)
	require.NoError(t, err)

	label := make([]int, m)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 300; step++ {
		x, y := r.Intn(m), r.Intn(m)
		require.NoError(t, ds.Union(x, y))
		if lx, ly := label[x], label[y]; lx != ly {
			for i := range label {
				if label[i] == ly {
					label[i] = lx
				}
			}
		}

		a, b := r.Intn(m), r.Intn(m)
		got, err := ds.Connected(a, b)
		require.NoError(t, err)
		assert.Equal(t, label[a] == label[b], got, "step %d: Connected(%d,%d)", step, a, b)
	}

	distinct := make(map[int]struct{})
	for _, l := range label {
		distinct[l] = struct{}{}
	}
	assert.Equal(t, len(distinct), ds.Count())
}
