package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid builds an n×n grid and opens the given (row, col) sites.
func mustGrid(t *testing.T, n int, sites ...[2]int) *percolation.Grid {
	t.Helper()
	g, err := percolation.New(n)
	require.NoError(t, err)
	for _, s := range sites {
		require.NoError(t, g.Open(s[0], s[1]), "Open(%d,%d)", s[0], s[1])
	}
	return g
}

func isFull(t *testing.T, g *percolation.Grid, row, col int) bool {
	t.Helper()
	ok, err := g.IsFull(row, col)
	require.NoError(t, err)
	return ok
}

// TestNew_InvalidSize verifies that n ≤ 0 is rejected.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		g, err := percolation.New(n)
		assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "n=%d", n)
		assert.Nil(t, g)
	}
}

// TestNew_FreshGrid checks the initial state for several sizes.
func TestNew_FreshGrid(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		g := mustGrid(t, n)
		assert.Equal(t, n, g.Size())
		assert.Equal(t, 0, g.NumberOfOpenSites(), "n=%d", n)
		assert.False(t, g.Percolates(), "n=%d", n)
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				open, err := g.IsOpen(row, col)
				require.NoError(t, err)
				assert.False(t, open)
				assert.False(t, isFull(t, g, row, col))
			}
		}
	}
}

// TestOpen_Idempotent checks that a second Open changes nothing.
func TestOpen_Idempotent(t *testing.T) {
	once := mustGrid(t, 3, [2]int{2, 2})
	twice := mustGrid(t, 3, [2]int{2, 2}, [2]int{2, 2})

	assert.Equal(t, once.NumberOfOpenSites(), twice.NumberOfOpenSites())
	assert.Equal(t, once.Snapshot(), twice.Snapshot())
	assert.Equal(t, once.Percolates(), twice.Percolates())
	assert.Equal(t, 1, twice.NumberOfOpenSites())
}

// TestSingleSite covers the n=1 edge case: one opening percolates at once.
func TestSingleSite(t *testing.T) {
	g := mustGrid(t, 1)
	assert.False(t, g.Percolates())

	require.NoError(t, g.Open(1, 1))
	assert.True(t, g.Percolates())
	assert.True(t, isFull(t, g, 1, 1))
	assert.Equal(t, 1, g.NumberOfOpenSites())
	assert.Equal(t, 1.0, g.OpenFraction())
}

// TestTwoByTwo_Column opens the left column of a 2×2 grid.
func TestTwoByTwo_Column(t *testing.T) {
	g := mustGrid(t, 2, [2]int{1, 1}, [2]int{2, 1})

	assert.True(t, g.Percolates())
	assert.Equal(t, 2, g.NumberOfOpenSites())
	assert.True(t, isFull(t, g, 2, 1))
	assert.False(t, isFull(t, g, 1, 2))
	assert.Equal(t, 0.5, g.OpenFraction())
}

// TestBackwash opens a percolating left column, then an isolated bottom-right
// site. The bottom-right site touches the virtual bottom but is not
// connected to the top through open sites, so it must not be full.
//
//	■ □ □
//	■ □ □
//	■ □ ■
func TestBackwash(t *testing.T) {
	g := mustGrid(t, 3, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1})
	require.True(t, g.Percolates())

	require.NoError(t, g.Open(3, 3))
	assert.False(t, isFull(t, g, 3, 3), "backwash: (3,3) reached only via virtual bottom")
	assert.True(t, isFull(t, g, 3, 1))
	assert.True(t, g.Percolates())

	// Joining the bottom row makes (3,3) genuinely full.
	require.NoError(t, g.Open(3, 2))
	assert.True(t, isFull(t, g, 3, 3))
}

// TestBackwash_BottomRowFirst opens the whole bottom row and the left column
// up to row 2. Nothing touches the top row, so nothing is full.
func TestBackwash_BottomRowFirst(t *testing.T) {
	g := mustGrid(t, 3, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3}, [2]int{2, 1})

	assert.False(t, g.Percolates())
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			assert.False(t, isFull(t, g, row, col), "(%d,%d)", row, col)
		}
	}

	require.NoError(t, g.Open(1, 1))
	assert.True(t, g.Percolates())
	for col := 1; col <= 3; col++ {
		assert.True(t, isFull(t, g, 3, col), "(3,%d) connected through open bottom row", col)
	}
	assert.False(t, isFull(t, g, 1, 2))
}

// TestOutOfBounds ensures every coordinate-taking method rejects bad input
// and leaves the grid unchanged.
func TestOutOfBounds(t *testing.T) {
	const n = 4
	g := mustGrid(t, n)
	bad := [][2]int{{0, 1}, {1, 0}, {n + 1, 1}, {1, n + 1}, {-3, 2}}

	for _, rc := range bad {
		assert.ErrorIs(t, g.Open(rc[0], rc[1]), percolation.ErrInvalidArgument, "Open%v", rc)
		_, err := g.IsOpen(rc[0], rc[1])
		assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "IsOpen%v", rc)
		_, err = g.IsFull(rc[0], rc[1])
		assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "IsFull%v", rc)
	}
	assert.Equal(t, 0, g.NumberOfOpenSites())
}

// TestSnapshot_NoAliasing checks the snapshot layout and that mutating it
// does not touch the grid.
func TestSnapshot_NoAliasing(t *testing.T) {
	g := mustGrid(t, 3, [2]int{1, 2}, [2]int{3, 3})
	snap := g.Snapshot()

	want := [][]bool{
		{false, true, false},
		{false, false, false},
		{false, false, true},
	}
	assert.Equal(t, want, snap)

	snap[1][1] = true
	open, err := g.IsOpen(2, 2)
	require.NoError(t, err)
	assert.False(t, open)
}

// TestRandomOpenings_MatchBFS opens sites in random order and, after every
// step, compares IsFull/Percolates with a breadth-first recomputation.
// It also checks monotonicity of the counter and of Percolates.
func TestRandomOpenings_MatchBFS(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 12} {
		r := rand.New(rand.NewSource(int64(n)))
		g := mustGrid(t, n)
		order := r.Perm(n * n)

		percolated := false
		for step, site := range order {
			row, col := site/n+1, site%n+1
			require.NoError(t, g.Open(row, col))
			require.Equal(t, step+1, g.NumberOfOpenSites())

			gg, err := gridgraph.From2D(g.Snapshot(), gridgraph.Conn4)
			require.NoError(t, err)
			reach := gg.ReachableFromTop()

			require.Equal(t, gg.Spans(), g.Percolates(), "n=%d step=%d", n, step)
			if percolated {
				require.True(t, g.Percolates(), "percolation must be permanent")
			}
			percolated = g.Percolates()

			for rr := 1; rr <= n; rr++ {
				for cc := 1; cc <= n; cc++ {
					require.Equal(t, reach[gg.Index(cc-1, rr-1)], isFull(t, g, rr, cc),
						"n=%d step=%d site=(%d,%d)", n, step, rr, cc)
				}
			}
		}
		assert.True(t, g.Percolates(), "fully open grid percolates")
	}
}
