package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// neighborOffsets lists the 4-neighbors as (drow, dcol): up, right, left, down.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {0, -1}, {1, 0}}

// Grid is an n×n percolation system. The zero value is not usable; call New.
type Grid struct {
	n         int
	open      []bool // row-major open flags, len n²
	openSites int

	connectivity *unionfind.DisjointSet // sites + virtualTop + virtualBottom
	fullness     *unionfind.DisjointSet // sites + virtualTop only

	virtualTop    int
	virtualBottom int
}

// New builds an n×n grid with every site closed.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	sites := n * n

	connectivity, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	fullness, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:             n,
		open:          make([]bool, sites),
		connectivity:  connectivity,
		fullness:      fullness,
		virtualTop:    sites,
		virtualBottom: sites + 1,
	}, nil
}

// Size returns n, the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// Open opens site (row, col) and joins it with its open neighbors.
// Opening an already open site is a no-op.
//
// Steps:
//  1. Validate bounds; mark open and bump the counter.
//  2. Top row: join with virtualTop in both structures.
//  3. Bottom row: join with virtualBottom in connectivity only.
//  4. Each in-bounds open 4-neighbor: join in both structures.
//
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	site := g.index(row, col)
	if g.open[site] {
		return nil
	}
	g.open[site] = true
	g.openSites++

	if row == 1 {
		if err := g.joinBoth(site, g.virtualTop); err != nil {
			return err
		}
	}
	if row == g.n {
		if err := g.connectivity.Union(site, g.virtualBottom); err != nil {
			return err
		}
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) || !g.open[g.index(r, c)] {
			continue
		}
		if err := g.joinBoth(site, g.index(r, c)); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top row
// through open sites. Bottom-row wiring never affects the answer.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, err
	}

	return g.fullness.Connected(g.index(row, col), g.virtualTop)
}

// Percolates reports whether an open path joins the top row to the bottom row.
// Recomputed on every call; once true it stays true.
func (g *Grid) Percolates() bool {
	ok, err := g.connectivity.Connected(g.virtualTop, g.virtualBottom)

	return err == nil && ok
}

// NumberOfOpenSites returns how many sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openSites
}

// OpenFraction returns NumberOfOpenSites / n² in floating point.
func (g *Grid) OpenFraction() float64 {
	return float64(g.openSites) / float64(len(g.open))
}

// Snapshot returns a copy of the open flags, indexed [row-1][col-1].
// Complexity: O(n²).
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]bool, g.n)
		copy(out[r], g.open[r*g.n:(r+1)*g.n])
	}

	return out
}

func (g *Grid) joinBoth(a, b int) error {
	if err := g.connectivity.Union(a, b); err != nil {
		return err
	}

	return g.fullness.Union(a, b)
}

// index maps 1-indexed (row, col) to a row-major site id.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

func (g *Grid) checkBounds(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: site (%d,%d) outside [1,%d]", ErrInvalidArgument, row, col, g.n)
	}

	return nil
}
