// Package gridgraph defines core types, options, and sentinel errors.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoPath indicates no path exists between the top and bottom rows.
	ErrNoPath = errors.New("gridgraph: no path between top and bottom rows")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// GridGraph treats a 2D open/closed mask as a graph. It is immutable once built.
// Width and Height define dimensions; Open[y][x] reports whether cell (x,y) is open.
// neighborOffsets is precomputed from Conn for adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Open            [][]bool
	Conn            Connectivity
	neighborOffsets [][2]int
}
