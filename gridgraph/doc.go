// Package gridgraph treats a 2D mask of open/closed cells as a graph and
// answers connectivity questions by breadth-first search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool mask (true = open).
//   - Identifies connected components of open cells.
//   - Computes which cells are reachable from the top row, and whether any
//     bottom-row cell is, without a union-find structure.
//   - Computes the fewest closed cells to open so that the top row reaches the
//     bottom row (0-1 BFS).
//
// Why:
//
//   - Reference oracle for incremental union-find percolation models.
//   - "Distance to percolation" for a partially opened grid.
//
// Complexity:
//
//   - ConnectedComponents, ReachableFromTop, Spans: O(W×H×d), Memory: O(W×H).
//   - ExpandToSpan: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors, percolation semantics) or Conn8.
//
// Errors:
//
//   - ErrEmptyGrid: input mask has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoPath: no path between the top and bottom rows.
package gridgraph
