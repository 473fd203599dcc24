// Package percolation models site percolation on an n×n grid.
//
// Sites start closed and are opened one at a time. The Grid answers, after
// every opening, whether an open path spans from the top row to the bottom
// row (Percolates) and whether a given site is connected to the top (IsFull).
//
// Design:
//
//   - Two disjoint sets share the site id space [0, n²).
//   - connectivity (n²+2 elements) wires a virtual top node to every open
//     top-row site and a virtual bottom node to every open bottom-row site.
//     Percolates asks whether the two virtual nodes are joined.
//   - fullness (n²+1 elements) wires only the virtual top. IsFull asks
//     whether a site is joined to it.
//   - fullness never sees a bottom-row union. With a single structure, once
//     the grid percolates every site touching an open bottom-row site would
//     look full through the virtual bottom ("backwash").
//
// Coordinates are 1-indexed: 1 ≤ row, col ≤ n. Site (row, col) has linear
// id (row-1)*n + (col-1).
//
// Complexity:
//
//   - New: O(n²) time and memory.
//   - Open, IsFull, Percolates: O(α(n²)) amortized.
//   - IsOpen, NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0, or a coordinate outside [1, n].
//
// A Grid is single-threaded. Parallel experiments give each goroutine its own Grid.
package percolation
