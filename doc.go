// Package percolation is the root of a small toolkit for studying site
// percolation on square grids, from the union-find primitive up to a
// Monte Carlo threshold estimator and its command line.
//
// Under the hood, everything is organized under these subpackages:
//
//	unionfind/   — fixed-size disjoint-set with union by size and path halving
//	percolation/ — n×n Grid: Open, IsOpen, IsFull, Percolates, NumberOfOpenSites
//	gridgraph/   — BFS reference analysis of an open-site mask (components,
//	               top-reachability, closed sites still needed to span)
//	montecarlo/  — threshold estimation: trials, mean, stddev, 95% interval
//
// Quick ASCII example:
//
//	■ □ □
//	■ ■ □
//	□ ■ □
//
// The open path (1,1)→(2,1)→(2,2)→(3,2) joins the top row to the bottom
// row, so this 3×3 grid percolates.
//
//	go run ./cmd/percolation-stats 200 100
package percolation
