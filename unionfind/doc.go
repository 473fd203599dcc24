// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over integer element ids.
//
// What:
//
//   - DisjointSet partitions the universe [0, m) into disjoint sets.
//   - Find returns a canonical root for an element's set.
//   - Union merges two sets; Connected reports whether two elements share a set.
//
// Why:
//
//   - Incremental connectivity: percolation grids, Kruskal MST, image labeling.
//   - Near-constant amortized cost per operation, with no graph traversal.
//
// Complexity:
//
//   - Find, Union, Connected: O(α(m)) amortized (union by size + path halving).
//   - New: O(m) time and memory.
//
// Errors:
//
//   - ErrInvalidArgument: universe size below 1, or an element id outside [0, m).
//
// A DisjointSet is not safe for concurrent use; give each goroutine its own.
package unionfind
