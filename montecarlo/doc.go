// Package montecarlo estimates the percolation threshold of an n×n grid.
//
// Each trial builds a fresh percolation.Grid, opens uniformly random closed
// sites until the grid percolates, and records the fraction of open sites.
// After T trials the sample mean, sample standard deviation and a 95%
// confidence interval
//
//	[mean − 1.96·stddev/√T, mean + 1.96·stddev/√T]
//
// summarize the estimate. For large n the threshold approaches ≈ 0.5927.
//
// Determinism:
//
//   - Trial i draws from an RNG derived from (seed, i) with a SplitMix64 mix,
//     so the thresholds are identical for any worker count.
//   - seed == 0 selects a fixed default seed.
//
// Concurrency:
//
//   - WithWorkers bounds how many trials run at once. Every trial owns its
//     grid and RNG; nothing mutable is shared except the result slot it fills.
//   - The progress callback may be invoked from several goroutines.
//
// Errors:
//
//   - percolation.ErrInvalidArgument: n ≤ 0 or trials ≤ 0.
//   - ErrInconsistent: WithVerify found a trial whose BFS recomputation
//     disagrees with the union-find result.
//   - ctx.Err(): the context was cancelled mid-run.
package montecarlo
