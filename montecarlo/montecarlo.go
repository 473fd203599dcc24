package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
)

// ctxCheckEvery is how many site openings happen between context checks.
const ctxCheckEvery = 64

// Run performs trials independent experiments on n×n grids and returns their
// thresholds.
//
// Steps:
//  1. Validate n > 0 and trials > 0 (percolation.ErrInvalidArgument).
//  2. Apply options; clamp Workers to [1, trials].
//  3. Schedule one errgroup task per trial, at most Workers in flight.
//     Trial i uses trialRNG(seed, i) and writes Thresholds[i].
//  4. The first failing trial cancels the rest; its error is returned.
//
// Complexity: O(trials · n² · α(n²)) time, O(workers · n²) memory.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", percolation.ErrInvalidArgument, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trial count %d must be positive", percolation.ErrInvalidArgument, trials)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	thresholds := make([]float64, trials)
	var done atomic.Int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < trials; i++ {
		if egCtx.Err() != nil {
			break
		}
		trial := i
		eg.Go(func() error {
			th, err := runTrial(egCtx, n, trialRNG(o.Seed, uint64(trial)), o.Verify)
			if err != nil {
				return err
			}
			thresholds[trial] = th
			finished := done.Add(1)
			if o.Progress != nil {
				o.Progress(int(finished), trials)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// A cancelled parent can stop the loop before any task fails.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{N: n, Thresholds: thresholds}, nil
}

// runTrial opens random closed sites on a fresh grid until it percolates and
// returns the open-site fraction.
func runTrial(ctx context.Context, n int, rng *rand.Rand, verify bool) (float64, error) {
	grid, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for opened := 0; !grid.Percolates(); opened++ {
		if opened%ctxCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return 0, err
			}
		}
		if err = openRandomSite(grid, rng); err != nil {
			return 0, err
		}
	}
	if verify {
		if err = verifySpans(grid); err != nil {
			return 0, err
		}
	}

	return grid.OpenFraction(), nil
}

// openRandomSite draws uniform (row, col) pairs until it hits a closed site,
// then opens it. The grid must not be fully open.
func openRandomSite(grid *percolation.Grid, rng *rand.Rand) error {
	n := grid.Size()
	for {
		row, col := rng.Intn(n)+1, rng.Intn(n)+1
		open, err := grid.IsOpen(row, col)
		if err != nil {
			return err
		}
		if !open {
			return grid.Open(row, col)
		}
	}
}

// verifySpans recomputes spanning by BFS over a snapshot of the grid.
func verifySpans(grid *percolation.Grid) error {
	gg, err := gridgraph.From2D(grid.Snapshot(), gridgraph.Conn4)
	if err != nil {
		return err
	}
	if gg.Spans() != grid.Percolates() {
		return fmt.Errorf("%w: n=%d open=%d", ErrInconsistent, grid.Size(), grid.NumberOfOpenSites())
	}
	return nil
}
