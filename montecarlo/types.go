package montecarlo

import (
	"errors"
	"math"
)

// ErrInconsistent indicates that a BFS recomputation of a finished trial
// disagrees with the union-find model.
var ErrInconsistent = errors.New("montecarlo: union-find and BFS disagree")

// confidence95 is the two-sided 95% z-score.
const confidence95 = 1.96

// Options configures Run. Use DefaultOptions() for defaults.
//
// Fields:
//
//	Seed     int64                 — base seed; 0 selects a fixed default.
//	Workers  int                   — max trials in flight; values < 1 mean 1.
//	Verify   bool                  — cross-check each trial with gridgraph BFS.
//	Progress func(done, total int) — called after each finished trial.
type Options struct {
	Seed     int64
	Workers  int
	Verify   bool
	Progress func(done, total int)
}

// Option configures Options.
type Option func(*Options)

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers bounds the number of concurrently running trials.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithVerify enables the per-trial BFS cross-check.
func WithVerify(verify bool) Option {
	return func(o *Options) {
		o.Verify = verify
	}
}

// WithProgress registers a callback invoked after each finished trial.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// DefaultOptions returns Options with the default seed, one worker,
// no verification and no progress callback.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
	}
}

// Result holds the per-trial thresholds of a finished experiment.
type Result struct {
	// N is the grid side length.
	N int
	// Thresholds[i] is the open-site fraction at which trial i percolated.
	Thresholds []float64
}

// Trials returns the number of trials T.
func (r *Result) Trials() int {
	return len(r.Thresholds)
}

// Mean returns the sample mean of the thresholds.
func (r *Result) Mean() float64 {
	return Mean(r.Thresholds)
}

// Stddev returns the sample standard deviation of the thresholds.
// It is NaN for a single trial.
func (r *Result) Stddev() float64 {
	return Stddev(r.Thresholds)
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (r *Result) ConfidenceLo() float64 {
	return r.Mean() - r.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (r *Result) ConfidenceHi() float64 {
	return r.Mean() + r.halfWidth()
}

func (r *Result) halfWidth() float64 {
	return confidence95 * r.Stddev() / math.Sqrt(float64(r.Trials()))
}
