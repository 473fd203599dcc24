package montecarlo

import "math"

// Mean returns the arithmetic mean of xs, or NaN when xs is empty.
// Complexity: O(len(xs)).
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Stddev returns the sample standard deviation of xs (divisor len(xs)-1).
// Fewer than two samples yield NaN.
// Complexity: O(len(xs)).
func Stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mu := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
