// Package workerpool runs independent tasks on a bounded set of goroutines.
package workerpool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Size returns the number of workers to use for n tasks: the requested
// limit, or available parallelism when limit is not positive, never more
// than n.
func Size(limit, n int) int {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return max(1, min(limit, n))
}

// Map applies fn to every input on at most workers goroutines and returns
// the results in input order. Tasks do not communicate; each writes only
// its own result slot.
func Map[T, R any](inputs []T, workers int, fn func(T) R) []R {
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(Size(workers, len(inputs)))

	for i, in := range inputs {
		g.Go(func() error {
			results[i] = fn(in)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
