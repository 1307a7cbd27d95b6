// Package parallel splits index ranges across CPU cores.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallelize divides [0, items) into contiguous chunks, one per CPU core,
// and runs fn on each chunk concurrently. It returns after every chunk is done.
// Chunks never overlap, so fn may write to disjoint rows or columns of a
// shared matrix without locking.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}
	chunkSize := (items + numWorkers - 1) / numWorkers

	var g errgroup.Group
	g.SetLimit(numWorkers)
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		s, e := start, end
		g.Go(func() error {
			fn(s, e)
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items does not exceed threshold, and Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
