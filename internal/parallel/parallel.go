// Package parallel implements the one opt-in data-parallel loop the
// balance-sum argument uses: a flat range split over an index space, with
// no shared mutable state and deterministic output-by-index. It mirrors
// gnark's own utils.Parallelize helper rather than a dependency-ordered
// scheduler, because the quotient evaluation loop it drives has no
// dependencies between iterations.
package parallel

import (
	"runtime"
	"sync"
)

// Execute splits [0, n) into chunks and runs fn(start, end) for each chunk
// concurrently across numWorkers goroutines (runtime.NumCPU() when
// numWorkers <= 0). fn must not mutate any state outside [start, end) of
// its own output range. Execute blocks until every chunk has completed.
func Execute(n int, fn func(start, end int), numWorkers ...int) {
	if n == 0 {
		return
	}

	workers := runtime.NumCPU()
	if len(numWorkers) > 0 && numWorkers[0] > 0 {
		workers = numWorkers[0]
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers

	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
