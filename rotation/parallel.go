// SPDX-License-Identifier: MIT

package rotation

import "golang.org/x/sync/errgroup"

// chunkSize is the number of batch elements per unit of work. It is fixed
// (independent of the worker count) so chunk boundaries, and with them the
// generator's per-chunk RNG streams, never depend on parallelism.
const chunkSize = 4096

// numChunks returns ceil(n / chunkSize).
func numChunks(n int) int {
	return (n + chunkSize - 1) / chunkSize
}

// forEachChunk calls fn(c, lo, hi) for every chunk c covering [lo, hi) of
// [0, n). With workers <= 1 chunks run inline in order; otherwise on up to
// workers goroutines. fn must only touch indices inside its chunk.
//
// Complexity: O(n) total work, O(chunks) scheduling overhead.
func forEachChunk(n, workers int, fn func(c, lo, hi int)) {
	chunks := numChunks(n)
	if workers <= 1 || chunks <= 1 {
		var c int
		for c = 0; c < chunks; c++ {
			fn(c, c*chunkSize, min((c+1)*chunkSize, n))
		}

		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		c := c
		g.Go(func() error {
			fn(c, c*chunkSize, min((c+1)*chunkSize, n))
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}
