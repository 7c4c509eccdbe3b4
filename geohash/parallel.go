package geohash

import "golang.org/x/sync/errgroup"

// forEachChunk splits [0, n) into contiguous chunks and calls f for each,
// on separate goroutines when there is enough work.
func (e *Engine) forEachChunk(n int, f func(from, to int) error) error {
	return runChunks(chunks(n, e.opts.workers(), e.opts.MinChunk), func(_, from, to int) error {
		return f(from, to)
	})
}

// runChunks calls f for every [from, to) in bounds with its index.
// The first error is returned after all chunks finished.
func runChunks(bounds [][2]int, f func(i, from, to int) error) error {
	if len(bounds) == 1 {
		return f(0, bounds[0][0], bounds[0][1])
	}
	var g errgroup.Group
	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			return f(i, b[0], b[1])
		})
	}
	return g.Wait()
}

// chunks returns at most workers [from, to) ranges covering [0, n), each at least minChunk long
func chunks(n, workers, minChunk int) [][2]int {
	if n == 0 {
		return nil
	}
	count := min(workers, max(n/minChunk, 1))
	bounds := make([][2]int, 0, count)
	size, rest := n/count, n%count
	from := 0
	for i := 0; i < count; i++ {
		to := from + size
		if i < rest {
			to++
		}
		bounds = append(bounds, [2]int{from, to})
		from = to
	}
	return bounds
}
