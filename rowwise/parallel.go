// SPDX-License-Identifier: MIT

package rowwise

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rowstat/matrix"
)

// forEachChunk calls fn over consecutive half-open row ranges [lo, hi)
// covering [0, rows). With one worker, or when everything fits in one chunk,
// fn runs once on the calling goroutine. Otherwise chunks run on an errgroup
// bounded by o.workers and the first error wins.
//
// fn must only write output slots inside its own range and must allocate its
// own scratch buffers. Returns the number of chunks scheduled.
func forEachChunk(rows int, o Options, fn func(lo, hi int) error) (int, error) {
	if rows == 0 {
		return 0, nil
	}
	if o.workers <= 1 || rows <= o.chunkRows {
		return 1, fn(0, rows)
	}

	var g errgroup.Group
	g.SetLimit(o.workers)

	chunks := 0
	for lo := 0; lo < rows; lo += o.chunkRows {
		start, end := lo, min(lo+o.chunkRows, rows)
		g.Go(func() error { return fn(start, end) })
		chunks++
	}

	return chunks, g.Wait()
}

// rowOf returns row i of m. Dense rows come back as a read-only view of the
// backing buffer; other implementations are copied into buf (len == Cols).
func rowOf(m matrix.Matrix, i int, buf []float64) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RowView(i)
	}
	var err error
	for j := range buf {
		if buf[j], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return buf, nil
}
