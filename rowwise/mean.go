// SPDX-License-Identifier: MIT

package rowwise

import (
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/rowstat/matrix"
)

// RowMean returns the arithmetic mean of the present values of every row.
//
// Missing cells:
//   - skipMissing == false: the first missing cell makes the row's result
//     matrix.Missing and the rest of that row is not inspected.
//   - skipMissing == true: missing cells are left out of both sum and count.
//
// A row with no present values (all missing, or a grid with zero columns)
// yields matrix.Missing rather than 0/0.
//
// Errors:
//   - matrix.ErrNilMatrix when grid is nil.
//   - Wrapped At errors from non-Dense implementations.
//
// Complexity: O(R·C).
func RowMean(grid matrix.Matrix, skipMissing bool, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(grid); err != nil {
		return nil, rowwiseErrorf(opRowMean, err)
	}
	o := gatherOptions(opts...)
	r, c := grid.Rows(), grid.Cols()

	out := make([]float64, r)
	var missing atomic.Int64
	dense, isDense := grid.(*matrix.Dense)
	chunks, err := forEachChunk(r, o, func(lo, hi int) error {
		var n int64
		for i := lo; i < hi; i++ {
			if isDense {
				// Dense fast-path: scan the row in place.
				row, err := dense.RowView(i)
				if err != nil {
					return err
				}
				out[i] = meanRow(row, skipMissing)
			} else {
				v, err := meanAt(grid, i, c, skipMissing)
				if err != nil {
					return err
				}
				out[i] = v
			}
			if matrix.IsMissing(out[i]) {
				n++
			}
		}
		missing.Add(n)

		return nil
	})
	if err != nil {
		return nil, rowwiseErrorf(opRowMean, err)
	}

	o.logger.Debug("row mean",
		slog.Int("rows", r),
		slog.Int("cols", c),
		slog.Bool("skip_missing", skipMissing),
		slog.Int("chunks", chunks),
		slog.Int64("missing_results", missing.Load()))

	return out, nil
}

// meanRow is the per-row kernel of RowMean.
func meanRow(row []float64, skipMissing bool) float64 {
	var total float64
	var count int
	for _, v := range row {
		if matrix.IsMissing(v) {
			if skipMissing {
				continue
			}
			return matrix.Missing
		}
		total += v
		count++
	}
	if count == 0 {
		return matrix.Missing
	}

	return total / float64(count)
}

// meanAt is meanRow for non-Dense grids: cells are read lazily through At so
// the short-circuit on a missing cell also skips the remaining reads.
func meanAt(grid matrix.Matrix, i, c int, skipMissing bool) (float64, error) {
	var total float64
	var count int
	for j := 0; j < c; j++ {
		v, err := grid.At(i, j)
		if err != nil {
			return 0, err
		}
		if matrix.IsMissing(v) {
			if skipMissing {
				continue
			}
			return matrix.Missing, nil
		}
		total += v
		count++
	}
	if count == 0 {
		return matrix.Missing, nil
	}

	return total / float64(count), nil
}
