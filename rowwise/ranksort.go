// SPDX-License-Identifier: MIT

package rowwise

import (
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/rowstat/matrix"
)

// RowRankSort returns a new grid where every row of grid is sorted ascending,
// labelled "TOP1".."TOPC".
//
// Missing cells are mapped to +Inf before sorting so they always land at the
// end of the row. By default the +Inf placeholders are written to the output
// as-is; WithRestoreMissing writes matrix.Missing into those trailing cells
// instead. Labels depend only on the column count.
//
// Applying RowRankSort to its own output returns an identical grid.
//
// Errors:
//   - matrix.ErrNilMatrix when grid is nil.
//   - Wrapped At errors from non-Dense implementations.
//
// Complexity: O(R·C·log C) time, O(R·C) output.
func RowRankSort(grid matrix.Matrix, opts ...Option) (*Frame, error) {
	if err := matrix.ValidateNotNil(grid); err != nil {
		return nil, rowwiseErrorf(opRowRankSort, err)
	}
	o := gatherOptions(opts...)
	r, c := grid.Rows(), grid.Cols()

	out, err := matrix.NewZeros(r, c)
	if err != nil {
		return nil, rowwiseErrorf(opRowRankSort, err)
	}

	chunks, err := forEachChunk(r, o, func(lo, hi int) error {
		buf := make([]float64, c)
		for i := lo; i < hi; i++ {
			src, err := rowOf(grid, i, buf)
			if err != nil {
				return err
			}
			dst, err := out.RowView(i)
			if err != nil {
				return err
			}
			sortRow(dst, src, o.restoreMissing)
		}

		return nil
	})
	if err != nil {
		return nil, rowwiseErrorf(opRowRankSort, err)
	}

	o.logger.Debug("row rank sort",
		slog.Int("rows", r),
		slog.Int("cols", c),
		slog.Bool("restore_missing", o.restoreMissing),
		slog.Int("chunks", chunks))

	return &Frame{Labels: TopLabels(c), Grid: out}, nil
}

// sortRow writes src sorted ascending into dst (same length, no aliasing).
// Missing values sort last as +Inf; with restoreMissing the trailing
// placeholders are turned back into matrix.Missing.
func sortRow(dst, src []float64, restoreMissing bool) {
	nMissing := fillInfMissing(dst, src)
	slices.Sort(dst)
	if restoreMissing {
		for j := len(dst) - nMissing; j < len(dst); j++ {
			dst[j] = matrix.Missing
		}
	}
}

// fillInfMissing copies src into dst replacing missing values with +Inf and
// returns how many were replaced.
func fillInfMissing(dst, src []float64) int {
	n := 0
	for j, v := range src {
		if matrix.IsMissing(v) {
			dst[j] = math.Inf(1)
			n++
			continue
		}
		dst[j] = v
	}

	return n
}
