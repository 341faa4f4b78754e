// SPDX-License-Identifier: MIT

package rowwise

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/rowstat/matrix"
)

// RowRank ranks values[i] against row i of grid.
//
// For each row the probe is added to the row's C values, the C+1 values are
// sorted ascending (missing reference cells count as +Inf) and the probe's
// 1-based position is reported:
//
//   - TieMin: position of the first value equal to the probe.
//   - TieMax: position of the last value equal to the probe.
//   - TieAvg: (TieMin + TieMax) / 2.
//
// A missing probe yields matrix.Missing for that row. A probe greater than
// every present reference value ranks C+1-k, where k is the number of missing
// cells in the row.
//
// Errors (checked before any row is processed):
//   - ErrInvalidMethod when method is not TieMin, TieMax or TieAvg.
//   - matrix.ErrNilMatrix when grid is nil.
//   - ErrShapeMismatch (also matching matrix.ErrDimensionMismatch) when
//     len(values) != grid.Rows().
//
// Complexity: O(R·C·log C).
func RowRank(values []float64, grid matrix.Matrix, method TieMethod, opts ...Option) ([]float64, error) {
	if !method.Valid() {
		return nil, rowwiseErrorf(opRowRank, fmt.Errorf("%w: %s", ErrInvalidMethod, method))
	}
	if err := matrix.ValidateNotNil(grid); err != nil {
		return nil, rowwiseErrorf(opRowRank, err)
	}
	r, c := grid.Rows(), grid.Cols()
	if err := matrix.ValidateVecLen(values, r); err != nil {
		return nil, rowwiseErrorf(opRowRank,
			fmt.Errorf("%w: %d values for %d rows: %w", ErrShapeMismatch, len(values), r, err))
	}
	o := gatherOptions(opts...)

	out := make([]float64, r)
	chunks, err := forEachChunk(r, o, func(lo, hi int) error {
		buf := make([]float64, c)
		work := make([]float64, c+1)
		for i := lo; i < hi; i++ {
			if matrix.IsMissing(values[i]) {
				out[i] = matrix.Missing
				continue
			}
			row, err := rowOf(grid, i, buf)
			if err != nil {
				return err
			}
			out[i] = rankRow(values[i], row, work, method)
		}

		return nil
	})
	if err != nil {
		return nil, rowwiseErrorf(opRowRank, err)
	}

	o.logger.Debug("row rank",
		slog.Int("rows", r),
		slog.Int("cols", c),
		slog.String("method", method.String()),
		slog.Int("chunks", chunks))

	return out, nil
}

// rankRow is the per-row kernel of RowRank. work must have len(row)+1 slots
// and is overwritten. probe must not be missing.
func rankRow(probe float64, row, work []float64, method TieMethod) float64 {
	work[0] = probe
	fillInfMissing(work[1:], row)
	slices.Sort(work)

	// Lower bound: leftmost index whose value is not less than probe.
	pos, _ := slices.BinarySearch(work, probe)

	reps := 1
	if method != TieMin {
		for pos+reps < len(work) && work[pos+reps] == probe {
			reps++
		}
	}

	switch method {
	case TieMin:
		return float64(pos + 1)
	case TieMax:
		return float64(pos + reps)
	case TieAvg:
		return float64(pos) + float64(reps+1)/2
	default:
		panic("rowwise: rankRow: unvalidated tie method " + method.String())
	}
}
