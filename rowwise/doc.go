// Package rowwise implements row-wise numeric kernels over a rectangular
// float64 grid (matrix.Matrix) that may contain the matrix.Missing marker.
//
// Kernels:
//
//   - RowMean     — per-row arithmetic mean; a missing cell either nullifies
//     the row or is skipped.
//   - RowRankSort — every row sorted ascending, missing cells last, output
//     columns labelled TOP1..TOPC.
//   - RowRank     — rank of a probe value inside its row of a reference grid,
//     ties resolved by TieMin, TieMax or TieAvg.
//
// Every kernel is a pure function of its inputs: inputs are never mutated or
// retained and outputs are freshly allocated. Rows are independent, so the
// kernels can fan row ranges out to goroutines (WithWorkers); results are
// identical for any worker count.
//
// Usage:
//
//	import (
//	  "github.com/katalvlaran/rowstat/matrix"
//	  "github.com/katalvlaran/rowstat/rowwise"
//	)
//
//	grid, _ := matrix.FromColumns([][]float64{{1, 2, 3}, {2, 3, 3}})
//	means, _ := rowwise.RowMean(grid, true)                 // [1.5 2.5 3]
//	top, _ := rowwise.RowRankSort(grid)                      // labels TOP1, TOP2
//	ranks, _ := rowwise.RowRank([]float64{2, 2, 3}, grid, rowwise.TieAvg)
//
// Complexity:
//
//   - RowMean:     O(R·C)
//   - RowRankSort: O(R·C·log C)
//   - RowRank:     O(R·C·log C)
package rowwise
