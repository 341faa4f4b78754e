// Package rowstat is a small toolkit of row-wise statistics over tabular
// numeric data with missing values.
//
// 🚀 What is rowstat?
//
//	Kernels that treat every row of a table independently:
//		• RowMean     – per-row average, missing cells skipped or propagated
//		• RowRankSort – every row sorted ascending, columns TOP1..TOPC
//		• RowRank     – rank of a probe value within its row (min/max/avg ties)
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/  — Dense row-major grid, Missing marker, boundary conversions
//	rowwise/ — the kernels, tie methods, options (workers, logging)
//
// Runnable scenario: examples/exam_leaderboard.go.
//
//	go get github.com/katalvlaran/rowstat
package rowstat
