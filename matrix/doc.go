// Package matrix offers the rectangular numeric grid consumed by the
// row-wise kernels in package rowwise.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 grid with safe At/Set accessors and whole-row
//     access (RowView, Row, SetRow) for row-wise scans.
//   - Missing / IsMissing: the distinguished "no data" marker (NaN) and its test.
//   - Boundary conversions (FromRows, FromColumns, FromAny, ToRows) that turn
//     tabular data into a validated grid before any kernel runs.
//
// All errors are package sentinels (errors.go) matched with errors.Is.
//
// See the examples in this package and rowwise for usage patterns.
package matrix
