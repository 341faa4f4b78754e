// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Define the boundary between tabular collaborators and the numeric grid.
//     Every conversion validates shape (and, for FromAny, value types) up front,
//     so the row-wise kernels can assume a rectangular float64 grid.
//
// Exposed API:
//   - FromRows(rows)   -> *Dense // row-major [][]float64, rectangular
//   - FromColumns(cols)-> *Dense // column-major data-frame layout
//   - FromAny(cols)    -> *Dense // loosely typed columns; nil → Missing
//   - ToRows(m)        -> [][]float64
//
// Determinism & Performance:
//   - Fixed i→j traversal; a single allocation for the flat buffer.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFromRows    = "FromRows"
	opFromColumns = "FromColumns"
	opFromAny     = "FromAny"
	opToRows      = "ToRows"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FromRows copies a row-major [][]float64 into a new Dense.
// MAIN DESCRIPTION:
//   - Boundary conversion for callers that already hold rows.
//
// Behavior highlights:
//   - nil/empty input yields a legal 0×0 Dense.
//   - NaN cells are kept as Missing.
//
// Errors:
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	c, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	m, err := NewZeros(len(rows), c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromColumns builds a Dense from column-major data, the way a data frame
// stores its columns. cols[j][i] becomes cell (i, j).
//
// Errors:
//   - ErrDimensionMismatch when columns differ in length.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromColumns(cols [][]float64) (*Dense, error) {
	r, err := ValidateRectangular(cols)
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	c := len(cols)
	m, err := NewZeros(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			m.data[i*c+j] = cols[j][i]
		}
	}

	return m, nil
}

// FromAny coerces loosely typed columns into a numeric Dense.
// MAIN DESCRIPTION:
//   - The explicit numeric coercion step a tabular collaborator performs
//     before calling any row-wise kernel.
//
// Coercion rules:
//   - float64, float32 and every signed/unsigned integer kind → float64.
//   - bool → 1 or 0.
//   - nil → Missing.
//   - anything else → ErrNonNumeric (the whole conversion fails).
//
// Errors:
//   - ErrDimensionMismatch for ragged columns.
//   - ErrNonNumeric with the offending (row, col) in the message.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromAny(cols [][]any) (*Dense, error) {
	c := len(cols)
	r := 0
	if c > 0 {
		r = len(cols[0])
	}
	for j := 1; j < c; j++ {
		if len(cols[j]) != r {
			return nil, matrixErrorf(opFromAny, fmt.Errorf("column %d: %w", j, ErrDimensionMismatch))
		}
	}
	m, err := NewZeros(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromAny, err)
	}

	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			v, ok := toFloat(cols[j][i])
			if !ok {
				return nil, matrixErrorf(opFromAny, fmt.Errorf("cell (%d,%d) of type %T: %w", i, j, cols[j][i], ErrNonNumeric))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// toFloat implements the FromAny coercion table.
func toFloat(x any) (float64, bool) {
	switch v := x.(type) {
	case nil:
		return Missing, true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return math.NaN(), false
	}
}

// ToRows copies m into a fresh row-major [][]float64.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - Wrapped At errors from the non-Dense fallback.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = make([]float64, c)
			copy(out[i], d.data[i*c:(i+1)*c])
		}

		return out, nil
	}

	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
		}
	}

	return out, nil
}
