// SPDX-License-Identifier: MIT

package rowwise

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned by RowRank when the probe vector length
	// differs from the grid row count. No row is processed.
	ErrShapeMismatch = errors.New("rowwise: probe length does not match grid rows")

	// ErrInvalidMethod is returned for a TieMethod outside {TieMin, TieMax, TieAvg}
	// or an unparsable method name.
	ErrInvalidMethod = errors.New("rowwise: invalid tie method")

	// ErrUnknownLabel is returned by Frame.Col for a label the frame does not carry.
	ErrUnknownLabel = errors.New("rowwise: unknown column label")
)

// Operation name constants for unified error wrapping.
const (
	opRowMean     = "RowMean"
	opRowRankSort = "RowRankSort"
	opRowRank     = "RowRank"
)

// rowwiseErrorf wraps err with the operation name.
func rowwiseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
