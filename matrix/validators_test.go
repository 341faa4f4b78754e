// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rowstat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nil inputs.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

// TestValidateVecLen covers nil, matching and mismatched lengths.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    []float64
		n    int
		want error
	}{
		{"nil for empty", nil, 0, nil},
		{"nil for non-empty", nil, 2, matrix.ErrDimensionMismatch},
		{"match", []float64{1, 2}, 2, nil},
		{"short", []float64{1}, 2, matrix.ErrDimensionMismatch},
		{"long", []float64{1, 2, 3}, 2, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVecLen(tc.x, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateRectangular checks width detection and ragged rejection.
func TestValidateRectangular(t *testing.T) {
	t.Parallel()

	w, err := matrix.ValidateRectangular([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, w)

	w, err = matrix.ValidateRectangular(nil)
	require.NoError(t, err)
	require.Equal(t, 0, w)

	_, err = matrix.ValidateRectangular([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
