// SPDX-License-Identifier: MIT

package rowwise_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowstat/matrix"
)

// NA is a short alias for the Missing marker in table literals.
var NA = matrix.Missing

// posInf is the placeholder RowRankSort writes for missing cells.
var posInf = math.Inf(1)

// mustGrid builds a Dense from row-major literals or fails the test.
func mustGrid(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randomGrid fills an r×c grid with values in [0,10) rounded to one decimal
// (so ties happen) and roughly missRate of the cells missing.
func randomGrid(t testing.TB, r, c int, missRate float64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			if rng.Float64() < missRate {
				rows[i][j] = NA
				continue
			}
			rows[i][j] = math.Round(rng.Float64()*100) / 10
		}
	}

	return mustGrid(t, rows)
}

// requireSameFloats compares slices treating every NaN as equal to NaN.
func requireSameFloats(t testing.TB, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.Truef(t, math.IsNaN(got[i]), "index %d: want NA, got %g", i, got[i])
			continue
		}
		require.Equalf(t, want[i], got[i], "index %d", i)
	}
}

// requireGrid compares m to row-major literals, NaN matching NaN.
func requireGrid(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		requireSameFloats(t, want[i], got[i])
	}
}

// hide wraps a Matrix so that type assertions to *Dense fail, forcing the
// At-based fallback paths.
type hide struct{ matrix.Matrix }

// countingGrid records how many At calls reach the wrapped matrix.
type countingGrid struct {
	matrix.Matrix
	calls int
}

func (g *countingGrid) At(i, j int) (float64, error) {
	g.calls++
	return g.Matrix.At(i, j)
}
