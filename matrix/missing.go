// SPDX-License-Identifier: MIT

package matrix

import "math"

// Missing is the distinguished "no data" marker stored in grid cells and
// vectors. It is a quiet NaN; any NaN value is treated as missing, so data
// that arrives with a different NaN payload is still recognised.
var Missing = math.NaN()

// IsMissing reports whether v is the Missing marker (any NaN).
// Complexity: O(1).
func IsMissing(v float64) bool { return math.IsNaN(v) }

// CountMissing returns the number of missing cells in m.
// Dense inputs are scanned on the flat buffer; other implementations go
// through At.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - Wrapped At errors from the fallback path.
//
// Complexity: O(r*c).
func CountMissing(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}

	var n int
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if IsMissing(v) {
				n++
			}
		}

		return n, nil
	}

	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, err
			}
			if IsMissing(v) {
				n++
			}
		}
	}

	return n, nil
}
