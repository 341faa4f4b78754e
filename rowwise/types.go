// SPDX-License-Identifier: MIT

package rowwise

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/rowstat/matrix"
)

// TieMethod selects how RowRank ranks a probe that equals other values in its row.
//
//   - TieMin — 1-based position of the first tied value.
//   - TieMax — 1-based position of the last tied value.
//   - TieAvg — midpoint of the TieMin and TieMax ranks.
//
// The zero value is not a valid method; callers must choose one explicitly.
type TieMethod int

const (
	// TieMin ranks ties at their first position ("min").
	TieMin TieMethod = iota + 1
	// TieMax ranks ties at their last position ("max").
	TieMax
	// TieAvg ranks ties at the average of first and last positions ("avg").
	TieAvg
)

// Method names accepted by ParseTieMethod.
const (
	methodMin = "min"
	methodMax = "max"
	methodAvg = "avg"
)

// Valid reports whether m is one of TieMin, TieMax, TieAvg.
func (m TieMethod) Valid() bool {
	return m == TieMin || m == TieMax || m == TieAvg
}

// String returns "min", "max" or "avg"; invalid values render as TieMethod(n).
func (m TieMethod) String() string {
	switch m {
	case TieMin:
		return methodMin
	case TieMax:
		return methodMax
	case TieAvg:
		return methodAvg
	default:
		return "TieMethod(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseTieMethod maps "min", "max" or "avg" (exact, lower case) to a TieMethod.
// Any other name returns ErrInvalidMethod.
func ParseTieMethod(name string) (TieMethod, error) {
	switch name {
	case methodMin:
		return TieMin, nil
	case methodMax:
		return TieMax, nil
	case methodAvg:
		return TieAvg, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m TieMethod) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TieMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseTieMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// labelPrefix prefixes the 1-based column number in RowRankSort labels.
const labelPrefix = "TOP"

// TopLabels returns ["TOP1", ..., "TOPn"]. n <= 0 yields an empty slice.
func TopLabels(n int) []string {
	if n <= 0 {
		return []string{}
	}
	labels := make([]string, n)
	for j := range labels {
		labels[j] = labelPrefix + strconv.Itoa(j+1)
	}

	return labels
}

// Frame is a labelled grid: RowRankSort's result, ready for a tabular
// collaborator to re-wrap with Labels as column names.
type Frame struct {
	Labels []string      // one label per column of Grid
	Grid   *matrix.Dense // R×C values
}

// Col returns a copy of the column named label.
func (f *Frame) Col(label string) ([]float64, error) {
	for j, l := range f.Labels {
		if l != label {
			continue
		}
		out := make([]float64, f.Grid.Rows())
		for i := range out {
			v, err := f.Grid.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}
