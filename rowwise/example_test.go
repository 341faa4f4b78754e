package rowwise_test

import (
	"fmt"

	"github.com/katalvlaran/rowstat/matrix"
	"github.com/katalvlaran/rowstat/rowwise"
)

// ExampleRowMean averages each row, skipping missing cells.
func ExampleRowMean() {
	grid, _ := matrix.FromColumns([][]float64{
		{1, 2, 3},              // column a
		{2, 3, matrix.Missing}, // column b
	})

	skip, _ := rowwise.RowMean(grid, true)
	keep, _ := rowwise.RowMean(grid, false)
	fmt.Println(skip)
	fmt.Println(keep)

	// Output:
	// [1.5 2.5 3]
	// [1.5 2.5 NaN]
}

// ExampleRowRankSort sorts every row and labels the columns by position.
func ExampleRowRankSort() {
	grid, _ := matrix.FromRows([][]float64{
		{5, 3, matrix.Missing},
		{4, 6, 1},
	})

	f, _ := rowwise.RowRankSort(grid)
	fmt.Println(f.Labels)
	fmt.Print(f.Grid)

	// Output:
	// [TOP1 TOP2 TOP3]
	// [3, 5, +Inf]
	// [1, 4, 6]
}

// ExampleRowRank shows the three tie methods on the same row.
func ExampleRowRank() {
	grid, _ := matrix.FromRows([][]float64{{10, 11, 12, 13}})

	for _, name := range []string{"min", "max", "avg"} {
		method, _ := rowwise.ParseTieMethod(name)
		ranks, _ := rowwise.RowRank([]float64{10}, grid, method)
		fmt.Println(name, ranks)
	}

	// Output:
	// min [1]
	// max [2]
	// avg [1.5]
}
