package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/varbvs/matrix"
)

// ExampleDense_Column shows that columns are contiguous views.
func ExampleDense_Column() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	fmt.Println(X.Column(0), X.Column(1))
	// Output:
	// [1 3 5] [2 4 6]
}

// ExampleColumnDots computes the sufficient statistics Xᵀy and diag XᵀX.
func ExampleColumnDots() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{1, 2},
	})
	xy, _ := matrix.ColumnDots(X, []float64{3, 1})
	d, _ := matrix.ColumnSquares(X)
	fmt.Println(xy, d)
	// Output:
	// [4 2] [2 4]
}
