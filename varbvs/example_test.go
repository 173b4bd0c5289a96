package varbvs_test

import (
	"fmt"

	"github.com/katalvlaran/varbvs/matrix"
	"github.com/katalvlaran/varbvs/varbvs"
)

// ExampleCoordinateUpdatePass walks a single observation and predictor:
//
//	X = [[2]], sigma = sa = 1, logodds = 0, xy = 4, d = 4, zero start.
//
// The slab variance is 0.2, the residual correlation 4, so mu = 0.8 and
// alpha = Sigmoid(½(ln 0.2 + 3.2)).
func ExampleCoordinateUpdatePass() {
	X, _ := matrix.NewDenseFromColumns(1, 1, []float64{2})
	alpha, mu, Xr := []float64{0}, []float64{0}, []float64{0}

	err := varbvs.CoordinateUpdatePass(X, 1, 1, []float64{0}, []float64{4}, []float64{4}, alpha, mu, Xr, []int{0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mu=%.4f alpha=%.4f Xr=%.4f\n", mu[0], alpha[0], Xr[0])
	// Output:
	// mu=0.8000 alpha=0.6890 Xr=1.1023
}

// ExampleUpdatePass runs alternating sweeps on a small problem where only
// the first predictor carries signal.
func ExampleUpdatePass() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
		{-1, 1},
	})
	y := []float64{3, 0, 3, -3}

	stats, _ := varbvs.NewStats(X, y)
	state, _ := varbvs.NewState(X.Rows(), X.Cols())
	prm := varbvs.Params{Sigma: 0.1, Sa: 1, LogOdds: varbvs.RepeatLogOdds(X.Cols(), 0)}

	for pass := 0; pass < 50; pass++ {
		if err := varbvs.UpdatePass(X, prm, stats, state, varbvs.Alternating(X.Cols(), pass)); err != nil {
			fmt.Println("error:", err)

			return
		}
	}
	fmt.Printf("alpha=[%.2f %.2f] mu=[%.2f %.2f]\n", state.Alpha[0], state.Alpha[1], state.Mu[0], state.Mu[1])
	// Output:
	// alpha=[1.00 0.33] mu=[2.25 0.00]
}

// ExampleSigmoid shows saturation without overflow.
func ExampleSigmoid() {
	fmt.Println(varbvs.Sigmoid(0), varbvs.Sigmoid(-1000), varbvs.Sigmoid(1000))
	// Output:
	// 0.5 0 1
}
