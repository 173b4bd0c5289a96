package snapshot_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/varbvs/matrix"
	"github.com/katalvlaran/varbvs/snapshot"
	"github.com/katalvlaran/varbvs/varbvs"
)

// ExampleDecode saves a fitted state and restores it for a warm start.
func ExampleDecode() {
	X, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	s, _ := varbvs.WarmState(X, []float64{1, 0.25}, []float64{3, -2})

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, s); err != nil {
		fmt.Println(err)
		return
	}
	restored, err := snapshot.Decode(&buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(restored.Alpha, restored.Mu, restored.Xr)
	// Output:
	// [1 0.25] [3 -2] [3 -0.5]
}
