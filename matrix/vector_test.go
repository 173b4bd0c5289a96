// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/varbvs/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDotAndAddScaled(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, -5, 6}
	assert.Equal(t, 12.0, matrix.Dot(a, b))

	matrix.AddScaled(a, 2, b)
	assert.Equal(t, []float64{9, -8, 15}, a)

	assert.Panics(t, func() { matrix.Dot(a, b[:2]) })
}

// TestMatVec compares against a hand-computed product and checks errors.
func TestMatVec(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2, 0},
		{0, 1, -1},
	})
	require.NoError(t, err)

	y, err := matrix.MatVec(m, []float64{3, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -2}, y)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestColumnDotsAndSquares covers Xᵀy and diag XᵀX including a zero column.
func TestColumnDotsAndSquares(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 2},
		{-1, 0, 3},
	})
	require.NoError(t, err)

	xy, err := matrix.ColumnDots(m, []float64{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 7}, xy)

	d, err := matrix.ColumnSquares(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 13}, d)

	_, err = matrix.ColumnDots(m, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ColumnSquares(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGonumRoundTrip converts to gonum and back.
func TestGonumRoundTrip(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	m, err := matrix.FromGonum(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.RawColumnMajor())

	back := m.ToGonum()
	assert.True(t, mat.Equal(g, back))

	_, err = matrix.FromGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
