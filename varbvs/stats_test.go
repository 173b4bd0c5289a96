package varbvs_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/varbvs/matrix"
	"github.com/katalvlaran/varbvs/varbvs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStats compares against hand-computed Xᵀy and diag XᵀX.
func TestNewStats(t *testing.T) {
	X, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 0},
		{-1, 4},
	})
	require.NoError(t, err)

	st, err := varbvs.NewStats(X, []float64{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 10}, st.XY)
	assert.Equal(t, []float64{11, 20}, st.D)

	_, err = varbvs.NewStats(X, []float64{1, 2})
	assert.ErrorIs(t, err, varbvs.ErrDimensionMismatch)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = varbvs.NewStats(nil, []float64{1, 2, 3})
	assert.ErrorIs(t, err, varbvs.ErrDimensionMismatch)
}

// TestNewState covers the zero state and negative sizes.
func TestNewState(t *testing.T) {
	s, err := varbvs.NewState(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, s.Alpha)
	assert.Equal(t, []float64{0, 0}, s.Mu)
	assert.Equal(t, []float64{0, 0, 0, 0}, s.Xr)

	_, err = varbvs.NewState(-1, 2)
	assert.ErrorIs(t, err, varbvs.ErrDimensionMismatch)
}

// TestWarmState checks that Xr is computed and inputs are copied.
func TestWarmState(t *testing.T) {
	pb := correlatedProblem(t)
	alpha := []float64{1, 0.5, 0}
	mu := []float64{2, -1, 7}

	s, err := varbvs.WarmState(pb.X, alpha, mu)
	require.NoError(t, err)
	requireConsistent(t, pb.X, s)
	assert.Equal(t, []float64{2, -0.5, 0}, s.Coefficients())

	// rows 0: 1·2 + 0.5·(-0.5) = 1.75
	assert.InDelta(t, 1.75, s.Xr[0], 1e-15)

	alpha[0] = 0.25
	assert.Equal(t, 1.0, s.Alpha[0], "WarmState must copy alpha")
}

// TestWarmState_Errors exercises every rejection path.
func TestWarmState_Errors(t *testing.T) {
	t.Parallel()

	pb := correlatedProblem(t)
	cases := []struct {
		name      string
		X         matrix.ColumnAccessor
		alpha, mu []float64
		want      error
	}{
		{"nil X", nil, []float64{0, 0, 0}, []float64{0, 0, 0}, varbvs.ErrDimensionMismatch},
		{"short alpha", pb.X, []float64{0, 0}, []float64{0, 0, 0}, varbvs.ErrDimensionMismatch},
		{"short mu", pb.X, []float64{0, 0, 0}, []float64{0}, varbvs.ErrDimensionMismatch},
		{"alpha above one", pb.X, []float64{0, 1.5, 0}, []float64{0, 0, 0}, varbvs.ErrInvalidParameter},
		{"alpha negative", pb.X, []float64{-0.1, 0, 0}, []float64{0, 0, 0}, varbvs.ErrInvalidParameter},
		{"alpha NaN", pb.X, []float64{math.NaN(), 0, 0}, []float64{0, 0, 0}, varbvs.ErrInvalidParameter},
		{"mu Inf", pb.X, []float64{0, 0, 0}, []float64{0, math.Inf(-1), 0}, varbvs.ErrInvalidParameter},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := varbvs.WarmState(tc.X, tc.alpha, tc.mu)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestState_RefitAndDrift corrupts Xr, measures the drift and repairs it.
func TestState_RefitAndDrift(t *testing.T) {
	pb := correlatedProblem(t)
	s := halfState(t, pb.X)
	require.NoError(t, varbvs.UpdatePass(pb.X, pb.prm, pb.stats, s, varbvs.Ascending(3)))

	drift, err := s.Drift(pb.X)
	require.NoError(t, err)
	assert.Less(t, drift, 1e-12)

	s.Xr[2] += 0.5
	drift, err = s.Drift(pb.X)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, drift, 1e-12)

	require.NoError(t, s.Refit(pb.X))
	requireConsistent(t, pb.X, s)

	var nilState *varbvs.State
	_, err = nilState.Drift(pb.X)
	assert.ErrorIs(t, err, varbvs.ErrDimensionMismatch)

	wrong, err := varbvs.NewState(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, wrong.Refit(pb.X), varbvs.ErrDimensionMismatch)
}

// TestState_Clone checks deep-copy independence.
func TestState_Clone(t *testing.T) {
	s := &varbvs.State{Alpha: []float64{0.1}, Mu: []float64{2}, Xr: []float64{3, 4}}
	c := s.Clone()
	require.Equal(t, s, c)

	c.Alpha[0], c.Mu[0], c.Xr[1] = 0.9, -2, 0
	assert.Equal(t, 0.1, s.Alpha[0])
	assert.Equal(t, 2.0, s.Mu[0])
	assert.Equal(t, 4.0, s.Xr[1])

	var nilState *varbvs.State
	assert.Nil(t, nilState.Clone())
}

// TestRepeatLogOdds checks the expansion helper.
func TestRepeatLogOdds(t *testing.T) {
	assert.Equal(t, []float64{-2, -2, -2}, varbvs.RepeatLogOdds(3, -2))
	assert.Empty(t, varbvs.RepeatLogOdds(0, 1))
}
