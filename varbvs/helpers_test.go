package varbvs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/varbvs/matrix"
	"github.com/katalvlaran/varbvs/varbvs"
	"github.com/stretchr/testify/require"
)

// problem bundles everything a pass needs.
type problem struct {
	X     *matrix.Dense
	y     []float64
	prm   varbvs.Params
	stats varbvs.Stats
}

// correlatedProblem is a 6×3 design with correlated columns, so that the
// order of updates matters and a pass does not converge in one sweep.
func correlatedProblem(t testing.TB) problem {
	t.Helper()
	X, err := matrix.NewDenseFromRows([][]float64{
		{1, 0.5, -0.2},
		{0.3, 1.2, 0.4},
		{-0.7, 0.1, 0.9},
		{0.2, -0.4, 1.1},
		{1.5, 0.3, -0.6},
		{-0.1, 0.8, 0.2},
	})
	require.NoError(t, err)
	y := []float64{2.1, 1.4, -0.9, 0.3, 2.8, 0.6}
	stats, err := varbvs.NewStats(X, y)
	require.NoError(t, err)

	return problem{
		X:     X,
		y:     y,
		prm:   varbvs.Params{Sigma: 0.5, Sa: 1, LogOdds: varbvs.RepeatLogOdds(3, -1)},
		stats: stats,
	}
}

// randomProblem draws an n×p Gaussian design with a sparse true coefficient
// vector and Gaussian noise, deterministically from seed.
func randomProblem(t testing.TB, n, p int, seed int64) problem {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	X, err := matrix.NewDense(n, p)
	require.NoError(t, err)
	var i, j int
	for j = 0; j < p; j++ {
		col := X.Column(j)
		for i = 0; i < n; i++ {
			col[i] = rng.NormFloat64()
		}
	}
	beta := make([]float64, p)
	for j = 0; j < p; j += 5 {
		beta[j] = 3 * rng.NormFloat64()
	}
	y, err := matrix.MatVec(X, beta)
	require.NoError(t, err)
	for i = range y {
		y[i] += rng.NormFloat64()
	}
	stats, err := varbvs.NewStats(X, y)
	require.NoError(t, err)

	return problem{
		X:     X,
		y:     y,
		prm:   varbvs.Params{Sigma: 1, Sa: 1, LogOdds: varbvs.RepeatLogOdds(p, -2)},
		stats: stats,
	}
}

// halfState is a warm start with alpha = 0.5 and mu = 0.
func halfState(t testing.TB, X *matrix.Dense) *varbvs.State {
	t.Helper()
	s, err := varbvs.WarmState(X, fill(X.Cols(), 0.5), make([]float64, X.Cols()))
	require.NoError(t, err)

	return s
}

// requireConsistent asserts the Xr invariant within a relative tolerance.
func requireConsistent(t testing.TB, X *matrix.Dense, s *varbvs.State) {
	t.Helper()
	drift, err := s.Drift(X)
	require.NoError(t, err)
	scale := 1.0
	for _, v := range s.Xr {
		if v > scale {
			scale = v
		} else if -v > scale {
			scale = -v
		}
	}
	require.LessOrEqualf(t, drift, 1e-10*scale, "Xr drifted from X·(alpha⊙mu) by %g", drift)
}

// fill returns a length-n slice of v.
func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
