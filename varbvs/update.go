package varbvs

import (
	"math"

	"github.com/katalvlaran/varbvs/matrix"
)

// UpdatePass runs one coordinate-ascent sweep over order, updating s in place.
//
// Algorithm outline, for each j in order:
//  1. s_j     = sa·sigma/(sa·d_j+1)
//  2. r_j     = alpha_j·mu_j (contribution of j already inside Xr)
//  3. partial = xy_j + d_j·r_j − dot(X_j, Xr)
//  4. mu_j    ← (s_j/sigma)·partial
//  5. alpha_j ← Sigmoid(logodds_j + ½·(ln(s_j/(sa·sigma)) + mu_j²/s_j))
//  6. Xr      ← Xr + (alpha_j·mu_j − r_j)·X_j
//
// Adding d_j·r_j back in step 3 cancels j's own share of Xr, so the
// correlation with the leave-one-out residual is obtained without ever
// materializing that residual.
//
// Preconditions (all checked before the first write):
//   - prm.Sigma, prm.Sa finite and > 0                     → ErrInvalidParameter
//   - st.D entries ≥ 0                                     → ErrInvalidParameter
//   - X non-nil; LogOdds, XY, D, Alpha, Mu of len X.Cols(),
//     Xr of len X.Rows()                                   → ErrDimensionMismatch
//   - every order entry in [0, X.Cols())                    → ErrIndexOutOfRange
//
// On entry Xr must already equal X·(Alpha⊙Mu); that is the caller's side of
// the contract (NewState and WarmState provide it, and every pass keeps it).
//
// Postconditions: predictors absent from order are untouched; Xr matches the
// updated Alpha, Mu; the result depends only on the inputs and the order.
//
// Complexity: O(n·len(order)) time, O(1) extra space.
func UpdatePass(X matrix.ColumnAccessor, prm Params, st Stats, s *State, order []int) error {
	if err := validatePass(X, prm, st, s, order); err != nil {
		return err
	}
	sweep(X, prm.Sigma, prm.Sa, prm.LogOdds, st.XY, st.D, s.Alpha, s.Mu, s.Xr, order)

	return nil
}

// CoordinateUpdatePass is the flat-argument form of UpdatePass: alpha, mu and
// Xr are updated in place through the supplied slices.
func CoordinateUpdatePass(
	X matrix.ColumnAccessor,
	sigma, sa float64,
	logodds, xy, d []float64,
	alpha, mu, Xr []float64,
	order []int,
) error {
	return UpdatePass(
		X,
		Params{Sigma: sigma, Sa: sa, LogOdds: logodds},
		Stats{XY: xy, D: d},
		&State{Alpha: alpha, Mu: mu, Xr: Xr},
		order,
	)
}

// sweep is the unchecked kernel. Steps are strictly sequential: step k reads
// the Xr written by step k-1.
func sweep(X matrix.ColumnAccessor, sigma, sa float64, logodds, xy, d, alpha, mu, Xr []float64, order []int) {
	saSigma := sa * sigma

	var (
		col     []float64
		s, r    float64
		partial float64
	)
	for _, j := range order {
		col = X.Column(j)

		s = SlabVariance(sigma, sa, d[j])
		r = alpha[j] * mu[j]
		partial = xy[j] + d[j]*r - matrix.Dot(col, Xr)

		mu[j] = s / sigma * partial
		alpha[j] = Sigmoid(logodds[j] + (math.Log(s/saSigma)+mu[j]*mu[j]/s)/2)

		matrix.AddScaled(Xr, alpha[j]*mu[j]-r, col)
	}
}
