package varbvs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/varbvs/matrix"
)

// NewStats computes the sufficient statistics of (X, y):
// XY = Xᵀy and D = diag(XᵀX).
//
// Errors: ErrDimensionMismatch when X is nil or len(y) != X.Rows().
// Complexity: O(n·p).
func NewStats(X matrix.ColumnAccessor, y []float64) (Stats, error) {
	xy, err := matrix.ColumnDots(X, y)
	if err != nil {
		return Stats{}, passErrorf("NewStats", fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	d, err := matrix.ColumnSquares(X)
	if err != nil {
		return Stats{}, passErrorf("NewStats", fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}

	return Stats{XY: xy, D: d}, nil
}

// RepeatLogOdds returns a length-p log-odds vector filled with v, the usual
// way to expand a single prior log-odds to every predictor.
func RepeatLogOdds(p int, v float64) []float64 {
	out := make([]float64, p)
	for j := range out {
		out[j] = v
	}

	return out
}

// NewState returns the all-zero posterior (alpha = mu = 0, hence Xr = 0),
// which trivially satisfies the Xr invariant.
// Errors: ErrDimensionMismatch on negative sizes.
func NewState(n, p int) (*State, error) {
	if n < 0 || p < 0 {
		return nil, passErrorf(fmt.Sprintf("NewState(%d,%d)", n, p), ErrDimensionMismatch)
	}

	return &State{
		Alpha: make([]float64, p),
		Mu:    make([]float64, p),
		Xr:    make([]float64, n),
	}, nil
}

// WarmState builds a State from given alpha and mu (both copied) and computes
// Xr = X·(alpha⊙mu), so the result is immediately valid input for UpdatePass.
//
// Errors:
//   - ErrDimensionMismatch when X is nil or len(alpha), len(mu) != X.Cols().
//   - ErrInvalidParameter when an alpha entry is outside [0,1] or mu is not finite.
func WarmState(X matrix.ColumnAccessor, alpha, mu []float64) (*State, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, passErrorf("WarmState", fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	p := X.Cols()
	if len(alpha) != p || len(mu) != p {
		return nil, passErrorf("WarmState", ErrDimensionMismatch)
	}
	for j := range alpha {
		if !(alpha[j] >= 0 && alpha[j] <= 1) {
			return nil, passErrorf(fmt.Sprintf("WarmState: alpha[%d]=%g", j, alpha[j]), ErrInvalidParameter)
		}
		if math.IsNaN(mu[j]) || math.IsInf(mu[j], 0) {
			return nil, passErrorf(fmt.Sprintf("WarmState: mu[%d]=%g", j, mu[j]), ErrInvalidParameter)
		}
	}

	s := &State{
		Alpha: append([]float64(nil), alpha...),
		Mu:    append([]float64(nil), mu...),
		Xr:    make([]float64, X.Rows()),
	}
	if err := s.Refit(X); err != nil {
		return nil, err
	}

	return s, nil
}

// Clone returns a deep copy of s. A nil receiver yields nil.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	return &State{
		Alpha: append([]float64(nil), s.Alpha...),
		Mu:    append([]float64(nil), s.Mu...),
		Xr:    append([]float64(nil), s.Xr...),
	}
}

// Coefficients returns alpha⊙mu, the posterior mean of the regression
// coefficients under the variational approximation.
func (s *State) Coefficients() []float64 {
	out := make([]float64, len(s.Alpha))
	for j := range out {
		out[j] = s.Alpha[j] * s.Mu[j]
	}

	return out
}

// Refit recomputes Xr = X·(alpha⊙mu) from scratch in O(n·p). Use it to
// re-establish the invariant after editing Alpha or Mu by hand.
// Errors: ErrDimensionMismatch.
func (s *State) Refit(X matrix.ColumnAccessor) error {
	xr, err := s.fitted(X)
	if err != nil {
		return err
	}
	copy(s.Xr, xr)

	return nil
}

// Drift returns max_i |Xr[i] − (X·(alpha⊙mu))[i]|, the accumulated rounding
// error of the incremental Xr updates. It does not modify s.
// Errors: ErrDimensionMismatch.
func (s *State) Drift(X matrix.ColumnAccessor) (float64, error) {
	xr, err := s.fitted(X)
	if err != nil {
		return 0, err
	}
	var worst float64
	for i := range xr {
		worst = math.Max(worst, math.Abs(xr[i]-s.Xr[i]))
	}

	return worst, nil
}

// fitted computes X·(alpha⊙mu) after checking every length against X.
func (s *State) fitted(X matrix.ColumnAccessor) ([]float64, error) {
	if s == nil {
		return nil, passErrorf("state", ErrDimensionMismatch)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, passErrorf("X", fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	if len(s.Alpha) != X.Cols() || len(s.Mu) != X.Cols() || len(s.Xr) != X.Rows() {
		return nil, passErrorf("state", ErrDimensionMismatch)
	}
	xr, err := matrix.MatVec(X, s.Coefficients())
	if err != nil {
		return nil, passErrorf("state", fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}

	return xr, nil
}
