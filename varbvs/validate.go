package varbvs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/varbvs/matrix"
)

// Validate reports whether UpdatePass would accept its arguments, without
// running the sweep. Drivers that fan out many passes use it to reject a
// whole batch before touching any state.
func Validate(X matrix.ColumnAccessor, prm Params, st Stats, s *State, order []int) error {
	return validatePass(X, prm, st, s, order)
}

// validatePass checks every precondition of a pass in a fixed order:
// parameters → design matrix → vector lengths → sufficient statistics → order.
// It allocates nothing and never mutates its arguments.
func validatePass(X matrix.ColumnAccessor, prm Params, st Stats, s *State, order []int) error {
	if err := validateScales(prm.Sigma, prm.Sa); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return passErrorf("X", fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	if s == nil {
		return passErrorf("state", ErrDimensionMismatch)
	}

	n, p := X.Rows(), X.Cols()
	vectors := [...]struct {
		name string
		v    []float64
		want int
	}{
		{"logodds", prm.LogOdds, p},
		{"xy", st.XY, p},
		{"d", st.D, p},
		{"alpha", s.Alpha, p},
		{"mu", s.Mu, p},
		{"Xr", s.Xr, n},
	}
	for _, vec := range vectors {
		if len(vec.v) != vec.want {
			return passErrorf(vec.name, fmt.Errorf("%w: len %d, want %d", ErrDimensionMismatch, len(vec.v), vec.want))
		}
	}

	for j, dj := range st.D {
		if dj < 0 || math.IsNaN(dj) {
			return passErrorf(fmt.Sprintf("d[%d]", j), ErrInvalidParameter)
		}
	}

	return ValidateOrder(order, p)
}

// validateScales rejects sigma/sa that are not finite and strictly positive.
// NaN fails the comparison and is rejected with the rest.
func validateScales(sigma, sa float64) error {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return passErrorf(fmt.Sprintf("sigma=%g", sigma), ErrInvalidParameter)
	}
	if !(sa > 0) || math.IsInf(sa, 0) {
		return passErrorf(fmt.Sprintf("sa=%g", sa), ErrInvalidParameter)
	}

	return nil
}

// ValidateOrder reports ErrIndexOutOfRange for the first entry of order that
// lies outside [0, p). An empty order is valid and makes a pass a no-op.
// Complexity: O(len(order)).
func ValidateOrder(order []int, p int) error {
	for k, j := range order {
		if j < 0 || j >= p {
			return passErrorf(fmt.Sprintf("order[%d]=%d", k, j), ErrIndexOutOfRange)
		}
	}

	return nil
}
