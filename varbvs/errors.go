package varbvs

import (
	"errors"
	"fmt"
)

// Sentinel errors. All of them are contract violations detected at pass entry,
// before any state is mutated; none is transient, so retrying is pointless.
var (
	// ErrInvalidParameter indicates sigma or sa is not a finite positive number,
	// a negative sum of squares in d, or an inclusion probability outside [0,1]
	// handed to WarmState.
	ErrInvalidParameter = errors.New("varbvs: invalid parameter")

	// ErrDimensionMismatch indicates a vector whose length disagrees with the
	// design matrix (p for xy, d, alpha, mu, logodds; n for Xr), or a nil
	// matrix/state.
	ErrDimensionMismatch = errors.New("varbvs: dimension mismatch")

	// ErrIndexOutOfRange indicates an update order entry outside [0, p).
	ErrIndexOutOfRange = errors.New("varbvs: update index out of range")
)

// passErrorf tags err with the offending argument name, keeping errors.Is intact.
func passErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
