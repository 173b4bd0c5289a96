// SPDX-License-Identifier: MIT

// Package matrix: the two interfaces consumed by numeric kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// ColumnAccessor is the read-only view a coordinate-update kernel needs:
// the shape, and column j as a contiguous slice of Rows() values.
//
// Contract:
//   - Column(j) for j in [0, Cols()) returns a slice of length Rows() that the
//     caller MUST NOT modify. It is a view, not a copy.
//   - Column(j) for j outside [0, Cols()) may panic; kernels validate indices
//     once up front and then index without re-checking.
//   - Implementations must be safe for concurrent readers.
type ColumnAccessor interface {
	Rows() int
	Cols() int
	Column(j int) []float64
}
