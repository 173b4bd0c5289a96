// SPDX-License-Identifier: MIT
// Package matrix provides the vector kernels that operate on column views:
// the dot-product and scaled-add primitives of a coordinate sweep, and the
// shape helpers a driver needs around it (X·v, Xᵀy, diag XᵀX).
//
// Notes:
//   - Dot and AddScaled are unchecked hot-path primitives backed by
//     gonum.org/v1/gonum/floats; they panic on length mismatch exactly like
//     the gonum routines do. Validate lengths once, up front.
//   - MatVec, ColumnDots and ColumnSquares are checked entry points that
//     return sentinels wrapped with an operation tag.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec        = "MatVec"
	opColumnDots    = "ColumnDots"
	opColumnSquares = "ColumnSquares"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns Σ a[i]*b[i]. len(a) must equal len(b).
// Complexity: O(len(a)).
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// AddScaled performs dst[i] += alpha*s[i]. len(dst) must equal len(s).
// Complexity: O(len(dst)).
func AddScaled(dst []float64, alpha float64, s []float64) {
	floats.AddScaled(dst, alpha, s)
}

// MatVec computes y = m·x for a column vector x of length Cols().
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == Cols().
//   - Stage 2: accumulate y += x[j]·column_j for j ascending, skipping x[j]==0.
//
// Determinism: fixed j order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m ColumnAccessor, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())

	var j int
	for j = 0; j < m.Cols(); j++ {
		if x[j] == 0 {
			continue // sparse-ish coefficient vectors are the common case
		}
		AddScaled(y, x[j], m.Column(j))
	}

	return y, nil
}

// ColumnDots returns v with v[j] = dot(column_j, y), i.e. Xᵀy.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(y) != Rows()).
// Complexity: Time O(r*c), Space O(c).
func ColumnDots(m ColumnAccessor, y []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnDots, err)
	}
	if err := ValidateVecLen(y, m.Rows()); err != nil {
		return nil, matrixErrorf(opColumnDots, err)
	}
	out := make([]float64, m.Cols())
	for j := range out {
		out[j] = Dot(m.Column(j), y)
	}

	return out, nil
}

// ColumnSquares returns d with d[j] = Σ_i X[i,j]², the diagonal of XᵀX.
// An all-zero column yields d[j] == 0, which is legal.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(c).
func ColumnSquares(m ColumnAccessor) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnSquares, err)
	}
	out := make([]float64, m.Cols())
	var col []float64
	for j := range out {
		col = m.Column(j)
		out[j] = Dot(col, col)
	}

	return out, nil
}
