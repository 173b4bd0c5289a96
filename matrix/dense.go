// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a column-major buffer with the explicit index formula j*rows + i,
//     so that column j is the contiguous window data[j*rows : (j+1)*rows].
//   - Guarantee safety at the public surface: At/Set/ColumnAt return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Column: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxColumnAt = "ColumnAt" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete column-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in column-major order (offset = j*r + i).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous column-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix         = (*Dense)(nil)
	_ ColumnAccessor = (*Dense)(nil)
	_ fmt.Stringer   = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using column-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve numeric policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromColumns wraps an existing column-major buffer without copying.
// MAIN DESCRIPTION:
//   - Adopt caller storage laid out as column 0, column 1, ... column cols-1,
//     each of length rows. This is the zero-copy path for data that already
//     lives in column-major form (e.g. exported from a numeric front-end).
//
// Implementation:
//   - Stage 1: validate shape and len(data) == rows*cols.
//   - Stage 2: when the policy is on, scan data once for NaN/±Inf.
//   - Stage 3: return a Dense aliasing data.
//
// Behavior highlights:
//   - Aliasing: later writes to data are visible through the Dense and vice versa.
//
// Errors:
//   - ErrInvalidDimensions, ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(1) (policy off) or O(r*c) (policy on), Space O(1).
func NewDenseFromColumns(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := ValidateVecLen(data, rows*cols); err != nil {
		return nil, fmt.Errorf("NewDenseFromColumns: %w", err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(data); err != nil {
			return nil, fmt.Errorf("NewDenseFromColumns: %w", err)
		}
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFromRows copies a row-major [][]float64 (one inner slice per
// observation) into a fresh column-major Dense.
//
// Errors:
//   - ErrInvalidDimensions if there are no rows or the first row is empty.
//   - ErrDimensionMismatch on ragged input.
//   - ErrNaNInf when the policy is on and a non-finite value is present.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf("FromRows", i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the column-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Column-major offset: j*r + i.
	return col*m.r + row, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Column returns column j as a no-copy view of length Rows().
// MAIN DESCRIPTION:
//   - Hot-path accessor for kernels: one slice expression, no bounds error.
//
// Behavior highlights:
//   - The returned slice aliases the matrix; callers must treat it as read-only.
//   - The capacity is clipped to Rows() so an append can never spill into
//     column j+1.
//   - Panics (slice bounds) when j is outside [0, Cols()); use ColumnAt for a
//     checked variant.
//
// Complexity: O(1).
func (m *Dense) Column(j int) []float64 {
	lo := j * m.r
	hi := lo + m.r

	return m.data[lo:hi:hi]
}

// ColumnAt is the checked form of Column.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
func (m *Dense) ColumnAt(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumnAt, 0, j, ErrOutOfRange)
	}

	return m.Column(j), nil
}

// CopyColumn copies column j into dst, which must have length Rows().
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r).
func (m *Dense) CopyColumn(dst []float64, j int) error {
	col, err := m.ColumnAt(j)
	if err != nil {
		return err
	}
	if err = ValidateVecLen(dst, m.r); err != nil {
		return denseErrorf("CopyColumn", 0, j, err)
	}
	copy(dst, col)

	return nil
}

// RawColumnMajor exposes the backing buffer (len r*c, column-major).
// The slice aliases the matrix; it is intended for adapters and tests.
func (m *Dense) RawColumnMajor() []float64 { return m.data }

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders the matrix row by row for diagnostics.
// Not for hot paths; walks the column-major buffer with stride r.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(fmt.Sprintf("%g", m.data[j*m.r+i]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
