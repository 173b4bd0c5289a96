// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies any gonum mat.Matrix into a fresh column-major Dense.
// The numeric policy from opts applies to every copied value.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (policy on).
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	// Column-outer order writes the destination buffer sequentially.
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if err = m.Set(i, j, a.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return m, nil
}

// ToGonum returns a row-major gonum copy of m, for callers that want
// gonum's factorizations or formatting on the same data.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	out := mat.NewDense(m.r, m.c, nil)
	var i, j int
	for j = 0; j < m.c; j++ {
		col := m.Column(j)
		for i = 0; i < m.r; i++ {
			out.Set(i, j, col[i])
		}
	}

	return out
}
