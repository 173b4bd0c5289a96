// Package matrix provides column-major dense storage and the column-accessor
// primitives consumed by the varbvs coordinate-update kernel.
//
// The matrix package provides:
//
//   - Dense: an n×p column-major buffer whose column j is a contiguous slice,
//     exposed as a no-copy read view through Column(j).
//   - ColumnAccessor: the narrow read-only interface kernels depend on.
//   - Vector primitives over column views: Dot, AddScaled (gonum/floats).
//   - Shape helpers a driver needs around the kernel: MatVec (X·v),
//     ColumnDots (Xᵀy) and ColumnSquares (diag XᵀX).
//   - FromGonum / ToGonum adapters for gonum.org/v1/gonum/mat matrices.
//
// Column-major layout keeps every per-predictor step of a coordinate sweep on
// one cache-friendly stride-1 slice.
//
// See the examples in this package for usage patterns.
package matrix
