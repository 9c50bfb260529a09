// SPDX-License-Identifier: MIT

// Package matrix is the numeric core of lvgeom: a general row-major N×M engine
// (Dense) with decomposition-based solvers, plus the fixed-size value types
// Mat2, Mat3 and Mat4 with closed-form fast paths and geometric constructors.
//
// Storage order:
//
//	All matrices are row-major. Element (i, j) of an r×c matrix lives at
//	offset i*c + j. Flat constructors (NewDenseFrom, Mat3FromSlice, ...)
//	read their input in the same order. There is no column-major switch.
//
// What lives where:
//
//	dense.go         - Dense storage, accessors, row/column helpers
//	ops.go           - pure arithmetic (Add, Sub, Mul, Scale, Transpose, MatVec, ...)
//	inplace.go       - compound assignment on *Dense
//	lu.go            - Crout LU with implicit scaling + back substitution
//	gauss_jordan.go  - Gauss-Jordan elimination with full pivoting, general Inverse
//	determinant.go   - LU-based general determinant
//	cholesky.go      - Cholesky decomposition and solves
//	eigen.go         - Jacobi eigen-decomposition of symmetric matrices
//	mat2.go mat3.go mat4.go - fixed-size values and constructors
//
// Failure policy:
//
//	General solvers (Inverse, GaussJordan, LUDecompose, Cholesky) report a
//	numerically singular or non-positive-definite input with ErrSingular /
//	ErrNotPositiveDefinite, log one error line, and still hand back the
//	partial result they had computed. The closed-form Mat2/Mat3/Mat4 Inverse
//	does not look at the determinant at all: a singular input yields ±Inf/NaN.
//
// Precondition checks that are too hot for every call (unit rotation axis,
// unit quaternion) are compiled in only with the lvgeomdebug build tag.
package matrix
