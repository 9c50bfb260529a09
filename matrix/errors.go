// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with the operation
// tag through matrixErrorf) and tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not (within eps).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a pivot (or a row scale) falls below the
	// numerical epsilon in LU, Gauss-Jordan or the general Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal term of the
	// sweep becomes non-positive or the input is not symmetric.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not symmetric positive definite")

	// ErrEigenFailed indicates that the Jacobi sweep did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags for uniform error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opTensor      = "Tensor"
	opTrace       = "Trace"
	opEigen       = "EigenSym"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opLU          = "LUDecompose"
	opLUSolve     = "LUBackSubstitute"
	opGaussJordan = "GaussJordan"
	opCholesky    = "Cholesky"
	opCholSolve   = "CholeskySolve"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches Dense method context and coordinates to a sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
