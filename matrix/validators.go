// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One place for the shape/nil/symmetry guards shared by every kernel.
//   - Validators return the bare sentinel tagged with the validator name, so
//     the calling kernel can wrap it once more with its own operation tag.
//
// Determinism & Performance:
//   - Pure, allocation-free checks; the symmetry scan reads the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil rejects a nil Matrix, including a typed-nil *Dense.
func validateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateSameShape assumes both operands are non-nil.
func validateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("validateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// validateBinarySameShape: NotNil(a) → NotNil(b) → SameShape.
func validateBinarySameShape(a, b Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return validateSameShape(a, b)
}

// validateMulCompatible: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func validateMulCompatible(a, b Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("validateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare: NotNil → Rows == Cols.
func validateSquare(m Matrix) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("validateSquare", ErrNonSquare)
	}

	return nil
}

// validateVecLen ensures len(x) == n.
func validateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("validateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateSymmetric checks |A[i,j] - A[j,i]| <= tol over the strict upper triangle.
// Complexity: O(n²).
func validateSymmetric(m *Dense, tol float64) error {
	if m.r != m.c {
		return validatorErrorf("validateSymmetric", ErrNonSquare)
	}
	tol = math.Abs(tol)
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("validateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
