// SPDX-License-Identifier: MIT

package matrix

// Determinant computes det(A) for a square matrix through the LU kernel:
// the product of the packed diagonal times the row-swap parity.
//
// A singular input (LU failure) has determinant 0; that is a value, not an
// error, and nothing is logged.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func Determinant(m Matrix) (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	da, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	f, err := luDecompose(da)
	if err != nil {
		return 0, nil
	}

	return f.Det(), nil
}
