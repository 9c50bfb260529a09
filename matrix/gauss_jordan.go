// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination with full pivoting.
//
// One sweep reduces A to the identity while applying the same row operations
// to B, then undoes the column interchanges on the result. A ends up holding
// A⁻¹ and B holds the solution X of A·X = B.

package matrix

import "math"

// GaussJordan solves A·X = B and returns (A⁻¹, X) as fresh matrices.
// b may be nil, in which case only the inverse is produced and X is nil.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (b.Rows() != n).
//   - ErrSingular when the best remaining pivot is below Epsilon; the partially
//     reduced matrices are returned alongside the error.
//
// Complexity: O(n³ + n²·m) for an n×m right-hand side.
func GaussJordan(a, b Matrix) (inv, x *Dense, err error) {
	if err = validateSquare(a); err != nil {
		return nil, nil, matrixErrorf(opGaussJordan, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opGaussJordan, err)
	}
	inv = da.clone()
	if b != nil {
		var db *Dense
		if db, err = asDense(b); err != nil {
			return nil, nil, matrixErrorf(opGaussJordan, err)
		}
		x = db.clone()
	}
	err = GaussJordanInPlace(inv, x)

	return inv, x, err
}

// GaussJordanInPlace is the aliasing form: a is overwritten with A⁻¹ and b
// (optional) with the solution X.
func GaussJordanInPlace(a, b *Dense) error {
	if err := validateSquare(a); err != nil {
		return matrixErrorf(opGaussJordan, err)
	}
	n := a.r
	if b != nil && b.r != n {
		return matrixErrorf(opGaussJordan, ErrDimensionMismatch)
	}
	if err := gaussJordan(a, b); err != nil {
		logSingular(err)
		return err
	}

	return nil
}

// Inverse computes A⁻¹ of a general square matrix by Gauss-Jordan elimination.
// On a singular input the partial result and ErrSingular are returned and one
// error line is logged.
//
// Complexity: O(n³).
func Inverse(m Matrix) (*Dense, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, _, err := GaussJordan(m, nil)

	return inv, err
}

// gaussJordan is the unchecked kernel.
func gaussJordan(a, b *Dense) error {
	n := a.r
	var (
		ipiv         = make([]int, n)
		indxr, indxc = make([]int, n), make([]int, n)
		i, j, k, l   int
		irow, icol   int
		big, tmp     float64
		pivinv, dum  float64
	)
	for i = 0; i < n; i++ {
		// search the largest remaining element over unused rows and columns
		big = 0
		irow, icol = -1, -1
		for j = 0; j < n; j++ {
			if ipiv[j] == 1 {
				continue
			}
			for k = 0; k < n; k++ {
				if ipiv[k] != 0 {
					continue
				}
				if tmp = math.Abs(a.data[j*n+k]); tmp >= big {
					big, irow, icol = tmp, j, k
				}
			}
		}
		if irow < 0 {
			return singular(opGaussJordan, "no pivot candidate", i)
		}
		ipiv[icol]++

		// move the pivot onto the diagonal
		if irow != icol {
			a.swapRows(irow, icol)
			if b != nil {
				b.swapRows(irow, icol)
			}
		}
		indxr[i], indxc[i] = irow, icol
		if math.Abs(a.data[icol*n+icol]) < Epsilon {
			return singular(opGaussJordan, "pivot below epsilon", i)
		}

		pivinv = 1 / a.data[icol*n+icol]
		a.data[icol*n+icol] = 1
		for l = 0; l < n; l++ {
			a.data[icol*n+l] *= pivinv
		}
		if b != nil {
			for l = 0; l < b.c; l++ {
				b.data[icol*b.c+l] *= pivinv
			}
		}

		// eliminate the pivot column from every other row
		for j = 0; j < n; j++ {
			if j == icol {
				continue
			}
			dum = a.data[j*n+icol]
			if dum == 0 {
				continue
			}
			a.data[j*n+icol] = 0
			for l = 0; l < n; l++ {
				a.data[j*n+l] -= a.data[icol*n+l] * dum
			}
			if b != nil {
				for l = 0; l < b.c; l++ {
					b.data[j*b.c+l] -= b.data[icol*b.c+l] * dum
				}
			}
		}
	}

	// unscramble the column interchanges in reverse order
	for l = n - 1; l >= 0; l-- {
		if indxr[l] != indxc[l] {
			a.swapCols(indxr[l], indxc[l])
		}
	}

	return nil
}
