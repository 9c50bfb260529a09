// SPDX-License-Identifier: MIT

// Package matrix - LU decomposition (Crout, partial pivoting with implicit
// row scaling) and forward/back substitution.
//
// Layout of the packed factor: the strict lower triangle holds L (unit
// diagonal implied), the upper triangle including the diagonal holds U.

package matrix

import (
	"fmt"
	"math"
)

// LUFactors is the packed result of LUDecompose.
//   - LU   : packed L\U, n×n.
//   - Perm : Perm[j] is the row exchanged with row j at elimination step j.
//   - Sign : +1 or -1, the parity of the row exchanges (det(A) = Sign*prod(diag U)).
//
// A single LUFactors can be reused for any number of right-hand sides.
type LUFactors struct {
	LU   *Dense
	Perm []int
	Sign float64
}

// LUDecompose factors a square matrix as P·A = L·U.
// Implementation:
//   - Stage 1: record the implicit scale 1/max|A[i,*]| of every row.
//   - Stage 2: Crout sweep by columns; for each column compute the U part
//     above the diagonal, then the candidate pivots on and below it, and pick
//     the one with the largest scaled magnitude.
//   - Stage 3: swap the pivot row into place and divide the sub-column by the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when a row is identically zero (no scale factor) or when a
//     pivot falls below Epsilon. The factors computed so far are still returned.
//
// Complexity: O(n³) time, O(n²) space (input is not mutated).
func LUDecompose(a Matrix) (*LUFactors, error) {
	if err := validateSquare(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	f, err := luDecompose(da)
	if err != nil {
		logSingular(err)
	}

	return f, err
}

// luDecompose is the unlogged kernel shared by LUDecompose and Determinant.
func luDecompose(da *Dense) (*LUFactors, error) {
	n := da.r
	lu := da.clone()
	f := &LUFactors{LU: lu, Perm: make([]int, n), Sign: 1}
	for i := range f.Perm {
		f.Perm[i] = i
	}

	// Stage 1: implicit scaling
	vv := make([]float64, n)
	var big, tmp float64
	for i := 0; i < n; i++ {
		big = 0
		for _, v := range lu.data[i*n : (i+1)*n] {
			if tmp = math.Abs(v); tmp > big {
				big = tmp
			}
		}
		if big < minScale {
			return f, singular(opLU, "zero row", i)
		}
		vv[i] = 1 / big
	}

	// Stage 2/3: Crout sweep
	var (
		i, j, k, imax int
		sum, dum      float64
	)
	for j = 0; j < n; j++ {
		for i = 0; i < j; i++ {
			sum = lu.data[i*n+j]
			for k = 0; k < i; k++ {
				sum -= lu.data[i*n+k] * lu.data[k*n+j]
			}
			lu.data[i*n+j] = sum
		}
		big = 0
		imax = j
		for i = j; i < n; i++ {
			sum = lu.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= lu.data[i*n+k] * lu.data[k*n+j]
			}
			lu.data[i*n+j] = sum
			if dum = vv[i] * math.Abs(sum); dum >= big {
				big = dum
				imax = i
			}
		}
		if j != imax {
			lu.swapRows(imax, j)
			f.Sign = -f.Sign
			vv[imax] = vv[j]
		}
		f.Perm[j] = imax
		if math.Abs(lu.data[j*n+j]) < Epsilon {
			return f, singular(opLU, "pivot below epsilon", j)
		}
		if j != n-1 {
			dum = 1 / lu.data[j*n+j]
			for i = j + 1; i < n; i++ {
				lu.data[i*n+j] *= dum
			}
		}
	}

	return f, nil
}

// LUBackSubstitute solves A·x = b for the A that produced f. b is not modified.
//
// Errors: ErrNilMatrix (nil factors), ErrDimensionMismatch (len(b) != n).
// Complexity: O(n²).
func LUBackSubstitute(f *LUFactors, b []float64) ([]float64, error) {
	if f == nil || f.LU == nil {
		return nil, matrixErrorf(opLUSolve, ErrNilMatrix)
	}
	n := f.LU.r
	if err := validateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	x := make([]float64, n)
	copy(x, b)
	luSolveInPlace(f.LU, f.Perm, x)

	return x, nil
}

// Solve is LUBackSubstitute with f as receiver.
func (f *LUFactors) Solve(b []float64) ([]float64, error) { return LUBackSubstitute(f, b) }

// luSolveInPlace overwrites x with the solution. The first non-zero entry of
// the permuted right-hand side is tracked so leading zeros skip the forward sum.
func luSolveInPlace(lu *Dense, perm []int, x []float64) {
	n := lu.r
	var (
		i, j, ip int
		first    = -1
		sum      float64
	)
	for i = 0; i < n; i++ {
		ip = perm[i]
		sum = x[ip]
		x[ip] = x[i]
		if first >= 0 {
			for j = first; j < i; j++ {
				sum -= lu.data[i*n+j] * x[j]
			}
		} else if sum != 0 {
			first = i
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= lu.data[i*n+j] * x[j]
		}
		x[i] = sum / lu.data[i*n+i]
	}
}

// Det returns the determinant encoded by the factors.
func (f *LUFactors) Det() float64 {
	n := f.LU.r
	d := f.Sign
	for i := 0; i < n; i++ {
		d *= f.LU.data[i*n+i]
	}

	return d
}

// singular tags ErrSingular with the failing step so the log line and the
// returned error carry the same detail.
func singular(op, reason string, at int) error {
	return fmt.Errorf("%s: %s at %d: %w", op, reason, at, ErrSingular)
}

func logSingular(err error) {
	logger.Get().Error("singular matrix", "err", err)
}
