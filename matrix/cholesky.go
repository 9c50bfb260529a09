// SPDX-License-Identifier: MIT

package matrix

import "math"

// Cholesky computes the lower-triangular L with A = L·Lᵀ.
//
// The positive-definiteness check is the classic per-column one: the input is
// rejected when A is not exactly symmetric or when A(j,j) minus the
// accumulated squares of row j is not strictly positive. This is not a full
// SPD certificate. On failure L still holds the sweep's partial result (the
// offending diagonal is clamped to 0) and ErrNotPositiveDefinite is returned.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPositiveDefinite.
// Complexity: O(n³/3).
func Cholesky(a Matrix) (*Dense, error) {
	if err := validateSquare(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := da.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}
	spd := true
	var (
		i, j, k int
		s, d    float64
	)
	for j = 0; j < n; j++ {
		d = 0
		for k = 0; k < j; k++ {
			s = 0
			for i = 0; i < k; i++ {
				s += l.data[k*n+i] * l.data[j*n+i]
			}
			s = (da.data[j*n+k] - s) / l.data[k*n+k]
			l.data[j*n+k] = s
			d += s * s
			spd = spd && da.data[k*n+j] == da.data[j*n+k]
		}
		d = da.data[j*n+j] - d
		spd = spd && d > 0
		l.data[j*n+j] = math.Sqrt(math.Max(d, 0))
	}
	if !spd {
		logger.Get().Error("matrix is not positive definite", "op", opCholesky, "n", n)
		return l, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
	}

	return l, nil
}

// CholeskySolve solves A·x = b given the Cholesky factor L of A:
// forward substitution L·y = b followed by back substitution Lᵀ·x = y.
//
// Complexity: O(n²).
func CholeskySolve(l *Dense, b []float64) ([]float64, error) {
	if err := validateSquare(l); err != nil {
		return nil, matrixErrorf(opCholSolve, err)
	}
	if err := validateVecLen(b, l.r); err != nil {
		return nil, matrixErrorf(opCholSolve, err)
	}
	x := make([]float64, l.r)
	copy(x, b)
	cholSolveInPlace(l, x, 1, 0)

	return x, nil
}

// CholeskySolveMatrix solves A·X = B column by column for every column of B.
//
// Complexity: O(n²·m).
func CholeskySolveMatrix(l *Dense, b Matrix) (*Dense, error) {
	if err := validateSquare(l); err != nil {
		return nil, matrixErrorf(opCholSolve, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opCholSolve, err)
	}
	if b.Rows() != l.r {
		return nil, matrixErrorf(opCholSolve, ErrDimensionMismatch)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opCholSolve, err)
	}
	x := db.clone()
	for col := 0; col < x.c; col++ {
		cholSolveInPlace(l, x.data, x.c, col)
	}

	return x, nil
}

// cholSolveInPlace solves in place on the strided column v[off + i*stride].
func cholSolveInPlace(l *Dense, v []float64, stride, off int) {
	n := l.r
	var (
		i, k int
		s    float64
	)
	for k = 0; k < n; k++ {
		s = v[off+k*stride]
		for i = 0; i < k; i++ {
			s -= v[off+i*stride] * l.data[k*n+i]
		}
		v[off+k*stride] = s / l.data[k*n+k]
	}
	for k = n - 1; k >= 0; k-- {
		s = v[off+k*stride]
		for i = k + 1; i < n; i++ {
			s -= v[off+i*stride] * l.data[i*n+k]
		}
		v[off+k*stride] = s / l.data[k*n+k]
	}
}
