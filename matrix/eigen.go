// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"math"
	"slices"
)

// Default Jacobi parameters used by callers that have no reason to tune them.
const (
	DefaultEigenTol     = 1e-12
	DefaultEigenMaxIter = 100
)

// EigenSym computes the eigen-decomposition of a symmetric matrix by cyclic
// Jacobi rotations: A = Q·diag(λ)·Qᵀ.
// Implementation:
//   - Stage 1: validate squareness and symmetry within tol; Q starts as I.
//   - Stage 2: repeatedly pick the largest off-diagonal |A[p,q]|, rotate it to
//     zero and accumulate the rotation into Q.
//   - Stage 3: stop once max|A[p,q]| < tol·max(1, ‖A‖_F), then sort the
//     eigenvalues ascending and permute Q's columns to match.
//
// Returns:
//   - values : eigenvalues ascending.
//   - vectors: n×n, column k is the unit eigenvector of values[k].
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed (no convergence in maxIter rotations).
// Complexity: O(maxIter·n) per rotation sweep plus O(n²) pivot search per rotation.
func EigenSym(m Matrix, tol float64, maxIter int) (values []float64, vectors *Dense, err error) {
	if err = validateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err = validateSymmetric(dm, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := dm.r
	a := dm.clone()
	q := &Dense{r: n, c: n, data: make([]float64, n*n)}
	q.LoadIdentity(1)

	var frob float64
	for _, v := range a.data {
		frob += v * v
	}
	stop := math.Abs(tol) * math.Max(1, math.Sqrt(frob))

	var (
		iter, i, j   int
		p, r         int
		maxOff, off  float64
		app, arr     float64
		apr          float64
		aip, air     float64
		theta, t     float64
		c, s         float64
		newIP, newIR float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(a.data[i*n+j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < stop || maxOff == 0 {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIR, newIR
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			aip = q.data[i*n+p]
			air = q.data[i*n+r]
			q.data[i*n+p] = c*aip - s*air
			q.data[i*n+r] = s*aip + c*air
		}
	}

	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			maxOff = math.Max(maxOff, math.Abs(a.data[i*n+j]))
		}
	}
	if maxOff > 0 && maxOff >= stop {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return cmp.Compare(a.data[x*n+x], a.data[y*n+y])
	})
	values = make([]float64, n)
	vectors = &Dense{r: n, c: n, data: make([]float64, n*n)}
	for k, src := range order {
		values[k] = a.data[src*n+src]
		for i = 0; i < n; i++ {
			vectors.data[i*n+k] = q.data[i*n+src]
		}
	}

	return values, vectors, nil
}
