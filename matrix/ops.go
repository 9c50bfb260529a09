// SPDX-License-Identifier: MIT

// Package matrix - pure arithmetic.
//
// Every function in this file allocates a fresh *Dense and never mutates its
// operands. *Dense inputs take a flat-slice fast path; any other Matrix is
// materialized once through asDense (i→j order) and then takes the same path.

package matrix

// addSub is the shared kernel behind Add and Sub: C = A + sign*B.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs the matrix product C = A × B.
// Implementation:
//   - Stage 1: validate both operands and the inner dimension (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - a: r×n left operand.
//   - b: n×c right operand.
//
// Returns:
//   - *Dense: new r×c product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

// mulDense is the unchecked product kernel; shapes must already agree.
func mulDense(da, db *Dense) *Dense {
	rows, inner, cols := da.r, da.c, db.c
	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var (
		i, k, j    int
		av         float64
		offA, offB int
		offR       int
	)
	for i = 0; i < rows; i++ {
		offA = i * inner
		offR = i * cols
		for k = 0; k < inner; k++ {
			av = da.data[offA+k]
			if av == 0 {
				continue
			}
			offB = k * cols
			for j = 0; j < cols; j++ {
				res.data[offR+j] += av * db.data[offB+j]
			}
		}
	}

	return res
}

// Scale returns alpha*M.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Div returns M/s. Division by zero follows IEEE-754 (±Inf / NaN).
func Div(m Matrix, s float64) (*Dense, error) { return Scale(m, 1/s) }

// Neg returns -M.
func Neg(m Matrix) (*Dense, error) { return Scale(m, -1) }

// Transpose returns a new c×r matrix holding Mᵀ.
//
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense{r: dm.c, c: dm.r, data: make([]float64, len(dm.data))}
	for i := 0; i < dm.r; i++ {
		base := i * dm.c
		for j := 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[base+j]
		}
	}

	return res, nil
}

// MatVec computes y = M*x (plain product, no homogeneous lift).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch if len(x) != M.Cols().
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := validateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, dm.r)
	var sum float64
	for i := 0; i < dm.r; i++ {
		row := dm.data[i*dm.c : (i+1)*dm.c]
		sum = 0
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace(m Matrix) (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var t float64
	for i := 0; i < dm.r; i++ {
		t += dm.data[i*dm.c+i]
	}

	return t, nil
}

// Tensor returns the outer product u vᵀ as a len(u)×len(v) matrix.
func Tensor(u, v []float64) (*Dense, error) {
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opTensor, err)
	}
	for i, ui := range u {
		base := i * res.c
		for j, vj := range v {
			res.data[base+j] = ui * vj
		}
	}

	return res, nil
}
