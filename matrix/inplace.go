// SPDX-License-Identifier: MIT

package matrix

// In-place compound operators. The receiver is mutated and returned errors
// leave it untouched.

// AddInPlace performs m += o.
func (m *Dense) AddInPlace(o Matrix) error {
	return m.addSubInPlace(o, +1, opAdd)
}

// SubInPlace performs m -= o.
func (m *Dense) SubInPlace(o Matrix) error {
	return m.addSubInPlace(o, -1, opSub)
}

func (m *Dense) addSubInPlace(o Matrix, sign float64, opTag string) error {
	if err := validateBinarySameShape(m, o); err != nil {
		return matrixErrorf(opTag, err)
	}
	do, err := asDense(o)
	if err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * do.data[idx]
	}

	return nil
}

// MulInPlace performs m = m × o. o must be square with m.Cols() rows so the
// shape of m is preserved.
func (m *Dense) MulInPlace(o Matrix) error {
	if err := validateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMul, err)
	}
	if o.Rows() != o.Cols() {
		return matrixErrorf(opMul, ErrDimensionMismatch)
	}
	do, err := asDense(o)
	if err != nil {
		return matrixErrorf(opMul, err)
	}
	copy(m.data, mulDense(m, do).data)

	return nil
}

// ScaleInPlace performs m *= s.
func (m *Dense) ScaleInPlace(s float64) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}

// DivInPlace performs m /= s.
func (m *Dense) DivInPlace(s float64) { m.ScaleInPlace(1 / s) }

// AddScalarInPlace adds s to every element.
func (m *Dense) AddScalarInPlace(s float64) {
	for idx := range m.data {
		m.data[idx] += s
	}
}

// SubScalarInPlace subtracts s from every element.
func (m *Dense) SubScalarInPlace(s float64) { m.AddScalarInPlace(-s) }
