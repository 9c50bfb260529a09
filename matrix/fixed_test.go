// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvgeom/matrix"
)

func TestFixedSize_InverseAndDetAgreeWithGeneral(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	t.Run("2x2", func(t *testing.T) {
		d := randomDominant(t, rng, 2)
		var m matrix.Mat2
		copy(m[:], d.RawData())

		requireIdentity(t, m.Mul(m.Inverse()).Dense(), 1e-12)
		general, err := matrix.Determinant(d)
		require.NoError(t, err)
		assert.InDelta(t, general, m.Det(), 1e-12)
	})

	t.Run("3x3", func(t *testing.T) {
		d := randomDominant(t, rng, 3)
		m, err := matrix.Mat3FromDense(d)
		require.NoError(t, err)

		requireIdentity(t, m.Mul(m.Inverse()).Dense(), 1e-12)
		general, err := matrix.Determinant(d)
		require.NoError(t, err)
		assert.InDelta(t, general, m.Det(), 1e-10)

		inv, err := matrix.Inverse(d)
		require.NoError(t, err)
		assert.True(t, m.Inverse().Dense().EqualApprox(inv, 1e-12))
	})

	t.Run("4x4", func(t *testing.T) {
		d := randomDominant(t, rng, 4)
		m, err := matrix.Mat4FromDense(d)
		require.NoError(t, err)

		requireIdentity(t, m.Mul(m.Inverse()).Dense(), 1e-12)
		general, err := matrix.Determinant(d)
		require.NoError(t, err)
		assert.InDelta(t, general, m.Det(), 1e-9)

		inv, err := matrix.Inverse(d)
		require.NoError(t, err)
		assert.True(t, m.Inverse().Dense().EqualApprox(inv, 1e-12))
	})
}

func TestFixedSize_SingularInverseIsUnchecked(t *testing.T) {
	m := matrix.NewMat3(1, 2, 3, 2, 4, 6, 0, 0, 1)
	inv := m.Inverse()
	nonFinite := false
	for _, v := range inv {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			nonFinite = true
		}
	}
	assert.True(t, nonFinite)
	assert.True(t, math.IsInf(matrix.NewMat2(1, 1, 1, 1).Inverse()[0], 0))
}

func TestRotation3_OrthonormalUnitDet(t *testing.T) {
	axis := r3.Vector{X: 1, Y: 2, Z: 3}.Normalize()
	r := matrix.Rotation3(axis, 0.7)

	assert.InDelta(t, 1, r.Det(), 1e-12)
	requireIdentity(t, r.Mul(r.Transpose()).Dense(), 1e-12)
	// the axis is fixed
	got := r.MulVec(axis)
	assert.InDelta(t, 0, got.Sub(axis).Norm(), 1e-12)

	viaAxisAngle := matrix.Rotation3AxisAngle(axis.Mul(0.7))
	assert.True(t, viaAxisAngle.Dense().EqualApprox(r.Dense(), 1e-12))
	assert.Equal(t, matrix.Identity3(), matrix.Rotation3AxisAngle(r3.Vector{}))
}

func TestRotation3Quat_MatchesAxisAngle(t *testing.T) {
	axis := r3.Vector{X: 0, Y: 0.6, Z: 0.8}
	angle := 1.1
	s, c := math.Sincos(angle / 2)
	q := quat.Number{Real: c, Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}

	assert.True(t, matrix.Rotation3Quat(q).Dense().EqualApprox(matrix.Rotation3(axis, angle).Dense(), 1e-12))

	// quarter turn about z maps x onto y
	h := math.Sqrt2 / 2
	rz := matrix.Rotation3Quat(quat.Number{Real: h, Kmag: h})
	v := rz.MulVec(r3.Vector{X: 1})
	assert.InDelta(t, 0, v.Sub(r3.Vector{Y: 1}).Norm(), 1e-12)
}

func TestRotation3Euler_Orders(t *testing.T) {
	x, y, z := 0.3, -0.4, 0.9
	rx := matrix.Rotation3(r3.Vector{X: 1}, x)
	ry := matrix.Rotation3(r3.Vector{Y: 1}, y)
	rz := matrix.Rotation3(r3.Vector{Z: 1}, z)

	cases := map[matrix.EulerOrder]matrix.Mat3{
		matrix.EulerXYZ: rz.Mul(ry).Mul(rx),
		matrix.EulerXZY: ry.Mul(rz).Mul(rx),
		matrix.EulerYXZ: rz.Mul(rx).Mul(ry),
		matrix.EulerYZX: rx.Mul(rz).Mul(ry),
		matrix.EulerZXY: ry.Mul(rx).Mul(rz),
		matrix.EulerZYX: rx.Mul(ry).Mul(rz),
	}
	for order, want := range cases {
		got := matrix.Rotation3Euler(x, y, z, order)
		assert.Truef(t, got.Dense().EqualApprox(want.Dense(), 1e-12), "order %d", order)
		assert.InDelta(t, 1, got.Det(), 1e-12)
	}

	buf := captureLog(t)
	fallback := matrix.Rotation3Euler(x, y, z, 999)
	assert.True(t, fallback.Dense().EqualApprox(rx.Mul(rz).Mul(ry).Dense(), 1e-12))
	assert.Contains(t, buf.String(), "invalid rotation order")
}

func TestMat4_HomogeneousTransforms(t *testing.T) {
	tr := matrix.Translation4XYZ(1, 2, 3)
	p := tr.TransformPoint(r3.Vector{X: 1, Y: 1, Z: 1})
	assert.Equal(t, r3.Vector{X: 2, Y: 3, Z: 4}, p)

	// directions ignore translation
	assert.Equal(t, r3.Vector{X: 1}, tr.TransformVector(r3.Vector{X: 1}))

	// perspective divide by w
	proj := matrix.Scale4XYZW(1, 1, 1, 2)
	assert.Equal(t, r3.Vector{X: 1, Y: 2, Z: 3}, proj.TransformPoint(r3.Vector{X: 2, Y: 4, Z: 6}))

	// SRT applies scale, then rotation, then translation
	h := math.Sqrt2 / 2
	srt := matrix.Mat4FromSRT(r3.Vector{X: 2, Y: 2, Z: 2}, quat.Number{Real: h, Kmag: h}, r3.Vector{Z: 5})
	got := srt.TransformPoint(r3.Vector{X: 1})
	assert.InDelta(t, 0, got.Sub(r3.Vector{Y: 2, Z: 5}).Norm(), 1e-12)

	composed := matrix.Translation4(r3.Vector{Z: 5}).Mul(matrix.Rotation4Quat(quat.Number{Real: h, Kmag: h})).Mul(matrix.Scale4(2))
	assert.True(t, composed.Dense().EqualApprox(srt.Dense(), 1e-12))
	assert.Equal(t, matrix.Rotation3Quat(quat.Number{Real: h, Kmag: h}), srt.Sub3().Scale(0.5))
}

func TestMat3_HomogeneousPoint(t *testing.T) {
	m := matrix.NewMat3(
		1, 0, 4,
		0, 1, -1,
		0, 0, 1,
	)
	assert.Equal(t, r2.Point{X: 5, Y: 0}, m.TransformPoint(r2.Point{X: 1, Y: 1}))
	assert.Equal(t, matrix.Identity2(), m.Sub2())

	rot := matrix.Rotation2(math.Pi / 2)
	v := rot.MulVec(r2.Point{X: 1})
	assert.InDelta(t, 0, v.Sub(r2.Point{Y: 1}).Norm(), 1e-12)
	assert.Equal(t, matrix.Scale2XY(3, 3), matrix.Scale2(3))
}

func TestMat3_Constructors(t *testing.T) {
	x, y, z := r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 4, Y: 5, Z: 6}, r3.Vector{X: 7, Y: 8, Z: 9}
	rows := matrix.Mat3FromRows(x, y, z)
	cols := matrix.Mat3FromCols(x, y, z)
	assert.Equal(t, rows.Transpose(), cols)
	assert.Equal(t, y, rows.Row(1))
	assert.Equal(t, y, cols.Col(1))
	assert.Equal(t, 15.0, rows.Trace())

	m, err := matrix.Mat3FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, rows, m)
	_, err = matrix.Mat3FromSlice([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m.Set(0, 0, 10)
	assert.Equal(t, 10.0, m.At(0, 0))
	assert.Equal(t, matrix.Mat4FromMat3(m).Sub3(), m)
	assert.Equal(t, matrix.Scale3XYZ(2, 2, 2), matrix.Scale3(2))
}
