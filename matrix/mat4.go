// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Mat4 is a row-major 4×4 value matrix, the affine/projective transform of 3D space.
// The translation of an affine Mat4 sits in the last column.
type Mat4 [16]float64

// Vec4 is a homogeneous 3D coordinate (x, y, z, w).
type Vec4 [4]float64

// NewVec4 lifts v with the given w.
func NewVec4(v r3.Vector, w float64) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// Vec3 drops w without dividing.
func (v Vec4) Vec3() r3.Vector { return r3.Vector{X: v[0], Y: v[1], Z: v[2]} }

// Dot returns the 4D dot product.
func (v Vec4) Dot(o Vec4) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3] }

// NewMat4 builds a Mat4 from its 16 elements in row order.
func NewMat4(v ...float64) (Mat4, error) {
	var m Mat4
	if len(v) != 16 {
		return m, ErrDimensionMismatch
	}
	copy(m[:], v)

	return m, nil
}

// Diag4 returns s·I.
func Diag4(s float64) Mat4 {
	return Mat4{s, 0, 0, 0, 0, s, 0, 0, 0, 0, s, 0, 0, 0, 0, s}
}

// Identity4 returns I.
func Identity4() Mat4 { return Diag4(1) }

// Mat4FromRows stacks four homogeneous rows.
func Mat4FromRows(x, y, z, w Vec4) Mat4 {
	var m Mat4
	for k, row := range [4]Vec4{x, y, z, w} {
		copy(m[k*4:], row[:])
	}

	return m
}

// Mat4FromCols places four homogeneous columns.
func Mat4FromCols(x, y, z, w Vec4) Mat4 { return Mat4FromRows(x, y, z, w).Transpose() }

// Mat4FromMat3 embeds r as the linear block of an affine transform with no translation.
func Mat4FromMat3(r Mat3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	}
}

// Mat4FromDense copies a 4×4 Dense.
func Mat4FromDense(d *Dense) (Mat4, error) {
	var m Mat4
	if d == nil {
		return m, ErrNilMatrix
	}
	if d.r != 4 || d.c != 4 {
		return m, ErrDimensionMismatch
	}
	copy(m[:], d.data)

	return m, nil
}

// Mat4FromSRT composes scale, rotation and translation: the result applies
// s first, then q, then t.
func Mat4FromSRT(s r3.Vector, q quat.Number, t r3.Vector) Mat4 {
	r := Rotation3Quat(q)
	return Mat4{
		r[0] * s.X, r[1] * s.Y, r[2] * s.Z, t.X,
		r[3] * s.X, r[4] * s.Y, r[5] * s.Z, t.Y,
		r[6] * s.X, r[7] * s.Y, r[8] * s.Z, t.Z,
		0, 0, 0, 1,
	}
}

// At returns element (i, j). Indices are checked only in lvgeomdebug builds.
func (m Mat4) At(i, j int) float64 {
	assertIndex(i, j, 4)
	return m[i*4+j]
}

// Set assigns element (i, j).
func (m *Mat4) Set(i, j int, v float64) {
	assertIndex(i, j, 4)
	m[i*4+j] = v
}

func (m Mat4) Row(i int) Vec4 { return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]} }
func (m Mat4) Col(j int) Vec4 { return Vec4{m[j], m[4+j], m[8+j], m[12+j]} }

func (m Mat4) Add(o Mat4) Mat4 {
	for k := range m {
		m[k] += o[k]
	}
	return m
}

func (m Mat4) Sub(o Mat4) Mat4 {
	for k := range m {
		m[k] -= o[k]
	}
	return m
}

func (m Mat4) Scale(s float64) Mat4 {
	for k := range m {
		m[k] *= s
	}
	return m
}

// Mul returns m × o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		a0, a1, a2, a3 := m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]
		for j := 0; j < 4; j++ {
			r[i*4+j] = a0*o[j] + a1*o[4+j] + a2*o[8+j] + a3*o[12+j]
		}
	}

	return r
}

func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[j*4+i] = m[i*4+j]
		}
	}
	return t
}

func (m Mat4) Trace() float64 { return m[0] + m[5] + m[10] + m[15] }

// minors2 returns the twelve 2×2 minors built from rows (0,1) and rows (2,3)
// that both Det and Inverse expand over.
func (m Mat4) minors2() (a, b [6]float64) {
	a = [6]float64{
		m[0]*m[5] - m[1]*m[4],
		m[0]*m[6] - m[2]*m[4],
		m[0]*m[7] - m[3]*m[4],
		m[1]*m[6] - m[2]*m[5],
		m[1]*m[7] - m[3]*m[5],
		m[2]*m[7] - m[3]*m[6],
	}
	b = [6]float64{
		m[8]*m[13] - m[9]*m[12],
		m[8]*m[14] - m[10]*m[12],
		m[8]*m[15] - m[11]*m[12],
		m[9]*m[14] - m[10]*m[13],
		m[9]*m[15] - m[11]*m[13],
		m[10]*m[15] - m[11]*m[14],
	}

	return a, b
}

// Det is the Laplace expansion over complementary 2×2 minors.
func (m Mat4) Det() float64 {
	a, b := m.minors2()
	return a[0]*b[5] - a[1]*b[4] + a[2]*b[3] + a[3]*b[2] - a[4]*b[1] + a[5]*b[0]
}

// Inverse returns adj(m)/det(m). The determinant is not checked: a singular
// m yields ±Inf/NaN entries.
func (m Mat4) Inverse() Mat4 {
	a, b := m.minors2()
	det := a[0]*b[5] - a[1]*b[4] + a[2]*b[3] + a[3]*b[2] - a[4]*b[1] + a[5]*b[0]
	inv := Mat4{
		+m[5]*b[5] - m[6]*b[4] + m[7]*b[3],
		-m[1]*b[5] + m[2]*b[4] - m[3]*b[3],
		+m[13]*a[5] - m[14]*a[4] + m[15]*a[3],
		-m[9]*a[5] + m[10]*a[4] - m[11]*a[3],

		-m[4]*b[5] + m[6]*b[2] - m[7]*b[1],
		+m[0]*b[5] - m[2]*b[2] + m[3]*b[1],
		-m[12]*a[5] + m[14]*a[2] - m[15]*a[1],
		+m[8]*a[5] - m[10]*a[2] + m[11]*a[1],

		+m[4]*b[4] - m[5]*b[2] + m[7]*b[0],
		-m[0]*b[4] + m[1]*b[2] - m[3]*b[0],
		+m[12]*a[4] - m[13]*a[2] + m[15]*a[0],
		-m[8]*a[4] + m[9]*a[2] - m[11]*a[0],

		-m[4]*b[3] + m[5]*b[1] - m[6]*b[0],
		+m[0]*b[3] - m[1]*b[1] + m[2]*b[0],
		-m[12]*a[3] + m[13]*a[1] - m[14]*a[0],
		+m[8]*a[3] - m[9]*a[1] + m[10]*a[0],
	}

	return inv.Scale(1 / det)
}

// MulVec returns the plain product m·v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v), m.Row(3).Dot(v)}
}

// TransformPoint applies m to p as a homogeneous transform: (x, y, z, 1) is
// multiplied and the result divided by its w.
func (m Mat4) TransformPoint(p r3.Vector) r3.Vector {
	h := m.MulVec(NewVec4(p, 1))
	return h.Vec3().Mul(1 / h[3])
}

// TransformVector applies the linear part of m to a direction (w = 0).
func (m Mat4) TransformVector(v r3.Vector) r3.Vector {
	return m.MulVec(NewVec4(v, 0)).Vec3()
}

// Sub3 returns the upper-left 3×3 block.
func (m Mat4) Sub3() Mat3 {
	return Mat3{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}
}

// Dense copies m into a general 4×4 matrix.
func (m Mat4) Dense() *Dense { return &Dense{r: 4, c: 4, data: append([]float64(nil), m[:]...)} }

// Rotation4 embeds Rotation3(axis, angle).
func Rotation4(axis r3.Vector, angle float64) Mat4 { return Mat4FromMat3(Rotation3(axis, angle)) }

// Rotation4AxisAngle embeds Rotation3AxisAngle(v).
func Rotation4AxisAngle(v r3.Vector) Mat4 { return Mat4FromMat3(Rotation3AxisAngle(v)) }

// Rotation4Quat embeds Rotation3Quat(q).
func Rotation4Quat(q quat.Number) Mat4 { return Mat4FromMat3(Rotation3Quat(q)) }

// Rotation4Euler embeds Rotation3Euler with the same order rules.
func Rotation4Euler(x, y, z float64, order EulerOrder) Mat4 {
	return Mat4FromMat3(Rotation3Euler(x, y, z, order))
}

// Scale4 returns a uniform 3D scale with w kept at 1.
func Scale4(s float64) Mat4 { return Mat4FromMat3(Diag3(s)) }

// Scale4XYZW scales all four homogeneous coordinates.
func Scale4XYZW(x, y, z, w float64) Mat4 {
	return Mat4{x, 0, 0, 0, 0, y, 0, 0, 0, 0, z, 0, 0, 0, 0, w}
}

// Translation4 returns the affine translation by t.
func Translation4(t r3.Vector) Mat4 { return Translation4XYZ(t.X, t.Y, t.Z) }

// Translation4XYZ returns the affine translation by (x, y, z).
func Translation4XYZ(x, y, z float64) Mat4 {
	return Mat4{1, 0, 0, x, 0, 1, 0, y, 0, 0, 1, z, 0, 0, 0, 1}
}
