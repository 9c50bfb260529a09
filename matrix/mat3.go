// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Mat3 is a row-major 3×3 value matrix: linear maps of 3D space and
// homogeneous transforms of the plane.
type Mat3 [9]float64

// EulerOrder selects the sequence of axis rotations in Rotation3Euler.
// The three digits name the axes (1 = X, 2 = Y, 3 = Z) in the order the
// rotations are applied to a vector: 312 rotates about Z, then X, then Y.
type EulerOrder int

// Supported Euler orders.
const (
	EulerXYZ EulerOrder = 123
	EulerXZY EulerOrder = 132
	EulerYXZ EulerOrder = 213
	EulerYZX EulerOrder = 231
	EulerZXY EulerOrder = 312
	EulerZYX EulerOrder = 321
)

// NewMat3 builds a Mat3 from its elements in row order.
func NewMat3(s00, s01, s02, s10, s11, s12, s20, s21, s22 float64) Mat3 {
	return Mat3{s00, s01, s02, s10, s11, s12, s20, s21, s22}
}

// Diag3 returns s·I.
func Diag3(s float64) Mat3 { return Mat3{s, 0, 0, 0, s, 0, 0, 0, s} }

// Identity3 returns I.
func Identity3() Mat3 { return Diag3(1) }

// Mat3FromSlice reads 9 row-major values.
func Mat3FromSlice(v []float64) (Mat3, error) {
	var m Mat3
	if len(v) != 9 {
		return m, ErrDimensionMismatch
	}
	copy(m[:], v)

	return m, nil
}

// Mat3FromRows stacks x, y, z as rows.
func Mat3FromRows(x, y, z r3.Vector) Mat3 {
	return Mat3{x.X, x.Y, x.Z, y.X, y.Y, y.Z, z.X, z.Y, z.Z}
}

// Mat3FromCols places x, y, z as columns.
func Mat3FromCols(x, y, z r3.Vector) Mat3 {
	return Mat3{x.X, y.X, z.X, x.Y, y.Y, z.Y, x.Z, y.Z, z.Z}
}

// Mat3FromDense copies a 3×3 Dense.
func Mat3FromDense(d *Dense) (Mat3, error) {
	var m Mat3
	if d == nil {
		return m, ErrNilMatrix
	}
	if d.r != 3 || d.c != 3 {
		return m, ErrDimensionMismatch
	}
	copy(m[:], d.data)

	return m, nil
}

// Tensor3 returns the outer product u vᵀ.
func Tensor3(u, v r3.Vector) Mat3 {
	return Mat3{
		u.X * v.X, u.X * v.Y, u.X * v.Z,
		u.Y * v.X, u.Y * v.Y, u.Y * v.Z,
		u.Z * v.X, u.Z * v.Y, u.Z * v.Z,
	}
}

// At returns element (i, j). Indices are checked only in lvgeomdebug builds.
func (m Mat3) At(i, j int) float64 {
	assertIndex(i, j, 3)
	return m[i*3+j]
}

// Set assigns element (i, j).
func (m *Mat3) Set(i, j int, v float64) {
	assertIndex(i, j, 3)
	m[i*3+j] = v
}

// Row returns row i.
func (m Mat3) Row(i int) r3.Vector { return r3.Vector{X: m[i*3], Y: m[i*3+1], Z: m[i*3+2]} }

// Col returns column j.
func (m Mat3) Col(j int) r3.Vector { return r3.Vector{X: m[j], Y: m[3+j], Z: m[6+j]} }

func (m Mat3) Add(o Mat3) Mat3 {
	for k := range m {
		m[k] += o[k]
	}
	return m
}

func (m Mat3) Sub(o Mat3) Mat3 {
	for k := range m {
		m[k] -= o[k]
	}
	return m
}

func (m Mat3) Scale(s float64) Mat3 {
	for k := range m {
		m[k] *= s
	}
	return m
}

// Mul returns m × o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		a0, a1, a2 := m[i*3], m[i*3+1], m[i*3+2]
		r[i*3] = a0*o[0] + a1*o[3] + a2*o[6]
		r[i*3+1] = a0*o[1] + a1*o[4] + a2*o[7]
		r[i*3+2] = a0*o[2] + a1*o[5] + a2*o[8]
	}

	return r
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

func (m Mat3) Trace() float64 { return m[0] + m[4] + m[8] }

// Det is the cofactor expansion along the first row.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns adj(m)/det(m). The determinant is not checked: a singular
// m yields ±Inf/NaN entries. Use the general Inverse for a checked path.
func (m Mat3) Inverse() Mat3 {
	inv := Mat3{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
	d := m[0]*inv[0] + m[1]*inv[3] + m[2]*inv[6]

	return inv.Scale(1 / d)
}

// MulVec returns the plain product m·v.
func (m Mat3) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// TransformPoint applies m to p as a homogeneous 2D transform: p is lifted
// to (x, y, 1), multiplied, and divided by the resulting third coordinate.
func (m Mat3) TransformPoint(p r2.Point) r2.Point {
	h := m.MulVec(r3.Vector{X: p.X, Y: p.Y, Z: 1})
	return r2.Point{X: h.X / h.Z, Y: h.Y / h.Z}
}

// Sub2 returns the upper-left 2×2 block.
func (m Mat3) Sub2() Mat2 { return Mat2{m[0], m[1], m[3], m[4]} }

// Dense copies m into a general 3×3 matrix.
func (m Mat3) Dense() *Dense { return &Dense{r: 3, c: 3, data: append([]float64(nil), m[:]...)} }

// Rotation3 returns the rotation by angle radians about axis (Rodrigues):
// R = c·I + s·[axis]× + (1-c)·axis axisᵀ. The axis must be unit length.
func Rotation3(axis r3.Vector, angle float64) Mat3 {
	assertUnit("rotation axis", axis.Norm())
	s, c := math.Sincos(angle)
	cross := Mat3{
		0, -axis.Z, axis.Y,
		axis.Z, 0, -axis.X,
		-axis.Y, axis.X, 0,
	}

	return Diag3(c).Add(cross.Scale(s)).Add(Tensor3(axis, axis).Scale(1 - c))
}

// Rotation3AxisAngle interprets v as axis·angle. A zero v returns I.
func Rotation3AxisAngle(v r3.Vector) Mat3 {
	angle := v.Norm()
	if angle == 0 {
		return Identity3()
	}

	return Rotation3(v.Mul(1/angle), angle)
}

// Rotation3Quat converts the unit quaternion q = Real + Imag·i + Jmag·j + Kmag·k.
func Rotation3Quat(q quat.Number) Mat3 {
	assertUnit("quaternion", quat.Abs(q))
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real

	return Mat3{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}
}

// Rotation3Euler composes rotations of x, y, z radians about the X, Y and Z
// axes in the given order. An unknown order logs an error and falls back to
// rx·rz·ry.
func Rotation3Euler(x, y, z float64, order EulerOrder) Mat3 {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)
	rx := Mat3{1, 0, 0, 0, cx, -sx, 0, sx, cx}
	ry := Mat3{cy, 0, sy, 0, 1, 0, -sy, 0, cy}
	rz := Mat3{cz, -sz, 0, sz, cz, 0, 0, 0, 1}

	switch order {
	case EulerXYZ:
		return rz.Mul(ry).Mul(rx)
	case EulerXZY:
		return ry.Mul(rz).Mul(rx)
	case EulerYXZ:
		return rz.Mul(rx).Mul(ry)
	case EulerYZX:
		return rx.Mul(rz).Mul(ry)
	case EulerZXY:
		return ry.Mul(rx).Mul(rz)
	case EulerZYX:
		return rx.Mul(ry).Mul(rz)
	default:
		logger.Get().Error("invalid rotation order", "order", int(order))
		return rx.Mul(rz).Mul(ry)
	}
}

// Scale3 returns a uniform 3D scale.
func Scale3(s float64) Mat3 { return Diag3(s) }

// Scale3XYZ returns a per-axis 3D scale.
func Scale3XYZ(x, y, z float64) Mat3 { return Mat3{x, 0, 0, 0, y, 0, 0, 0, z} }
