// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/golang/geo/r2"
)

// Mat2 is a row-major 2×2 value matrix.
type Mat2 [4]float64

// NewMat2 builds a Mat2 from its elements in row order.
func NewMat2(s00, s01, s10, s11 float64) Mat2 { return Mat2{s00, s01, s10, s11} }

// Diag2 returns s·I.
func Diag2(s float64) Mat2 { return Mat2{s, 0, 0, s} }

// Identity2 returns I.
func Identity2() Mat2 { return Diag2(1) }

// At returns element (i, j). Indices are checked only in lvgeomdebug builds.
func (m Mat2) At(i, j int) float64 {
	assertIndex(i, j, 2)
	return m[i*2+j]
}

// Set assigns element (i, j).
func (m *Mat2) Set(i, j int, v float64) {
	assertIndex(i, j, 2)
	m[i*2+j] = v
}

func (m Mat2) Add(o Mat2) Mat2 { return Mat2{m[0] + o[0], m[1] + o[1], m[2] + o[2], m[3] + o[3]} }
func (m Mat2) Sub(o Mat2) Mat2 { return Mat2{m[0] - o[0], m[1] - o[1], m[2] - o[2], m[3] - o[3]} }
func (m Mat2) Scale(s float64) Mat2 {
	return Mat2{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

// Mul returns m × o.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

func (m Mat2) Transpose() Mat2 { return Mat2{m[0], m[2], m[1], m[3]} }
func (m Mat2) Trace() float64  { return m[0] + m[3] }
func (m Mat2) Det() float64    { return m[0]*m[3] - m[1]*m[2] }

// Inverse returns the closed-form inverse. The determinant is not checked:
// a singular m yields ±Inf/NaN entries.
func (m Mat2) Inverse() Mat2 {
	d := m.Det()
	return Mat2{m[3] / d, -m[1] / d, -m[2] / d, m[0] / d}
}

// MulVec returns the plain product m·v.
func (m Mat2) MulVec(v r2.Point) r2.Point {
	return r2.Point{X: m[0]*v.X + m[1]*v.Y, Y: m[2]*v.X + m[3]*v.Y}
}

// Dense copies m into a general 2×2 matrix.
func (m Mat2) Dense() *Dense { return &Dense{r: 2, c: 2, data: append([]float64(nil), m[:]...)} }

// Rotation2 returns the counter-clockwise rotation by angle radians.
func Rotation2(angle float64) Mat2 {
	s, c := math.Sincos(angle)
	return Mat2{c, -s, s, c}
}

// Scale2 returns a uniform 2D scale.
func Scale2(s float64) Mat2 { return Diag2(s) }

// Scale2XY returns a per-axis 2D scale.
func Scale2XY(x, y float64) Mat2 { return Mat2{x, 0, 0, y} }
