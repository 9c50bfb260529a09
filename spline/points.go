// SPDX-License-Identifier: MIT

package spline

import (
	"math"
	"slices"

	"github.com/golang/geo/r3"
	"golang.org/x/exp/constraints"
)

// Vec is an N-dimensional point backed by a slice.
type Vec[T constraints.Float] []T

// Dim implements Point.
func (v Vec[T]) Dim() int { return len(v) }

// At implements Point.
func (v Vec[T]) At(i int) T { return v[i] }

// Distance implements Point; o must have the same length.
func (v Vec[T]) Distance(o Vec[T]) T {
	var sum float64
	for i := range v {
		d := float64(v[i] - o[i])
		sum += d * d
	}
	return T(math.Sqrt(sum))
}

// With implements Point.
func (Vec[T]) With(coords []T) Vec[T] { return slices.Clone(coords) }

// Vec3 adapts r3.Vector.
type Vec3 r3.Vector

// Dim implements Point.
func (Vec3) Dim() int { return 3 }

// At implements Point.
func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("spline: Vec3 coordinate out of range")
}

// Distance implements Point.
func (v Vec3) Distance(o Vec3) float64 { return r3.Vector(v).Distance(r3.Vector(o)) }

// With implements Point.
func (Vec3) With(coords []float64) Vec3 { return Vec3{X: coords[0], Y: coords[1], Z: coords[2]} }

// Vector returns v as an r3.Vector.
func (v Vec3) Vector() r3.Vector { return r3.Vector(v) }
