// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Curve interpolates a sequence of N-dimensional points with one spline per
// coordinate. The zero value is a natural cubic curve without points.
type Curve[P Point[P, T], T constraints.Float] struct {
	left, right           BoundaryType
	leftValue, rightValue T

	dim     int
	largest T
	coords  []*Interpolator[T]
}

// SetBoundary sets the end conditions of every coordinate spline.
// It panics once points have been set.
func (c *Curve[P, T]) SetBoundary(left BoundaryType, leftValue T, right BoundaryType, rightValue T) {
	if c.coords != nil {
		panic("spline: SetBoundary called after SetPoints")
	}
	c.left, c.leftValue = left, leftValue
	c.right, c.rightValue = right, rightValue
}

// SetPointsWithParams fits the curve through points at the given parameters.
// Samples whose parameter does not exceed the last kept one are discarded
// with a warning.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrDimensionMismatch.
func (c *Curve[P, T]) SetPointsWithParams(params []T, points []P, cubic bool) error {
	if len(params) != len(points) {
		return fmt.Errorf("%w: %d parameters, %d points", ErrLengthMismatch, len(params), len(points))
	}
	if len(points) == 0 {
		return ErrTooFewPoints
	}
	dim := points[0].Dim()
	keptT := make([]T, 0, len(params))
	kept := make([]P, 0, len(points))
	for i, t := range params {
		if points[i].Dim() != dim {
			return fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, points[i].Dim(), dim)
		}
		if i == 0 || t > keptT[len(keptT)-1] {
			keptT = append(keptT, t)
			kept = append(kept, points[i])
		}
	}
	if dropped := len(points) - len(kept); dropped > 0 {
		logger.Get().Warn("samples discarded, parameters must increase monotonically", "discarded", dropped, "kept", len(kept))
	}
	if len(kept) < 2 {
		return ErrTooFewPoints
	}

	values := make([]T, len(kept))
	coords := make([]*Interpolator[T], dim)
	for j := range coords {
		for i, p := range kept {
			values[i] = p.At(j)
		}
		s := &Interpolator[T]{}
		s.SetBoundary(c.left, c.leftValue, c.right, c.rightValue, cubic)
		if err := s.SetData(keptT, values); err != nil {
			return err
		}
		coords[j] = s
	}
	c.dim, c.largest, c.coords = dim, keptT[len(keptT)-1], coords

	return nil
}

// SetPoints fits the curve parameterized by accumulated chord length.
//
// Errors: as SetPointsWithParams.
func (c *Curve[P, T]) SetPoints(points []P, cubic bool) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	params := make([]T, len(points))
	for i := 1; i < len(points); i++ {
		params[i] = params[i-1] + points[i-1].Distance(points[i])
	}

	return c.SetPointsWithParams(params, points, cubic)
}

// Eval returns the curve point at u, where u in [0, 1] spans the parameter
// range from 0 to the largest parameter. A curve without points yields the
// zero point.
func (c *Curve[P, T]) Eval(u T) P {
	var zero P
	if c.coords == nil {
		return zero
	}
	t := u * c.largest
	out := make([]T, c.dim)
	for j, s := range c.coords {
		out[j] = s.Eval(t)
	}

	return zero.With(out)
}

// Dim is the dimension of the fitted points, 0 before SetPoints.
func (c *Curve[P, T]) Dim() int { return c.dim }

// Length is the largest parameter, the chord length for SetPoints.
func (c *Curve[P, T]) Length() T { return c.largest }
