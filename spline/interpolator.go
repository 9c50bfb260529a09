// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Interpolator is a 1-D spline. The zero value is a natural cubic spline
// without data; Eval on it returns 0.
type Interpolator[T constraints.Float] struct {
	left, right           BoundaryType
	leftValue, rightValue T
	linear                bool
	linearExtrapolation   bool

	x, y    []T
	a, b, c []T

	// left extrapolation: y0 + c0·h + b0·h²
	b0, c0 T
}

// SetBoundary configures the end conditions and the spline kind used by the
// next SetData. cubic=false yields piecewise-linear interpolation.
func (s *Interpolator[T]) SetBoundary(left BoundaryType, leftValue T, right BoundaryType, rightValue T, cubic bool) {
	s.left, s.leftValue = left, leftValue
	s.right, s.rightValue = right, rightValue
	s.linear = !cubic
}

// SetLinearExtrapolation makes the spline continue as a straight line outside
// the knots, dropping the boundary curvature. Applies from the next SetData.
func (s *Interpolator[T]) SetLinearExtrapolation(on bool) { s.linearExtrapolation = on }

// SetData fits the spline through (x[i], y[i]). The slices are copied.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrNotIncreasing.
// Complexity: O(n).
func (s *Interpolator[T]) SetData(x, y []T) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d knots, %d values", ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return ErrTooFewPoints
	}
	for i := 1; i < n; i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: x[%d]=%v after %v", ErrNotIncreasing, i, x[i], x[i-1])
		}
	}
	s.x, s.y = slices.Clone(x), slices.Clone(y)
	s.a, s.b, s.c = make([]T, n), make([]T, n), make([]T, n)

	if s.linear {
		for i := 0; i < n-1; i++ {
			s.c[i] = (y[i+1] - y[i]) / (x[i+1] - x[i])
		}
	} else {
		s.fitCubic()
	}

	// Extrapolation: the left end keeps b[0] and c[0]; the right end takes
	// the slope and curvature of the last interval at x[n-1].
	s.b0, s.c0 = s.b[0], s.c[0]
	if s.linearExtrapolation {
		s.b0 = 0
	}
	h := x[n-1] - x[n-2]
	s.a[n-1] = 0
	s.c[n-1] = 3*s.a[n-2]*h*h + 2*s.b[n-2]*h + s.c[n-2]
	if s.linearExtrapolation {
		s.b[n-1] = 0
	}

	return nil
}

// fitCubic solves for b (half the second derivative at the knots) and
// derives a and c per interval.
func (s *Interpolator[T]) fitCubic() {
	x, y := s.x, s.y
	n := len(x)
	sub, diag, sup, rhs := make([]T, n), make([]T, n), make([]T, n), make([]T, n)
	for i := 1; i < n-1; i++ {
		sub[i] = (x[i] - x[i-1]) / 3
		diag[i] = 2 * (x[i+1] - x[i-1]) / 3
		sup[i] = (x[i+1] - x[i]) / 3
		rhs[i] = (y[i+1]-y[i])/(x[i+1]-x[i]) - (y[i]-y[i-1])/(x[i]-x[i-1])
	}

	h0 := x[1] - x[0]
	switch s.left {
	case FirstDeriv:
		diag[0] = 2 * h0
		sup[0] = h0
		rhs[0] = 3 * ((y[1]-y[0])/h0 - s.leftValue)
	default:
		diag[0] = 2
		rhs[0] = s.leftValue
	}
	hn := x[n-1] - x[n-2]
	switch s.right {
	case FirstDeriv:
		diag[n-1] = 2 * hn
		sub[n-1] = hn
		rhs[n-1] = 3 * (s.rightValue - (y[n-1]-y[n-2])/hn)
	default:
		diag[n-1] = 2
		rhs[n-1] = s.rightValue
	}

	s.b = solveTridiagonal(sub, diag, sup, rhs)
	for i := 0; i < n-1; i++ {
		h := x[i+1] - x[i]
		s.a[i] = (s.b[i+1] - s.b[i]) / (3 * h)
		s.c[i] = (y[i+1]-y[i])/h - (2*s.b[i]+s.b[i+1])*h/3
	}
}

// segment returns the interval index for v: -1 left of the knots, n-1 right
// of them.
func (s *Interpolator[T]) segment(v T) int {
	n := len(s.x)
	switch {
	case v < s.x[0]:
		return -1
	case v >= s.x[n-1]:
		return n - 1
	}
	i, found := slices.BinarySearch(s.x, v)
	if !found {
		i--
	}

	return i
}

// Eval returns the spline value at v.
func (s *Interpolator[T]) Eval(v T) T {
	if len(s.x) == 0 {
		return 0
	}
	i := s.segment(v)
	if i < 0 {
		h := v - s.x[0]
		return (s.b0*h+s.c0)*h + s.y[0]
	}
	h := v - s.x[i]

	return ((s.a[i]*h+s.b[i])*h+s.c[i])*h + s.y[i]
}

// Deriv returns the order-th derivative (1, 2 or 3) at v; other orders give 0.
func (s *Interpolator[T]) Deriv(order int, v T) T {
	if len(s.x) == 0 {
		return 0
	}
	i := s.segment(v)
	if i < 0 {
		h := v - s.x[0]
		switch order {
		case 1:
			return 2*s.b0*h + s.c0
		case 2:
			return 2 * s.b0
		}
		return 0
	}
	h := v - s.x[i]
	switch order {
	case 1:
		return (3*s.a[i]*h+2*s.b[i])*h + s.c[i]
	case 2:
		return 6*s.a[i]*h + 2*s.b[i]
	case 3:
		return 6 * s.a[i]
	}

	return 0
}

// Range returns the first and last knot.
func (s *Interpolator[T]) Range() (lo, hi T) {
	if len(s.x) == 0 {
		return 0, 0
	}
	return s.x[0], s.x[len(s.x)-1]
}
