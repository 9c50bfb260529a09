// SPDX-License-Identifier: MIT

package spline_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/spline"
)

// ExampleCurve fits a smooth curve through a polyline and samples it.
func ExampleCurve() {
	var c spline.Curve[spline.Vec3, float64]
	pts := []spline.Vec3{{X: 0}, {X: 1, Y: 1}, {X: 2}, {X: 3, Y: -1}}
	if err := c.SetPoints(pts, true); err != nil {
		fmt.Println(err)
		return
	}

	start, end := c.Eval(0), c.Eval(1)
	fmt.Printf("start (%.1f, %.1f) end (%.1f, %.1f)\n", start.X, start.Y, end.X, end.Y)
	// Output:
	// start (0.0, 0.0) end (3.0, -1.0)
}

// ExampleInterpolator shows a clamped 1-D spline.
func ExampleInterpolator() {
	var s spline.Interpolator[float64]
	s.SetBoundary(spline.FirstDeriv, 0, spline.FirstDeriv, 0, true)
	if err := s.SetData([]float64{0, 1, 2}, []float64{0, 1, 0}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("y(1)=%.2f y(0.5)=%.2f y'(0.5)=%.2f\n", s.Eval(1), s.Eval(0.5), s.Deriv(1, 0.5))
	// Output:
	// y(1)=1.00 y(0.5)=0.50 y'(0.5)=1.50
}
