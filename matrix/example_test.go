// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvgeom/matrix"
)

// ExampleLUDecompose factors once and solves two right-hand sides.
func ExampleLUDecompose() {
	a, _ := matrix.NewFromRows(
		[]float64{2, 1, 1},
		[]float64{4, -6, 0},
		[]float64{-2, 7, 2},
	)
	f, err := matrix.LUDecompose(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	x1, _ := f.Solve([]float64{7, -8, 18})
	x2, _ := f.Solve([]float64{4, -2, 7})
	fmt.Printf("%.3f\n%.3f\ndet=%.1f\n", x1, x2, f.Det())
	// Output:
	// [1.000 2.000 3.000]
	// [1.000 1.000 1.000]
	// det=-16.0
}

// ExampleCholesky decomposes a symmetric positive-definite matrix.
func ExampleCholesky() {
	a, _ := matrix.NewFromRows(
		[]float64{4, 12, -16},
		[]float64{12, 37, -43},
		[]float64{-16, -43, 98},
	)
	l, err := matrix.Cholesky(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(l)
	// Output:
	// [2, 0, 0]
	// [6, 1, 0]
	// [-8, 5, 3]
}

// ExampleMat4_TransformPoint rotates a point a quarter turn about z and lifts it.
func ExampleMat4_TransformPoint() {
	m := matrix.Translation4XYZ(0, 0, 1).Mul(matrix.Rotation4(r3.Vector{Z: 1}, math.Pi/2))
	p := m.TransformPoint(r3.Vector{X: 1})
	fmt.Printf("(%.1f, %.1f, %.1f)\n", p.X, p.Y, p.Z)
	// Output:
	// (0.0, 1.0, 1.0)
}
