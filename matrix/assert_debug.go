// SPDX-License-Identifier: MIT

//go:build lvgeomdebug

package matrix

import (
	"fmt"
	"math"
)

// assertUnit panics when length is not 1 within unitTol.
func assertUnit(what string, length float64) {
	if math.Abs(length-1) > unitTol {
		panic(fmt.Sprintf("matrix: %s must be unit length, got %g", what, length))
	}
}

// assertIndex panics when (i, j) is outside an n×n matrix.
func assertIndex(i, j, n int) {
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, n, n))
	}
}
