// SPDX-License-Identifier: MIT

package spline

import "golang.org/x/exp/constraints"

// solveTridiagonal solves the system with sub-, main and super-diagonals
// sub[1:], diag and sup[:n-1] (Thomas algorithm, no pivoting). diag and rhs
// are overwritten; the solution is returned in rhs.
//
// The spline systems are diagonally dominant on interior rows, which keeps
// elimination without pivoting stable.
func solveTridiagonal[T constraints.Float](sub, diag, sup, rhs []T) []T {
	n := len(diag)
	for i := 1; i < n; i++ {
		w := sub[i] / diag[i-1]
		diag[i] -= w * sup[i-1]
		rhs[i] -= w * rhs[i-1]
	}
	rhs[n-1] /= diag[n-1]
	for i := n - 2; i >= 0; i-- {
		rhs[i] = (rhs[i] - sup[i]*rhs[i+1]) / diag[i]
	}

	return rhs
}
