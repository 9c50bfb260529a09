// SPDX-License-Identifier: MIT

// Package spline interpolates samples with cubic (or linear) splines.
//
// Interpolator is a 1-D spline y(x) through strictly increasing knots. On
// every interval [xᵢ, xᵢ₊₁] it is the cubic
//
//	y(x) = aᵢ·h³ + bᵢ·h² + cᵢ·h + yᵢ,  h = x - xᵢ,
//
// whose bᵢ solve a tridiagonal system closed by one boundary condition per
// end: a prescribed first or second derivative. Outside the knot range the
// spline continues with the boundary's slope and curvature (a straight line
// for natural boundaries, always a line with SetLinearExtrapolation).
//
// Curve fits one Interpolator per coordinate of an N-dimensional point
// sequence, parameterized either explicitly or by accumulated chord length,
// and is evaluated on u in [0, 1]. Curve is generic over any point type
// implementing Point; Vec and Vec3 adapt []T and r3.Vector.
package spline
