// SPDX-License-Identifier: MIT

package ransac

import (
	"math"

	"github.com/golang/geo/r3"
)

// tiny guards divisions by lengths and determinants of unit-scale quantities.
const tiny = 1e-9

// lineMidpoint returns the midpoint of the shortest segment between the lines
// p0 + s·d0 and p1 + t·d1. ok is false for (nearly) parallel lines.
func lineMidpoint(p0, d0, p1, d1 r3.Vector) (mid r3.Vector, ok bool) {
	w := p0.Sub(p1)
	a, b, c := d0.Dot(d0), d0.Dot(d1), d1.Dot(d1)
	d, e := d0.Dot(w), d1.Dot(w)
	den := a*c - b*b
	if den <= tiny*a*c {
		return r3.Vector{}, false
	}
	s := (b*e - c*d) / den
	t := (a*e - b*d) / den

	return p0.Add(d0.Mul(s)).Add(p1.Add(d1.Mul(t))).Mul(0.5), true
}

// circumcircle returns the circle through q0, q1, q2: its center, unit plane
// normal and radius. ok is false for collinear points.
func circumcircle(q0, q1, q2 r3.Vector) (center, axis r3.Vector, radius float64, ok bool) {
	a, b := q1.Sub(q0), q2.Sub(q0)
	w := a.Cross(b)
	w2 := w.Norm2()
	if w2 <= tiny*a.Norm2()*b.Norm2() {
		return r3.Vector{}, r3.Vector{}, 0, false
	}
	num := b.Mul(a.Norm2()).Sub(a.Mul(b.Norm2())).Cross(w)
	center = q0.Add(num.Mul(1 / (2 * w2)))

	return center, w.Mul(1 / math.Sqrt(w2)), q0.Distance(center), true
}

// radial splits v into its component along the unit axis (h) and the
// perpendicular remainder.
func radial(v, axis r3.Vector) (h float64, perp r3.Vector) {
	h = v.Dot(axis)
	return h, v.Sub(axis.Mul(h))
}

// unitOr normalizes v, or returns fallback when v is (nearly) zero.
func unitOr(v, fallback r3.Vector) r3.Vector {
	if n := v.Norm(); n > tiny {
		return v.Mul(1 / n)
	}
	return fallback
}

// solveCubic returns the real roots of a·x³ + b·x² + c·x + d, degrading to
// the quadratic and linear cases when leading coefficients vanish.
func solveCubic(a, b, c, d float64) []float64 {
	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), math.Max(math.Abs(c), math.Abs(d)))
	if scale == 0 {
		return nil
	}
	if math.Abs(a) <= tiny*scale {
		return solveQuadratic(b, c, d, scale)
	}

	// Depressed cubic t³ + p·t + q with x = t - B/3.
	B, C, D := b/a, c/a, d/a
	shift := B / 3
	p := C - B*B/3
	q := 2*B*B*B/27 - B*C/3 + D
	disc := q*q/4 + p*p*p/27

	switch {
	case disc > 0:
		s := math.Sqrt(disc)
		t := math.Cbrt(-q/2+s) + math.Cbrt(-q/2-s)
		return []float64{t - shift}
	case p == 0:
		return []float64{-shift}
	default:
		m := 2 * math.Sqrt(-p/3)
		arg := math.Max(-1, math.Min(1, 3*q/(p*m)))
		theta := math.Acos(arg) / 3
		roots := make([]float64, 3)
		for k := range roots {
			roots[k] = m*math.Cos(theta-2*math.Pi*float64(k)/3) - shift
		}
		return roots
	}
}

func solveQuadratic(a, b, c, scale float64) []float64 {
	if math.Abs(a) <= tiny*scale {
		if math.Abs(b) <= tiny*scale {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	s := math.Sqrt(disc)

	return []float64{(-b + s) / (2 * a), (-b - s) / (2 * a)}
}
