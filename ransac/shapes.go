// SPDX-License-Identifier: MIT

package ransac

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvgeom/matrix"
)

// shape is a fitted candidate primitive.
type shape interface {
	kind() PrimType
	// distance is the unsigned Euclidean distance of q to the surface.
	distance(q r3.Vector) float64
	// normalAt is the unit surface normal at the foot point of q.
	normalAt(q r3.Vector) r3.Vector
}

// fitter builds a candidate of one type from a minimal sample of positions
// and normals. Every sample point, not only those the fit consumes, must be
// compatible with the result for the candidate to be kept.
type fitter struct {
	typ     PrimType
	samples int
	fit     func(p, n []r3.Vector) (shape, bool)
}

var fitters = [...]fitter{
	Plane:    {typ: Plane, samples: 3, fit: fitPlane},
	Sphere:   {typ: Sphere, samples: 3, fit: fitSphere},
	Cylinder: {typ: Cylinder, samples: 3, fit: fitCylinder},
	Cone:     {typ: Cone, samples: 3, fit: fitCone},
	Torus:    {typ: Torus, samples: 4, fit: fitTorus},
}

// compatible is the inlier test shared by sampling and scoring.
func compatible(s shape, p, n r3.Vector, eps, cosMax float64) bool {
	return s.distance(p) < eps && math.Abs(s.normalAt(p).Dot(n)) >= cosMax
}

type planeShape struct {
	point, normal r3.Vector
}

func (planeShape) kind() PrimType                 { return Plane }
func (s planeShape) distance(q r3.Vector) float64 { return math.Abs(s.normal.Dot(q.Sub(s.point))) }
func (s planeShape) normalAt(r3.Vector) r3.Vector { return s.normal }

// fitPlane spans the plane of three points; normals are only checked.
func fitPlane(p, _ []r3.Vector) (shape, bool) {
	a, b := p[1].Sub(p[0]), p[2].Sub(p[0])
	c := a.Cross(b)
	l := c.Norm()
	if l == 0 || l <= tiny*a.Norm()*b.Norm() {
		return nil, false
	}

	return planeShape{point: p[0], normal: c.Mul(1 / l)}, true
}

type sphereShape struct {
	center r3.Vector
	radius float64
}

func (sphereShape) kind() PrimType { return Sphere }
func (s sphereShape) distance(q r3.Vector) float64 {
	return math.Abs(q.Distance(s.center) - s.radius)
}
func (s sphereShape) normalAt(q r3.Vector) r3.Vector {
	return unitOr(q.Sub(s.center), r3.Vector{Z: 1})
}

// fitSphere intersects the normal lines of the first two samples.
func fitSphere(p, n []r3.Vector) (shape, bool) {
	c, ok := lineMidpoint(p[0], n[0], p[1], n[1])
	if !ok {
		return nil, false
	}
	r := (p[0].Distance(c) + p[1].Distance(c)) / 2
	if r <= tiny {
		return nil, false
	}

	return sphereShape{center: c, radius: r}, true
}

type cylinderShape struct {
	point  r3.Vector // on the axis
	axis   r3.Vector
	radius float64
}

func (cylinderShape) kind() PrimType { return Cylinder }
func (s cylinderShape) distance(q r3.Vector) float64 {
	_, perp := radial(q.Sub(s.point), s.axis)
	return math.Abs(perp.Norm() - s.radius)
}
func (s cylinderShape) normalAt(q r3.Vector) r3.Vector {
	_, perp := radial(q.Sub(s.point), s.axis)
	return unitOr(perp, s.axis.Ortho())
}

// fitCylinder takes the axis direction from the cross product of the first
// two normals and the axis position from their normal lines projected onto
// the plane orthogonal to it.
func fitCylinder(p, n []r3.Vector) (shape, bool) {
	axis := n[0].Cross(n[1])
	l := axis.Norm()
	if l <= 1e-3 {
		return nil, false
	}
	axis = axis.Mul(1 / l)

	_, q0 := radial(p[0], axis)
	_, q1 := radial(p[1], axis)
	_, m0 := radial(n[0], axis)
	_, m1 := radial(n[1], axis)
	c, ok := lineMidpoint(q0, m0, q1, m1)
	if !ok {
		return nil, false
	}
	r := (q0.Distance(c) + q1.Distance(c)) / 2
	if r <= tiny {
		return nil, false
	}

	return cylinderShape{point: c, axis: axis, radius: r}, true
}

type coneShape struct {
	apex  r3.Vector
	axis  r3.Vector
	angle float64
}

func (coneShape) kind() PrimType { return Cone }

// distance measures in the (height, radius) half-plane through q: the
// generator is the ray at angle from the axis, and points behind the apex
// are nearest to the apex itself.
func (s coneShape) distance(q r3.Vector) float64 {
	v := q.Sub(s.apex)
	h, perp := radial(v, s.axis)
	rho := perp.Norm()
	sin, cos := math.Sincos(s.angle)
	if h*cos+rho*sin < 0 {
		return v.Norm()
	}

	return math.Abs(rho*cos - h*sin)
}
func (s coneShape) normalAt(q r3.Vector) r3.Vector {
	_, perp := radial(q.Sub(s.apex), s.axis)
	e := unitOr(perp, s.axis.Ortho())
	sin, cos := math.Sincos(s.angle)

	return e.Mul(cos).Sub(s.axis.Mul(sin))
}

// minConeAngle keeps cones away from the degenerate line and plane cases.
const minConeAngle = 0.01

// fitCone finds the apex as the common point of the three tangent planes,
// then the axis as the normal of the plane through the unit generator
// directions.
func fitCone(p, n []r3.Vector) (shape, bool) {
	tangents := matrix.Mat3FromRows(n[0], n[1], n[2])
	if math.Abs(tangents.Det()) < 1e-6 {
		return nil, false
	}
	lu, err := matrix.LUDecompose(tangents.Dense())
	if err != nil {
		return nil, false
	}
	x, err := lu.Solve([]float64{n[0].Dot(p[0]), n[1].Dot(p[1]), n[2].Dot(p[2])})
	if err != nil {
		return nil, false
	}
	apex := r3.Vector{X: x[0], Y: x[1], Z: x[2]}

	var u [3]r3.Vector
	for i := range u {
		d := p[i].Sub(apex)
		l := d.Norm()
		if l <= tiny {
			return nil, false
		}
		u[i] = d.Mul(1 / l)
	}
	axis := u[1].Sub(u[0]).Cross(u[2].Sub(u[0]))
	l := axis.Norm()
	if l <= tiny {
		return nil, false
	}
	axis = axis.Mul(1 / l)
	if axis.Dot(u[0]) < 0 {
		axis = axis.Mul(-1)
	}

	var angle float64
	for _, ui := range u {
		angle += math.Acos(math.Max(-1, math.Min(1, axis.Dot(ui))))
	}
	angle /= 3
	if angle < minConeAngle || angle > math.Pi/2-minConeAngle {
		return nil, false
	}

	return coneShape{apex: apex, axis: axis, angle: angle}, true
}

type torusShape struct {
	center       r3.Vector
	axis         r3.Vector
	major, minor float64
}

func (torusShape) kind() PrimType { return Torus }

// spine returns the point of the major circle nearest to q.
func (s torusShape) spine(q r3.Vector) r3.Vector {
	_, perp := radial(q.Sub(s.center), s.axis)
	return s.center.Add(unitOr(perp, s.axis.Ortho()).Mul(s.major))
}
func (s torusShape) distance(q r3.Vector) float64 {
	return math.Abs(q.Distance(s.spine(q)) - s.minor)
}
func (s torusShape) normalAt(q r3.Vector) r3.Vector {
	return unitOr(q.Sub(s.spine(q)), s.axis)
}

// fitTorus uses that pᵢ - r·nᵢ lies on the major circle for the right minor
// radius r, so the four shifted points are coplanar: det[qᵢ - q₀] = 0 is a
// cubic in r. Each real root yields a circle through three shifted points;
// the one passing closest to the fourth wins.
func fitTorus(p, n []r3.Vector) (shape, bool) {
	det := func(r float64) float64 {
		q0 := p[0].Sub(n[0].Mul(r))
		return matrix.Mat3FromCols(
			p[1].Sub(n[1].Mul(r)).Sub(q0),
			p[2].Sub(n[2].Mul(r)).Sub(q0),
			p[3].Sub(n[3].Mul(r)).Sub(q0),
		).Det()
	}
	// Recover the cubic's coefficients from four samples.
	f0, f1, fm1, f2 := det(0), det(1), det(-1), det(2)
	c2 := (f1+fm1)/2 - f0
	odd := (f1 - fm1) / 2
	c3 := ((f2-f0-4*c2)/2 - odd) / 3
	c1 := odd - c3

	var (
		best    torusShape
		bestErr = math.Inf(1)
	)
	for _, r := range solveCubic(c3, c2, c1, f0) {
		if math.Abs(r) <= tiny {
			continue
		}
		var q [4]r3.Vector
		for i := range q {
			q[i] = p[i].Sub(n[i].Mul(r))
		}
		center, axis, major, ok := circumcircle(q[0], q[1], q[2])
		if !ok || major <= tiny {
			continue
		}
		h, perp := radial(q[3].Sub(center), axis)
		if e := math.Abs(perp.Norm()-major) + math.Abs(h); e < bestErr {
			bestErr = e
			best = torusShape{center: center, axis: axis, major: major, minor: math.Abs(r)}
		}
	}
	if math.IsInf(bestErr, 1) {
		return nil, false
	}

	return best, true
}
