// SPDX-License-Identifier: MIT

package ransac

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/katalvlaran/lvgeom/pointcloud"
)

func init() {
	SetLogger(logging.NoopLogger().Logger)
}

// oriented builds a cloud with normals.
func oriented(pts, nrm []r3.Vector) *pointcloud.Cloud {
	c := pointcloud.FromPoints(pts)
	if err := c.SetNormals(nrm); err != nil {
		panic(err)
	}
	return c
}

// floorGrid samples the unit square of z = 0 on an n×n lattice, normals +z.
func floorGrid(n int) (pts, nrm []r3.Vector) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts = append(pts, r3.Vector{X: float64(i) / float64(n-1), Y: float64(j) / float64(n-1)})
			nrm = append(nrm, r3.Vector{Z: 1})
		}
	}
	return pts, nrm
}

// wallGrid samples x = 0 for y in [0,1], z in (0,1], normals +x.
func wallGrid(n int) (pts, nrm []r3.Vector) {
	for i := 0; i < n; i++ {
		for j := 1; j <= n; j++ {
			pts = append(pts, r3.Vector{Y: float64(i) / float64(n-1), Z: float64(j) / float64(n)})
			nrm = append(nrm, r3.Vector{X: 1})
		}
	}
	return pts, nrm
}

// fibonacciSphere spreads n points evenly over a sphere, normals outward.
func fibonacciSphere(n int, center r3.Vector, radius float64) (pts, nrm []r3.Vector) {
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		phi := golden * float64(i)
		u := r3.Vector{X: math.Cos(phi) * r, Y: y, Z: math.Sin(phi) * r}
		pts = append(pts, center.Add(u.Mul(radius)))
		nrm = append(nrm, u)
	}
	return pts, nrm
}

// cylinderGrid samples a z-aligned cylinder through the origin, normals radial.
func cylinderGrid(radius, height float64, around, along int) (pts, nrm []r3.Vector) {
	for i := 0; i < around; i++ {
		a := 2 * math.Pi * float64(i) / float64(around)
		e := r3.Vector{X: math.Cos(a), Y: math.Sin(a)}
		for j := 0; j < along; j++ {
			z := height * float64(j) / float64(along)
			pts = append(pts, e.Mul(radius).Add(r3.Vector{Z: z}))
			nrm = append(nrm, e)
		}
	}
	return pts, nrm
}

// coneGrid samples a cone with apex at the origin opening along +z, normals
// outward, keeping clear of the apex.
func coneGrid(angle float64, around, along int) (pts, nrm []r3.Vector) {
	sin, cos := math.Sincos(angle)
	for i := 0; i < around; i++ {
		a := 2 * math.Pi * float64(i) / float64(around)
		e := r3.Vector{X: math.Cos(a), Y: math.Sin(a)}
		for j := 0; j < along; j++ {
			h := 0.2 + 1.8*float64(j)/float64(along)
			pts = append(pts, e.Mul(h*sin/cos).Add(r3.Vector{Z: h}))
			nrm = append(nrm, e.Mul(cos).Sub(r3.Vector{Z: sin}))
		}
	}
	return pts, nrm
}

// torusGrid samples a z-axis torus centered at the origin, normals outward.
func torusGrid(major, minor float64, around, tube int) (pts, nrm []r3.Vector) {
	for i := 0; i < around; i++ {
		a := 2 * math.Pi * float64(i) / float64(around)
		e := r3.Vector{X: math.Cos(a), Y: math.Sin(a)}
		for j := 0; j < tube; j++ {
			sv, cv := math.Sincos(2 * math.Pi * float64(j) / float64(tube))
			n := e.Mul(cv).Add(r3.Vector{Z: sv})
			pts = append(pts, e.Mul(major).Add(n.Mul(minor)))
			nrm = append(nrm, n)
		}
	}
	return pts, nrm
}

func parallel(a, b r3.Vector, tol float64) bool {
	return math.Abs(math.Abs(a.Normalize().Dot(b.Normalize()))-1) < tol
}
