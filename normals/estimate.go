// SPDX-License-Identifier: MIT

package normals

import (
	"fmt"
	"sync/atomic"

	"github.com/golang/geo/r3"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgeom/knn"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/pointcloud"
)

// minNeighbours is the smallest neighbourhood that spans a plane.
const minNeighbours = 3

// fallbackNormal is written for points whose neighbourhood is too small.
var fallbackNormal = r3.Vector{Z: 1}

// Estimate computes an unoriented unit normal for every point from its k
// nearest neighbours (the point itself included) and stores it in
// "v:normal". With computeCurvature it also stores λmin/(λ0+λ1+λ2) in
// "v:curvature".
//
// Points with fewer than 3 neighbours (k < 3 or a tiny cloud) get the normal
// (0,0,1) and curvature 0; their count is logged at Warn level.
//
// Errors: ErrNilCloud, ErrBadK, ErrOptionViolation, context errors, and
// property type conflicts from pointcloud.
// Complexity: O(n·(k log k + log n)) with Workers-way parallelism.
func Estimate(cloud *pointcloud.Cloud, k int, computeCurvature bool, opts ...Option) error {
	if cloud == nil {
		return ErrNilCloud
	}
	if k < 1 {
		return ErrBadK
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	n := cloud.Len()
	normalProp, err := pointcloud.GetOrAddProperty(cloud, pointcloud.PropNormal, r3.Vector{})
	if err != nil {
		return fmt.Errorf("normals: %w", err)
	}
	var curv []float64
	if computeCurvature {
		curvProp, err := pointcloud.GetOrAddProperty(cloud, pointcloud.PropCurvature, 0.0)
		if err != nil {
			return fmt.Errorf("normals: %w", err)
		}
		curv = curvProp.Data()
	}
	if n == 0 {
		return nil
	}

	pts := cloud.Positions()
	tree := knn.NewTree(pts)
	out := normalProp.Data()
	var skipped atomic.Int64

	g, ctx := errgroup.WithContext(o.Ctx)
	chunk := (n + o.Workers - 1) / o.Workers
	for start := 0; start < n; start += chunk {
		start := start // per-iteration copy (go 1.22 loopvar semantics under go 1.21)
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				nb := tree.KNearest(i, k)
				if len(nb) < minNeighbours {
					skipped.Add(1)
					out[i] = fallbackNormal
					if curv != nil {
						curv[i] = 0
					}
					continue
				}
				_, normal, c, err := FitPlane(pts, nb)
				if err != nil {
					return fmt.Errorf("normals: point %d: %w", i, err)
				}
				out[i] = normal
				if curv != nil {
					curv[i] = c
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	if s := skipped.Load(); s > 0 {
		o.Logger.Warn("too few neighbours, default normal used", "points", s, "k", k)
	}
	o.Logger.Debug("normals estimated", "points", n, "k", k, "workers", o.Workers)

	return nil
}

// Covariance returns the centroid and the 3×3 covariance (divided by the
// sample count) of the indexed points.
func Covariance(pts []r3.Vector, idx []int) (r3.Vector, matrix.Mat3) {
	var c r3.Vector
	for _, j := range idx {
		c = c.Add(pts[j])
	}
	c = c.Mul(1 / float64(len(idx)))

	var cov matrix.Mat3
	for _, j := range idx {
		d := pts[j].Sub(c)
		cov = cov.Add(matrix.Tensor3(d, d))
	}

	return c, cov.Scale(1 / float64(len(idx)))
}

// FitPlane is the least-squares plane of the indexed points: it passes
// through their centroid, its unit normal is the smallest-variance direction
// (sign unspecified), and curvature is λmin/(λ0+λ1+λ2).
func FitPlane(pts []r3.Vector, idx []int) (centroid, normal r3.Vector, curvature float64, err error) {
	centroid, cov := Covariance(pts, idx)
	values, vectors, err := matrix.EigenSym(cov.Dense(), matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	if err != nil {
		return centroid, r3.Vector{}, 0, err
	}
	col, err := vectors.Col(0)
	if err != nil {
		return centroid, r3.Vector{}, 0, err
	}
	normal = r3.Vector{X: col[0], Y: col[1], Z: col[2]}.Normalize()

	if sum := values[0] + values[1] + values[2]; sum > 0 {
		curvature = values[0] / sum
	}

	return centroid, normal, curvature, nil
}
