// SPDX-License-Identifier: MIT

package normals

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/katalvlaran/lvgeom/mst"
	"github.com/katalvlaran/lvgeom/pointcloud"
)

func init() {
	SetLogger(logging.NoopLogger().Logger)
}

// grid returns an nx×ny lattice on the plane z = 0 with spacing 1.
func grid(nx, ny int) []r3.Vector {
	pts := make([]r3.Vector, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			pts = append(pts, r3.Vector{X: float64(i), Y: float64(j)})
		}
	}

	return pts
}

// sphere samples n points on a sphere of radius r with a fixed seed.
func sphere(n int, r float64, seed int64) []r3.Vector {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]r3.Vector, n)
	for i := range pts {
		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}.Normalize()
		pts[i] = v.Mul(r)
	}

	return pts
}

func TestEstimate_Errors(t *testing.T) {
	assert.ErrorIs(t, Estimate(nil, 8, false), ErrNilCloud)

	c := pointcloud.FromPoints(grid(3, 3))
	assert.ErrorIs(t, Estimate(c, 0, false), ErrBadK)
	assert.ErrorIs(t, Estimate(c, 8, false, WithWorkers(0)), ErrOptionViolation)
	assert.False(t, c.HasNormals(), "failed validation must not register properties")
}

func TestEstimate_PlaneNormalsAreVertical(t *testing.T) {
	c := pointcloud.FromPoints(grid(10, 10))
	require.NoError(t, Estimate(c, 8, true))

	nrm := c.Normals()
	require.Len(t, nrm, 100)
	curv, err := pointcloud.GetProperty[float64](c, pointcloud.PropCurvature)
	require.NoError(t, err)
	for i, n := range nrm {
		assert.InDelta(t, 1.0, math.Abs(n.Z), 1e-9, "point %d: %v", i, n)
		assert.InDelta(t, 1.0, n.Norm(), 1e-9)
		assert.InDelta(t, 0.0, curv.Get(i), 1e-9)
	}
}

func TestEstimate_SphereNormalsAreRadial(t *testing.T) {
	pts := sphere(2000, 2, 7)
	c := pointcloud.FromPoints(pts)
	require.NoError(t, Estimate(c, 12, false))
	assert.False(t, c.HasProperty(pointcloud.PropCurvature))

	for i, n := range c.Normals() {
		radial := pts[i].Normalize()
		assert.Greater(t, math.Abs(n.Dot(radial)), 0.95, "point %d", i)
	}
}

func TestEstimate_TooFewNeighboursUsesDefault(t *testing.T) {
	c := pointcloud.FromPoints([]r3.Vector{{X: 0}, {X: 1}})
	require.NoError(t, Estimate(c, 8, true))
	for _, n := range c.Normals() {
		assert.Equal(t, r3.Vector{Z: 1}, n)
	}

	// k < 3 also falls back even when the cloud is large enough.
	c = pointcloud.FromPoints(grid(4, 4))
	require.NoError(t, Estimate(c, 2, false))
	for _, n := range c.Normals() {
		assert.Equal(t, r3.Vector{Z: 1}, n)
	}
}

func TestEstimate_EmptyCloud(t *testing.T) {
	c := pointcloud.New()
	require.NoError(t, Estimate(c, 8, true))
	assert.True(t, c.HasNormals())
	assert.Empty(t, c.Normals())
}

func TestEstimate_WorkersMatchSerial(t *testing.T) {
	pts := sphere(1500, 1, 3)
	serial := pointcloud.FromPoints(pts)
	parallel := pointcloud.FromPoints(pts)

	require.NoError(t, Estimate(serial, 10, true))
	require.NoError(t, Estimate(parallel, 10, true, WithWorkers(7)))

	assert.Equal(t, serial.Normals(), parallel.Normals())
	cs, _ := pointcloud.GetProperty[float64](serial, pointcloud.PropCurvature)
	cp, _ := pointcloud.GetProperty[float64](parallel, pointcloud.PropCurvature)
	assert.Equal(t, cs.Data(), cp.Data())
}

func TestEstimate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := pointcloud.FromPoints(grid(5, 5))
	assert.ErrorIs(t, Estimate(c, 8, false, WithContext(ctx)), context.Canceled)
}

func TestEstimate_PropertyTypeConflict(t *testing.T) {
	c := pointcloud.FromPoints(grid(3, 3))
	_, err := pointcloud.AddProperty(c, pointcloud.PropNormal, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, Estimate(c, 8, false), pointcloud.ErrPropertyType)
}

func TestCovariance(t *testing.T) {
	pts := []r3.Vector{{X: -1}, {X: 1}, {Y: -2}, {Y: 2}}
	centroid, cov := Covariance(pts, []int{0, 1, 2, 3})
	assert.Equal(t, r3.Vector{}, centroid)
	assert.InDelta(t, 0.5, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, cov.At(1, 1), 1e-12)
	assert.InDelta(t, 0.0, cov.At(2, 2), 1e-12)
	assert.InDelta(t, 0.0, cov.At(0, 1), 1e-12)
}

func TestReorient_Errors(t *testing.T) {
	assert.ErrorIs(t, Reorient(nil, 8), ErrNilCloud)

	c := pointcloud.FromPoints(grid(3, 3))
	assert.ErrorIs(t, Reorient(c, 8), ErrNoNormals)
	require.NoError(t, Estimate(c, 8, false))
	assert.ErrorIs(t, Reorient(c, 0), ErrBadK)
	assert.ErrorIs(t, Reorient(c, 8, WithMSTMethod("boruvka")), mst.ErrBadMethod)
}

func TestReorient_PlaneFacesUp(t *testing.T) {
	for _, m := range []mst.Method{mst.MethodKruskal, mst.MethodPrim} {
		t.Run(string(m), func(t *testing.T) {
			pts := grid(12, 12)
			c := pointcloud.FromPoints(pts)
			nrm := make([]r3.Vector, len(pts))
			for i := range nrm {
				nrm[i] = r3.Vector{Z: 1}
				if i%3 == 0 {
					nrm[i] = r3.Vector{Z: -1}
				}
			}
			require.NoError(t, c.SetNormals(nrm))

			require.NoError(t, Reorient(c, 8, WithMSTMethod(m)))
			for i, n := range c.Normals() {
				assert.Equal(t, r3.Vector{Z: 1}, n, "point %d", i)
			}
		})
	}
}

func TestReorient_SphereIsConsistent(t *testing.T) {
	pts := sphere(3000, 1, 11)
	c := pointcloud.FromPoints(pts)
	require.NoError(t, Estimate(c, 12, false, WithWorkers(4)))
	require.NoError(t, Reorient(c, 12))

	// The topmost point faces +z, so consistent normals all point outward.
	outward := 0
	for i, n := range c.Normals() {
		if n.Dot(pts[i]) > 0 {
			outward++
		}
	}
	assert.GreaterOrEqual(t, outward, len(pts)*99/100)
}

func TestReorient_SeparateComponents(t *testing.T) {
	// Two patches far apart; each tree gets its own +z root.
	var pts []r3.Vector
	for _, p := range grid(5, 5) {
		pts = append(pts, p, p.Add(r3.Vector{X: 1000, Z: 50}))
	}
	c := pointcloud.FromPoints(pts)
	nrm := make([]r3.Vector, len(pts))
	for i := range nrm {
		nrm[i] = r3.Vector{Z: -1}
	}
	require.NoError(t, c.SetNormals(nrm))

	require.NoError(t, Reorient(c, 6))
	for i, n := range c.Normals() {
		assert.Equal(t, r3.Vector{Z: 1}, n, "point %d", i)
	}
}

func TestFitPlane(t *testing.T) {
	pts := []r3.Vector{{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 0, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 2}}
	centroid, normal, curvature, err := FitPlane(pts, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0, centroid.Distance(r3.Vector{X: 0.5, Y: 0.5, Z: 2}), 1e-12)
	assert.InDelta(t, 1, math.Abs(normal.Z), 1e-12)
	assert.InDelta(t, 0, curvature, 1e-12)
}
