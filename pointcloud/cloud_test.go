// SPDX-License-Identifier: MIT

package pointcloud_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/pointcloud"
)

func TestCloud_PropertiesGrowWithPoints(t *testing.T) {
	c := pointcloud.New()
	c.AddPoint(r3.Vector{X: 1})

	labels, err := pointcloud.AddProperty(c, pointcloud.PropPrimitiveIndex, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{-1}, labels.Data())

	idx := c.AddPoint(r3.Vector{Y: 2})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []int{-1, -1}, labels.Data())
	assert.Equal(t, r3.Vector{Y: 2}, c.Position(1))
}

func TestCloud_PropertyErrors(t *testing.T) {
	c := pointcloud.FromPoints([]r3.Vector{{}, {X: 1}})

	_, err := pointcloud.AddProperty(c, pointcloud.PropPoint, r3.Vector{})
	assert.ErrorIs(t, err, pointcloud.ErrReservedProperty)
	assert.ErrorIs(t, c.RemoveProperty(pointcloud.PropPoint), pointcloud.ErrReservedProperty)

	_, err = pointcloud.AddProperty(c, "v:weight", 1.5)
	require.NoError(t, err)
	_, err = pointcloud.AddProperty(c, "v:weight", 2.5)
	assert.ErrorIs(t, err, pointcloud.ErrPropertyExists)

	_, err = pointcloud.GetProperty[int](c, "v:weight")
	assert.ErrorIs(t, err, pointcloud.ErrPropertyType)
	_, err = pointcloud.GetProperty[int](c, "v:missing")
	assert.ErrorIs(t, err, pointcloud.ErrPropertyNotFound)

	w, err := pointcloud.GetOrAddProperty(c, "v:weight", 9.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5}, w.Data(), "existing values are kept")

	assert.Equal(t, []string{pointcloud.PropPoint, "v:weight"}, c.PropertyNames())
	require.NoError(t, c.RemoveProperty("v:weight"))
	assert.False(t, c.HasProperty("v:weight"))
	assert.ErrorIs(t, c.RemoveProperty("v:weight"), pointcloud.ErrPropertyNotFound)
}

func TestCloud_Normals(t *testing.T) {
	c := pointcloud.FromPoints([]r3.Vector{{}, {X: 1}})
	assert.False(t, c.HasNormals())
	assert.Nil(t, c.Normals())

	assert.ErrorIs(t, c.SetNormals([]r3.Vector{{Z: 1}}), pointcloud.ErrLengthMismatch)
	require.NoError(t, c.SetNormals([]r3.Vector{{Z: 1}, {Z: -1}}))
	assert.True(t, c.HasNormals())
	assert.Equal(t, r3.Vector{Z: -1}, c.Normals()[1])
}

func TestCloud_BoundingBox(t *testing.T) {
	assert.True(t, pointcloud.New().BoundingBox().IsEmpty())
	assert.Zero(t, pointcloud.New().BoundingBox().MaxExtent())

	c := pointcloud.FromPoints([]r3.Vector{{X: -1, Y: 0, Z: 2}, {X: 3, Y: 1, Z: 2}, {X: 0, Y: -1, Z: 4}})
	b := c.BoundingBox()
	assert.Equal(t, r3.Vector{X: -1, Y: -1, Z: 2}, b.Min)
	assert.Equal(t, r3.Vector{X: 3, Y: 1, Z: 4}, b.Max)
	assert.Equal(t, 4.0, b.MaxExtent())
	assert.InDelta(t, 4.898979485566356, b.Diagonal(), 1e-12)
	assert.Equal(t, r3.Vector{X: 1, Y: 0, Z: 3}, b.Center())

	sub := c.BoundingBoxOf([]int{0, 1})
	assert.Equal(t, 2.0, sub.Max.Z)
	assert.Equal(t, 0.0, sub.MaxExtent()-4)
}
