// SPDX-License-Identifier: MIT

package knn_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/knn"
)

// bruteForce sorts every index by (squared distance, index) to q.
func bruteForce(pts []r3.Vector, q r3.Vector, k int) []int {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		da, db := pts[a].Sub(q).Norm2(), pts[b].Sub(q).Norm2()
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return idx[:min(k, len(idx))]
}

func TestKNearest_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pts := make([]r3.Vector, 500)
	for i := range pts {
		pts[i] = r3.Vector{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
	}
	tree := knn.NewTree(pts)
	require.Equal(t, 500, tree.Len())

	for _, i := range []int{0, 17, 250, 499} {
		for _, k := range []int{1, 8, 16} {
			got := tree.KNearest(i, k)
			assert.Equal(t, bruteForce(pts, pts[i], k), got, "i=%d k=%d", i, k)
			assert.Equal(t, i, got[0], "query point comes first")
		}
	}

	q := r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}
	assert.Equal(t, bruteForce(pts, q, 10), tree.KNearestPoint(q, 10))
}

func TestKNearest_Limits(t *testing.T) {
	pts := []r3.Vector{{}, {X: 1}, {X: 3}}
	tree := knn.NewTree(pts)

	assert.Equal(t, []int{2, 1, 0}, tree.KNearest(2, 10))
	assert.Nil(t, tree.KNearest(0, 0))
	assert.Nil(t, knn.NewTree(nil).KNearestPoint(r3.Vector{}, 3))
}
