// SPDX-License-Identifier: MIT

// Package knn answers k-nearest-neighbour queries over a fixed set of 3D
// points, addressed by point index. It is a thin indexed adapter over
// gonum's spatial/kdtree.
package knn

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// point is a kd-tree element carrying the index it had in the input slice.
type point struct {
	v   r3.Vector
	idx int
}

func coord(v r3.Vector, d kdtree.Dim) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Compare returns the signed separation of p and c along d.
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return coord(p.v, d) - coord(c.(point).v, d)
}

func (p point) Dims() int { return 3 }

// Distance is the squared Euclidean distance, as kdtree expects.
func (p point) Distance(c kdtree.Comparable) float64 {
	d := p.v.Sub(c.(point).v)
	return d.Dot(d)
}

// points implements kdtree.Interface.
type points []point

func (p points) Index(i int) kdtree.Comparable         { return p[i] }
func (p points) Len() int                              { return len(p) }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p points) Pivot(d kdtree.Dim) int {
	return plane{points: p, dim: d}.pivot()
}

// plane sorts points along one dimension for the median split.
type plane struct {
	points
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	return coord(p.points[i].v, p.dim) < coord(p.points[j].v, p.dim)
}
func (p plane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p plane) pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

// Tree is an immutable spatial index over a snapshot of positions.
type Tree struct {
	pts  []r3.Vector
	tree *kdtree.Tree
}

// NewTree indexes a copy of pts.
//
// Complexity: O(n log n).
func NewTree(pts []r3.Vector) *Tree {
	elems := make(points, len(pts))
	for i, p := range pts {
		elems[i] = point{v: p, idx: i}
	}
	t := &Tree{pts: slices.Clone(pts)}
	if len(elems) > 0 {
		t.tree = kdtree.New(elems, false)
	}

	return t
}

// Len returns the number of indexed points.
func (t *Tree) Len() int { return len(t.pts) }

// KNearest returns the indices of the k points nearest to point i, i itself
// included, by ascending distance (ties by index). A k above Len() yields
// every point; k <= 0 yields nil.
func (t *Tree) KNearest(i, k int) []int {
	return t.KNearestPoint(t.pts[i], k)
}

// KNearestPoint is KNearest for an arbitrary query position.
//
// Complexity: O(k log k + log n) on well-spread data.
func (t *Tree) KNearestPoint(q r3.Vector, k int) []int {
	if k <= 0 || t.tree == nil {
		return nil
	}
	k = min(k, len(t.pts))
	keeper := kdtree.NewNKeeper(k)
	t.tree.NearestSet(keeper, point{v: q, idx: -1})

	found := make([]kdtree.ComparableDist, 0, k)
	for _, cd := range keeper.Heap {
		if cd.Comparable != nil {
			found = append(found, cd)
		}
	}
	slices.SortFunc(found, func(a, b kdtree.ComparableDist) int {
		if c := cmp.Compare(a.Dist, b.Dist); c != 0 {
			return c
		}
		return cmp.Compare(a.Comparable.(point).idx, b.Comparable.(point).idx)
	})
	out := make([]int, len(found))
	for j, cd := range found {
		out[j] = cd.Comparable.(point).idx
	}

	return out
}
