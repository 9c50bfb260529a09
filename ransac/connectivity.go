// SPDX-License-Identifier: MIT

package ransac

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvgeom/mst"
)

// forward holds the 13 neighbour offsets lexicographically after (0,0,0);
// together with their negations they form the 26-neighbourhood.
var forward = func() []cellKey {
	var out []cellKey
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				if dx > 0 || (dx == 0 && dy > 0) || (dx == 0 && dy == 0 && dz > 0) {
					out = append(out, cellKey{dx, dy, dz})
				}
			}
		}
	}
	return out
}()

func gridKey(p, origin r3.Vector, cell float64) cellKey {
	d := p.Sub(origin)
	return cellKey{
		int32(math.Floor(d.X / cell)),
		int32(math.Floor(d.Y / cell)),
		int32(math.Floor(d.Z / cell)),
	}
}

// largestComponent keeps the inliers of the largest group of 26-connected
// occupied grid cells (by point count; ties go to the component seen first).
// Order of the kept inliers is preserved.
func largestComponent(pts []r3.Vector, inliers []uint32, origin r3.Vector, cell float64) []uint32 {
	if len(inliers) == 0 {
		return inliers
	}
	ids := make(map[cellKey]int)
	keys := make([]cellKey, 0)
	cellOf := make([]int, len(inliers))
	var counts []int
	for i, idx := range inliers {
		k := gridKey(pts[idx], origin, cell)
		id, ok := ids[k]
		if !ok {
			id = len(counts)
			ids[k] = id
			keys = append(keys, k)
			counts = append(counts, 0)
		}
		counts[id]++
		cellOf[i] = id
	}
	if len(counts) == 1 {
		return inliers
	}

	var edges []mst.Edge
	for id, k := range keys {
		for _, d := range forward {
			if nb, ok := ids[cellKey{k.x + d.x, k.y + d.y, k.z + d.z}]; ok {
				edges = append(edges, mst.Edge{From: id, To: nb})
			}
		}
	}
	adj, err := mst.NewAdjacency(len(counts), edges)
	if err != nil {
		return inliers
	}

	comp := make([]int, len(counts))
	seen := make([]bool, len(counts))
	var sizes []int
	for root := range counts {
		if seen[root] {
			continue
		}
		c := len(sizes)
		size := counts[root]
		comp[root] = c
		_ = adj.Traverse(root, seen, func(_, child int) error {
			comp[child] = c
			size += counts[child]
			return nil
		})
		sizes = append(sizes, size)
	}

	best := 0
	for c, n := range sizes {
		if n > sizes[best] {
			best = c
		}
	}
	out := make([]uint32, 0, sizes[best])
	for i, idx := range inliers {
		if comp[cellOf[i]] == best {
			out = append(out, idx)
		}
	}

	return out
}
