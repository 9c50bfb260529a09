// SPDX-License-Identifier: MIT

package normals

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvgeom/knn"
	"github.com/katalvlaran/lvgeom/mst"
	"github.com/katalvlaran/lvgeom/pointcloud"
)

// Reorient flips normals in place so that neighbouring normals agree.
// Implementation:
//   - Stage 1: symmetric kNN graph, one edge per unordered pair, weight
//     1-|nᵢ·nⱼ| (parallel normals are cheap to traverse).
//   - Stage 2: minimum spanning forest (Options.Method).
//   - Stage 3: per tree, the point with the largest z is the root and its
//     normal is turned to face +z; a breadth-first walk flips every child
//     whose normal points against its parent's.
//
// Errors: ErrNilCloud, ErrBadK, ErrNoNormals, ErrOptionViolation.
// Complexity: O(n·k log(n·k)).
func Reorient(cloud *pointcloud.Cloud, k int, opts ...Option) error {
	if cloud == nil {
		return ErrNilCloud
	}
	if k < 1 {
		return ErrBadK
	}
	if !cloud.HasNormals() {
		return ErrNoNormals
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	n := cloud.Len()
	if n == 0 {
		return nil
	}
	pts := cloud.Positions()
	nrm := cloud.Normals()

	// Stage 1
	tree := knn.NewTree(pts)
	seenPair := make(map[[2]int]struct{}, n*k)
	edges := make([]mst.Edge, 0, n*k)
	for i := 0; i < n; i++ {
		for _, j := range tree.KNearest(i, k) {
			if j == i {
				continue
			}
			key := [2]int{min(i, j), max(i, j)}
			if _, dup := seenPair[key]; dup {
				continue
			}
			seenPair[key] = struct{}{}
			edges = append(edges, mst.Edge{From: key[0], To: key[1], Weight: 1 - math.Abs(nrm[i].Dot(nrm[j]))})
		}
	}

	// Stage 2
	forest, _, err := mst.Compute(n, edges, mst.WithMethod(o.Method))
	if err != nil {
		return fmt.Errorf("normals: %w", err)
	}
	adj, err := mst.NewAdjacency(n, forest)
	if err != nil {
		return fmt.Errorf("normals: %w", err)
	}

	// Stage 3: visiting candidates by descending z makes the first unseen
	// vertex of every tree its highest point.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(pts[b].Z, pts[a].Z) })

	seen := make([]bool, n)
	var trees, flipped int
	flip := func(parent, child int) error {
		if nrm[child].Dot(nrm[parent]) < 0 {
			nrm[child] = nrm[child].Mul(-1)
			flipped++
		}
		return nil
	}
	for _, root := range order {
		if seen[root] {
			continue
		}
		trees++
		if nrm[root].Dot(r3.Vector{Z: 1}) < 0 {
			nrm[root] = nrm[root].Mul(-1)
			flipped++
		}
		if err = adj.Traverse(root, seen, flip); err != nil {
			return err
		}
	}
	o.Logger.Debug("normals reoriented", "points", n, "trees", trees, "flipped", flipped)

	return nil
}
