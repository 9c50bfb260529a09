// SPDX-License-Identifier: MIT

package mst

import "fmt"

// WalkResult holds the outcome of a breadth-first walk:
//   - Order : vertices in visit sequence, root first.
//   - Depth : edges from the root, -1 when unreached.
//   - Parent: predecessor in the walk, -1 for the root and unreached vertices.
type WalkResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Walk traverses the forest edges (treated as undirected) breadth-first from
// root and calls visit(parent, child) for every tree edge in that order, the
// parent always visited before the child. Only root's tree is reached.
// A non-nil error from visit aborts the walk and is returned wrapped.
//
// Errors: ErrInvalidVertex.
// Complexity: O(V + E).
func Walk(n int, forest []Edge, root int, visit func(parent, child int) error) (*WalkResult, error) {
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root %d with n=%d", ErrInvalidVertex, root, n)
	}
	adj, err := NewAdjacency(n, forest)
	if err != nil {
		return nil, err
	}

	res := &WalkResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i], res.Parent[i] = -1, -1
	}

	queue := make([]int, 0, n)
	res.Depth[root] = 0
	queue = append(queue, root)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)
		for _, e := range adj[cur] {
			if res.Depth[e.To] >= 0 {
				continue
			}
			res.Depth[e.To] = res.Depth[cur] + 1
			res.Parent[e.To] = cur
			if visit != nil {
				if err = visit(cur, e.To); err != nil {
					return res, fmt.Errorf("mst: visit error at %d→%d: %w", cur, e.To, err)
				}
			}
			queue = append(queue, e.To)
		}
	}

	return res, nil
}

// Traverse is the allocation-free core of Walk over prebuilt adjacency: it
// reaches root's tree breadth-first, marks every reached vertex in seen and
// calls visit(parent, child) per tree edge. Vertices already marked in seen
// are never entered, so one seen slice can be shared to sweep a whole forest
// root by root.
//
// Errors: ErrInvalidVertex (root out of range or len(seen) != len(adj)).
func (adj Adjacency) Traverse(root int, seen []bool, visit func(parent, child int) error) error {
	if root < 0 || root >= len(adj) || len(seen) != len(adj) {
		return fmt.Errorf("%w: root %d with n=%d", ErrInvalidVertex, root, len(adj))
	}
	if seen[root] {
		return nil
	}
	seen[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range adj[cur] {
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			if err := visit(cur, e.To); err != nil {
				return fmt.Errorf("mst: visit error at %d→%d: %w", cur, e.To, err)
			}
			queue = append(queue, e.To)
		}
	}

	return nil
}
