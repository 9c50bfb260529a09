// SPDX-License-Identifier: MIT

package mst

import (
	"cmp"
	"slices"
)

// disjointSet is union-find over 0..n-1 with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find is iterative with path halving to avoid deep recursion.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; it reports false when they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}

// Kruskal computes a minimum spanning forest of the undirected graph with
// vertices 0..n-1.
//
// Steps:
//  1. Validate endpoints.
//  2. Drop self-loops and stable-sort the rest by ascending weight, so equal
//     weights keep input order.
//  3. Accept each edge joining two different components until n-1 edges are taken.
//
// Errors: ErrInvalidVertex.
// Complexity: O(E log E + α(V)·E) time, O(E + V) memory.
func Kruskal(n int, edges []Edge) ([]Edge, float64, error) {
	if err := validateEdges(n, edges); err != nil {
		return nil, 0, err
	}
	if n <= 1 {
		return []Edge{}, 0, nil
	}

	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From != e.To {
			sorted = append(sorted, e)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	ds := newDisjointSet(n)
	forest := make([]Edge, 0, n-1)
	var total float64
	for _, e := range sorted {
		if ds.union(e.From, e.To) {
			forest = append(forest, e)
			total += e.Weight
			if len(forest) == n-1 {
				break
			}
		}
	}

	return forest, total, nil
}
