// SPDX-License-Identifier: MIT

package mst

import (
	"container/heap"
	"fmt"
)

// Adjacency lists, for every vertex, the edges incident to it oriented
// outward (From == the vertex).
type Adjacency [][]Edge

// NewAdjacency builds symmetric adjacency lists for n vertices. Self-loops are dropped.
//
// Errors: ErrInvalidVertex.
func NewAdjacency(n int, edges []Edge) (Adjacency, error) {
	if err := validateEdges(n, edges); err != nil {
		return nil, err
	}
	adj := make(Adjacency, n)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	return adj, nil
}

// Prim grows a minimum spanning tree of root's connected component.
//
// Steps:
//  1. Mark root visited; push its incident edges into a min-heap.
//  2. Pop the lightest edge; skip it if its far end is visited, otherwise
//     take it and push the far end's edges to unvisited vertices.
//
// Errors: ErrInvalidVertex.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(adj Adjacency, root int) ([]Edge, float64, error) {
	if root < 0 || root >= len(adj) {
		return nil, 0, fmt.Errorf("%w: root %d with n=%d", ErrInvalidVertex, root, len(adj))
	}
	visited := make([]bool, len(adj))
	tree, total := primFrom(adj, root, visited)

	return tree, total, nil
}

// PrimForest runs Prim from root, then from every still-unvisited vertex in
// ascending order, returning the union of the trees.
func PrimForest(adj Adjacency, root int) ([]Edge, float64, error) {
	n := len(adj)
	if n == 0 {
		return []Edge{}, 0, nil
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: root %d with n=%d", ErrInvalidVertex, root, n)
	}
	visited := make([]bool, n)
	forest, total := primFrom(adj, root, visited)
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		tree, w := primFrom(adj, v, visited)
		forest = append(forest, tree...)
		total += w
	}

	return forest, total, nil
}

func primFrom(adj Adjacency, root int, visited []bool) ([]Edge, float64) {
	var (
		tree  []Edge
		total float64
		seq   int
	)
	pq := &edgePQ{}
	push := func(v int) {
		for _, e := range adj[v] {
			if !visited[e.To] {
				heap.Push(pq, queued{edge: e, seq: seq})
				seq++
			}
		}
	}
	visited[root] = true
	push(root)
	for pq.Len() > 0 {
		e := heap.Pop(pq).(queued).edge
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		tree = append(tree, e)
		total += e.Weight
		push(e.To)
	}

	return tree, total
}

// queued orders equal weights by push sequence for determinism.
type queued struct {
	edge Edge
	seq  int
}

// edgePQ implements heap.Interface as a min-heap by (Weight, seq).
type edgePQ []queued

func (pq edgePQ) Len() int { return len(pq) }
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}
	return pq[i].seq < pq[j].seq
}
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x any)   { *pq = append(*pq, x.(queued)) }
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
