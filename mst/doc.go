// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning forests over integer-indexed
// vertices and walks the resulting trees.
//
// Vertices are 0..n-1; edges are undirected and carry float64 weights.
// Unlike a spanning-tree API that fails on disconnected input, every
// function here returns a spanning forest: one tree per connected component.
//
// Algorithms:
//   - Kruskal: sort edges by weight (stable), union-find with path
//     compression and union by rank. O(E log E).
//   - Prim: grow a tree from a root with a binary min-heap of candidate
//     edges; Compute restarts it from every unvisited vertex. O(E log E).
//   - Walk: breadth-first parent→child traversal of a forest from one root.
//
// Both algorithms break weight ties deterministically by input order, so
// identical inputs always give identical forests.
package mst
