// SPDX-License-Identifier: MIT

package mst_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/mst"
)

// ExampleCompute builds a forest over two components and walks one tree.
func ExampleCompute() {
	edges := []mst.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 2},
		{From: 3, To: 4, Weight: 7},
	}
	forest, total, err := mst.Compute(5, edges)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("edges:", len(forest), "weight:", total)

	_, _ = mst.Walk(5, forest, 0, func(parent, child int) error {
		fmt.Printf("%d -> %d\n", parent, child)
		return nil
	})
	// Output:
	// edges: 3 weight: 10
	// 0 -> 2
	// 2 -> 1
}
