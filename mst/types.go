// SPDX-License-Identifier: MIT

package mst

import (
	"errors"
	"fmt"
)

// Sentinel errors for forest computation.
var (
	// ErrInvalidVertex indicates an edge endpoint or root outside [0, n).
	ErrInvalidVertex = errors.New("mst: vertex out of range")

	// ErrBadMethod indicates an unknown Method in Options.
	ErrBadMethod = errors.New("mst: unknown method")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mst: invalid option supplied")
)

// Method selects the forest algorithm.
type Method string

const (
	// MethodKruskal sorts all edges and merges components with union-find.
	MethodKruskal Method = "kruskal"

	// MethodPrim grows each tree from a root using a min-heap.
	MethodPrim Method = "prim"
)

// Edge is an undirected weighted edge between vertices From and To.
type Edge struct {
	From, To int
	Weight   float64
}

// Options configures Compute.
type Options struct {
	// Method is MethodKruskal (default) or MethodPrim.
	Method Method

	// Root is the first vertex Prim grows from; ignored by Kruskal.
	Root int

	err error
}

// Option configures Options. Invalid values are recorded and surfaced as
// ErrOptionViolation when Compute runs.
type Option func(*Options)

// DefaultOptions selects Kruskal rooted at vertex 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// WithMethod sets the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets Prim's starting vertex. Negative roots are rejected.
func WithRoot(root int) Option {
	return func(o *Options) {
		if root < 0 {
			o.err = fmt.Errorf("%w: root cannot be negative (%d)", ErrOptionViolation, root)
			return
		}
		o.Root = root
	}
}

// validateEdges checks every endpoint against n.
func validateEdges(n int, edges []Edge) error {
	for k, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d-%d) with n=%d", ErrInvalidVertex, k, e.From, e.To, n)
		}
	}

	return nil
}

// Compute runs the configured algorithm and returns the spanning forest
// with its total weight.
func Compute(n int, edges []Edge, opts ...Option) ([]Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		adj, err := NewAdjacency(n, edges)
		if err != nil {
			return nil, 0, err
		}
		return PrimForest(adj, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrBadMethod, o.Method)
	}
}
