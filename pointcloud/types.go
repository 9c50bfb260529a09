// SPDX-License-Identifier: MIT

package pointcloud

import (
	"errors"
	"sync"

	"github.com/golang/geo/r3"
)

// Reserved and well-known property names.
const (
	PropPoint          = "v:point"
	PropNormal         = "v:normal"
	PropCurvature      = "v:curvature"
	PropPrimitiveType  = "v:primitive_type"
	PropPrimitiveIndex = "v:primitive_index"
)

// Sentinel errors for cloud and property operations.
var (
	// ErrPropertyExists indicates AddProperty was called with a registered name.
	ErrPropertyExists = errors.New("pointcloud: property already exists")

	// ErrPropertyNotFound indicates a lookup of an unregistered name.
	ErrPropertyNotFound = errors.New("pointcloud: property not found")

	// ErrPropertyType indicates a property exists with a different element type.
	ErrPropertyType = errors.New("pointcloud: property has a different element type")

	// ErrReservedProperty indicates an attempt to add or remove "v:point".
	ErrReservedProperty = errors.New("pointcloud: property name is reserved")

	// ErrLengthMismatch indicates a bulk setter received a slice whose length differs from Len().
	ErrLengthMismatch = errors.New("pointcloud: length does not match point count")
)

// propertyArray is the type-erased view the registry needs to keep every
// property in lockstep with the point count.
type propertyArray interface {
	Name() string
	grow()
}

// Property is a named dense per-point array of T.
type Property[T any] struct {
	name string
	init T
	data []T
}

// Name returns the registered name.
func (p *Property[T]) Name() string { return p.name }

// Get returns the value at point i.
func (p *Property[T]) Get(i int) T { return p.data[i] }

// Set assigns the value at point i.
func (p *Property[T]) Set(i int, v T) { p.data[i] = v }

// Data exposes the backing slice (no copy). Writes are visible to every holder.
func (p *Property[T]) Data() []T { return p.data }

// Fill resets every element to v.
func (p *Property[T]) Fill(v T) {
	for i := range p.data {
		p.data[i] = v
	}
}

func (p *Property[T]) grow() { p.data = append(p.data, p.init) }

// Cloud is an ordered collection of points with named per-point properties.
type Cloud struct {
	mu     sync.RWMutex
	props  map[string]propertyArray
	order  []string // registration order, for PropertyNames
	points *Property[r3.Vector]
}
