// SPDX-License-Identifier: MIT

package pointcloud

import (
	"math"
	"slices"

	"github.com/golang/geo/r3"
)

// New returns an empty cloud with only the "v:point" property.
func New() *Cloud {
	pts := &Property[r3.Vector]{name: PropPoint}
	return &Cloud{
		props:  map[string]propertyArray{PropPoint: pts},
		order:  []string{PropPoint},
		points: pts,
	}
}

// FromPoints builds a cloud holding a copy of pts.
func FromPoints(pts []r3.Vector) *Cloud {
	c := New()
	c.points.data = slices.Clone(pts)

	return c
}

// AddPoint appends p, grows every property by its init value and returns the
// new point's index.
//
// Complexity: O(#properties) amortized.
func (c *Cloud) AddPoint(p r3.Vector) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, name := range c.order {
		c.props[name].grow()
	}
	idx := len(c.points.data) - 1
	c.points.data[idx] = p

	return idx
}

// Len returns the number of points.
func (c *Cloud) Len() int { return len(c.points.data) }

// Position returns the position of point i.
func (c *Cloud) Position(i int) r3.Vector { return c.points.data[i] }

// Positions exposes the position array (no copy).
func (c *Cloud) Positions() []r3.Vector { return c.points.data }

// HasNormals reports whether "v:normal" is registered.
func (c *Cloud) HasNormals() bool { return c.HasProperty(PropNormal) }

// Normals exposes the normal array, or nil when the cloud has none.
func (c *Cloud) Normals() []r3.Vector {
	p, err := GetProperty[r3.Vector](c, PropNormal)
	if err != nil {
		return nil
	}

	return p.data
}

// SetNormals copies n into "v:normal", registering it when needed.
//
// Errors: ErrLengthMismatch, ErrPropertyType.
func (c *Cloud) SetNormals(n []r3.Vector) error {
	if len(n) != c.Len() {
		return ErrLengthMismatch
	}
	p, err := GetOrAddProperty(c, PropNormal, r3.Vector{})
	if err != nil {
		return err
	}
	copy(p.data, n)

	return nil
}

// HasProperty reports whether name is registered.
func (c *Cloud) HasProperty(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.props[name]

	return ok
}

// PropertyNames lists registered names in registration order.
func (c *Cloud) PropertyNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.order)
}

// RemoveProperty unregisters name. Removing "v:point" is refused.
//
// Errors: ErrReservedProperty, ErrPropertyNotFound.
func (c *Cloud) RemoveProperty(name string) error {
	if name == PropPoint {
		return ErrReservedProperty
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.props[name]; !ok {
		return ErrPropertyNotFound
	}
	delete(c.props, name)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == name })

	return nil
}

// AddProperty registers a new property of element type T, every element set to init.
//
// Errors: ErrReservedProperty, ErrPropertyExists.
func AddProperty[T any](c *Cloud, name string, init T) (*Property[T], error) {
	if name == PropPoint {
		return nil, ErrReservedProperty
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.props[name]; ok {
		return nil, ErrPropertyExists
	}

	return addLocked(c, name, init), nil
}

func addLocked[T any](c *Cloud, name string, init T) *Property[T] {
	p := &Property[T]{name: name, init: init, data: make([]T, len(c.points.data))}
	for i := range p.data {
		p.data[i] = init
	}
	c.props[name] = p
	c.order = append(c.order, name)

	return p
}

// GetProperty looks up name and asserts its element type.
//
// Errors: ErrPropertyNotFound, ErrPropertyType.
func GetProperty[T any](c *Cloud, name string) (*Property[T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, ok := c.props[name]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	p, ok := raw.(*Property[T])
	if !ok {
		return nil, ErrPropertyType
	}

	return p, nil
}

// GetOrAddProperty returns the existing property or registers it with init.
// An existing property keeps its values.
//
// Errors: ErrPropertyType, ErrReservedProperty (T is not r3.Vector for "v:point").
func GetOrAddProperty[T any](c *Cloud, name string, init T) (*Property[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if raw, ok := c.props[name]; ok {
		p, ok := raw.(*Property[T])
		if !ok {
			if name == PropPoint {
				return nil, ErrReservedProperty
			}
			return nil, ErrPropertyType
		}
		return p, nil
	}

	return addLocked(c, name, init), nil
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vector
}

// IsEmpty reports whether the box contains no point (Min > Max on some axis).
func (b Box) IsEmpty() bool { return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z }

// Diagonal returns the length of the box diagonal; 0 for an empty box.
func (b Box) Diagonal() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Sub(b.Min).Norm()
}

// MaxExtent returns the largest side length; 0 for an empty box.
func (b Box) MaxExtent() float64 {
	if b.IsEmpty() {
		return 0
	}
	d := b.Max.Sub(b.Min)
	return math.Max(d.X, math.Max(d.Y, d.Z))
}

// Center returns the box midpoint.
func (b Box) Center() r3.Vector { return b.Min.Add(b.Max).Mul(0.5) }

func emptyBox() Box {
	inf := math.Inf(1)
	return Box{Min: r3.Vector{X: inf, Y: inf, Z: inf}, Max: r3.Vector{X: -inf, Y: -inf, Z: -inf}}
}

func (b *Box) extend(p r3.Vector) {
	b.Min = r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
}

// BoundingBox returns the axis-aligned bounds of all positions.
// An empty cloud yields an empty box (Min = +Inf, Max = -Inf).
//
// Complexity: O(n).
func (c *Cloud) BoundingBox() Box {
	b := emptyBox()
	for _, p := range c.points.data {
		b.extend(p)
	}

	return b
}

// BoundingBoxOf returns the bounds of the listed points only.
func (c *Cloud) BoundingBoxOf(indices []int) Box {
	b := emptyBox()
	for _, i := range indices {
		b.extend(c.points.data[i])
	}

	return b
}
