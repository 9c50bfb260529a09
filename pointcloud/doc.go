// SPDX-License-Identifier: MIT

// Package pointcloud is the point-cloud collaborator of lvgeom: an ordered
// set of 3D positions with optional per-point normals and any number of
// named, typed per-point properties.
//
// Properties are dense arrays indexed by point index. Every property grows
// with AddPoint, so for every registered name len(data) == Len() holds at
// all times. Names follow the "v:" convention for vertex properties:
//
//	v:point            r3.Vector (always present, reserved)
//	v:normal           r3.Vector (present once normals are set)
//	v:curvature        float64   (written by normals.Estimate)
//	v:primitive_type   int       (written by ransac)
//	v:primitive_index  int       (written by ransac)
//
// Concurrency: the property registry is guarded by an RWMutex, so lookups
// may race with registration. Element writes into a property's Data slice
// are not synchronized; concurrent writers must touch disjoint indices.
package pointcloud
