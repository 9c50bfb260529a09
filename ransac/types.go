// SPDX-License-Identifier: MIT

package ransac

import (
	"errors"
	"log/slog"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvgeom/internal/logging"
)

// PrimType identifies a primitive kind. The values are written verbatim into
// "v:primitive_type"; do not reorder.
type PrimType int

const (
	Plane    PrimType = 0
	Sphere   PrimType = 1
	Cylinder PrimType = 2
	Cone     PrimType = 3
	Torus    PrimType = 4
	Unknown  PrimType = -1
)

// String returns the lower-case name of t.
func (t PrimType) String() string {
	switch t {
	case Plane:
		return "plane"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Torus:
		return "torus"
	default:
		return "unknown"
	}
}

// valid reports whether t names a detectable primitive.
func (t PrimType) valid() bool { return t >= Plane && t <= Torus }

// Sentinel errors.
var (
	// ErrNilCloud is returned for a nil cloud.
	ErrNilCloud = errors.New("ransac: cloud is nil")

	// ErrNoNormals is returned when the cloud has no "v:normal".
	ErrNoNormals = errors.New("ransac: cloud has no normals")

	// ErrUnknownType is returned when adding a type outside Plane..Torus.
	ErrUnknownType = errors.New("ransac: unknown primitive type")

	// ErrIndexOutOfRange is returned when a subset index is not a point of the cloud.
	ErrIndexOutOfRange = errors.New("ransac: vertex index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ransac: invalid option supplied")
)

var pkgLogger = logging.NewHolder("ransac")

// SetLogger replaces the package logger used when no WithLogger option is given.
func SetLogger(l *slog.Logger) { pkgLogger.Set(l) }

// PlanePrim describes a detected plane.
type PlanePrim struct {
	Index    int        // position among all primitives of the detection
	Vertices []int      // cloud indices of the inliers
	Position r3.Vector  // a point on the plane (inlier centroid)
	Normal   r3.Vector  // unit normal, agreeing with the majority of inlier normals
	Equation [4]float64 // (a, b, c, d) of ax + by + cz + d = 0, with (a, b, c) = Normal
}

// SignedDistance returns the distance of p from the plane, positive on the
// side Normal points to.
func (p PlanePrim) SignedDistance(q r3.Vector) float64 { return p.Normal.Dot(q.Sub(p.Position)) }

// SpherePrim describes a detected sphere.
type SpherePrim struct {
	Index    int
	Vertices []int
	Center   r3.Vector
	Radius   float64
}

// CylinderPrim describes a detected cylinder.
type CylinderPrim struct {
	Index     int
	Vertices  []int
	Radius    float64
	Position  r3.Vector // center of the bottom circle (lowest inlier along Direction)
	Direction r3.Vector // unit axis
}

// ConePrim describes a detected cone.
type ConePrim struct {
	Index     int
	Vertices  []int
	Apex      r3.Vector
	Direction r3.Vector // unit axis pointing from the apex into the cone
	Angle     float64   // half opening angle in radians
}

// TorusPrim describes a detected torus.
type TorusPrim struct {
	Index       int
	Vertices    []int
	Center      r3.Vector
	Axis        r3.Vector
	MajorRadius float64
	MinorRadius float64
}
