// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"log/slog"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvgeom/internal/logging"
)

// BoundaryType selects the derivative prescribed at one end of a spline.
// The zero value is SecondDeriv, so zero-valued splines are natural.
type BoundaryType int

const (
	// SecondDeriv prescribes y'' at the end; value 0 gives a natural spline.
	SecondDeriv BoundaryType = iota
	// FirstDeriv prescribes y' at the end (clamped spline).
	FirstDeriv
)

// Sentinel errors.
var (
	// ErrTooFewPoints is returned when fewer than two samples remain.
	ErrTooFewPoints = errors.New("spline: at least two samples required")

	// ErrLengthMismatch is returned when parameter and value counts differ.
	ErrLengthMismatch = errors.New("spline: parameter and value counts differ")

	// ErrNotIncreasing is returned by Interpolator.SetData for knots that are
	// not strictly increasing.
	ErrNotIncreasing = errors.New("spline: knots must be strictly increasing")

	// ErrDimensionMismatch is returned when curve points differ in dimension.
	ErrDimensionMismatch = errors.New("spline: points differ in dimension")
)

var logger = logging.NewHolder("spline")

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Point is a fixed-dimension point usable as a curve sample. P is the
// implementing type itself.
type Point[P any, T constraints.Float] interface {
	// Dim is the number of coordinates.
	Dim() int
	// At returns coordinate i in [0, Dim()).
	At(i int) T
	// Distance is the Euclidean distance to o.
	Distance(o P) T
	// With builds a point of the same type from coords; the receiver may be
	// the zero value.
	With(coords []T) P
}
