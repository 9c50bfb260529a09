// SPDX-License-Identifier: MIT

package matrix

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvgeom/internal/logging"
)

// Epsilon is the pivot threshold below which LU, Gauss-Jordan and the general
// Inverse declare the input singular.
const Epsilon = 1e-12

// unitTol bounds |len-1| for rotation axes and quaternions in lvgeomdebug builds.
const unitTol = 1e-6

// minScale is the smallest row magnitude LU accepts as an implicit scale factor.
const minScale = math.SmallestNonzeroFloat64

// Matrix is a two-dimensional mutable array of float64 values.
// Every accessor enforces bounds and returns ErrOutOfRange on misuse.
//
// Complexity: all methods are O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	At(i, j int) (float64, error)

	// Set assigns v at (i, j).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

var logger = logging.NewHolder("matrix")

// SetLogger routes the engine's error lines (singular input, invalid rotation
// order) to l. Passing nil restores the default stderr logger.
func SetLogger(l *slog.Logger) { logger.Set(l) }
