// SPDX-License-Identifier: MIT

package normals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/katalvlaran/lvgeom/mst"
)

// DefaultK is the neighbourhood size used when callers have no better choice.
const DefaultK = 16

// Sentinel errors for estimation and reorientation.
var (
	// ErrNilCloud is returned for a nil cloud.
	ErrNilCloud = errors.New("normals: cloud is nil")

	// ErrBadK is returned when k < 1.
	ErrBadK = errors.New("normals: k must be >= 1")

	// ErrNoNormals is returned by Reorient when the cloud has no "v:normal".
	ErrNoNormals = errors.New("normals: cloud has no normals")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("normals: invalid option supplied")
)

var pkgLogger = logging.NewHolder("normals")

// SetLogger replaces the package logger used when no WithLogger option is given.
func SetLogger(l *slog.Logger) { pkgLogger.Set(l) }

// Options configures Estimate and Reorient.
type Options struct {
	// Ctx cancels the parallel estimation between points.
	Ctx context.Context

	// Workers is the number of goroutines Estimate fans out to (>= 1).
	Workers int

	// Method selects the spanning-forest algorithm used by Reorient.
	Method mst.Method

	// Logger overrides the package logger.
	Logger *logging.Logger

	err error
}

// Option configures Options. Invalid values are recorded and surfaced as
// ErrOptionViolation when the operation runs.
type Option func(*Options)

// DefaultOptions returns serial estimation, Kruskal forests and the package logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Method:  mst.MethodKruskal,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers fans Estimate out over n goroutines; results do not depend on n.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMSTMethod selects Kruskal or Prim for Reorient.
func WithMSTMethod(m mst.Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithLogger routes this call's log lines to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = logging.New(l).Component("normals")
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Logger == nil {
		o.Logger = pkgLogger.Get()
	}

	return o, nil
}
