// SPDX-License-Identifier: MIT

package ransac

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvgeom/internal/logging"
)

// Defaults match the usual efficient-RANSAC settings.
const (
	DefaultMinSupport          = 1000
	DefaultDistThreshold       = 0.005
	DefaultBitmapResolution    = 0.02
	DefaultNormalThreshold     = 0.8
	DefaultOverlookProbability = 0.001
	DefaultMaxTrials           = 1 << 20
	DefaultSeed                = 1
)

// MinBitmapResolution keeps connectivity cell indices within int32 over the
// bounding box.
const MinBitmapResolution = 1.0 / (1 << 30)

// Options configures one detection run.
type Options struct {
	// MinSupport is the smallest number of inliers of an accepted primitive.
	MinSupport int

	// DistThreshold is the inlier distance, relative to the bounding-box max extent.
	DistThreshold float64

	// BitmapResolution is the connectivity grid cell size, relative to the
	// bounding-box max extent.
	BitmapResolution float64

	// NormalThreshold is the cosine of the largest normal deviation of an inlier.
	NormalThreshold float64

	// OverlookProbability bounds the probability of missing a primitive.
	OverlookProbability float64

	// MaxTrials caps the number of minimal samples drawn.
	MaxTrials int

	// Seed makes sampling reproducible.
	Seed int64

	// Logger overrides the package logger.
	Logger *logging.Logger

	err error
}

// Option configures Options. Invalid values are recorded and returned as
// ErrOptionViolation by Detect.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinSupport:          DefaultMinSupport,
		DistThreshold:       DefaultDistThreshold,
		BitmapResolution:    DefaultBitmapResolution,
		NormalThreshold:     DefaultNormalThreshold,
		OverlookProbability: DefaultOverlookProbability,
		MaxTrials:           DefaultMaxTrials,
		Seed:                DefaultSeed,
	}
}

// WithMinSupport sets the minimal inlier count (>= 1).
func WithMinSupport(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: min support must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MinSupport = n
	}
}

// WithDistThreshold sets the relative inlier distance (> 0).
func WithDistThreshold(d float64) Option {
	return func(o *Options) {
		if !(d > 0) {
			o.err = fmt.Errorf("%w: distance threshold must be > 0 (%g)", ErrOptionViolation, d)
			return
		}
		o.DistThreshold = d
	}
}

// WithBitmapResolution sets the relative connectivity cell size
// (>= MinBitmapResolution).
func WithBitmapResolution(r float64) Option {
	return func(o *Options) {
		if !(r >= MinBitmapResolution) {
			o.err = fmt.Errorf("%w: bitmap resolution must be >= %g (%g)", ErrOptionViolation, MinBitmapResolution, r)
			return
		}
		o.BitmapResolution = r
	}
}

// WithNormalThreshold sets the normal-deviation cosine, in [0, 1].
func WithNormalThreshold(c float64) Option {
	return func(o *Options) {
		if !(c >= 0 && c <= 1) {
			o.err = fmt.Errorf("%w: normal threshold must be in [0,1] (%g)", ErrOptionViolation, c)
			return
		}
		o.NormalThreshold = c
	}
}

// WithOverlookProbability sets the miss probability, in (0, 1).
func WithOverlookProbability(p float64) Option {
	return func(o *Options) {
		if !(p > 0 && p < 1) {
			o.err = fmt.Errorf("%w: overlook probability must be in (0,1) (%g)", ErrOptionViolation, p)
			return
		}
		o.OverlookProbability = p
	}
}

// WithMaxTrials caps the number of drawn samples (>= 1).
func WithMaxTrials(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max trials must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTrials = n
	}
}

// WithSeed seeds the sampler.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes this run's log lines to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = logging.New(l).Component("ransac")
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
