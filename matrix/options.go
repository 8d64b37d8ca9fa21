// SPDX-License-Identifier: MIT

// Package matrix: functional options for tolerant comparison.
//
// AllClose and its complex twin accept ...Option; Solve and Inverse read the
// pivot tolerance from the same set. Constructors panic only on
// nonsensical values (programmer error); gatherOptions resolves defaults.

package matrix

import "math"

// Defaults (single source of truth).
const (
	// DefaultRelTol is the relative tolerance of AllClose.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the absolute tolerance of AllClose.
	DefaultAbsTol = 1e-8
)

const (
	panicRelTolInvalid   = "matrix: WithRelTol: tolerance must be finite, non-negative"
	panicAbsTolInvalid   = "matrix: WithAbsTol: tolerance must be finite, non-negative"
	panicPivotTolInvalid = "matrix: WithPivotTol: tolerance must be finite, non-negative"
)

// Option mutates comparison options. Applying it twice is harmless.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	rtol float64
	atol float64
	ptol float64 // < 0: n·machine epsilon of the element type
}

// WithRelTol sets the relative tolerance rtol in |a-b| <= atol + rtol·|b|.
// It panics if rtol is negative, NaN or infinite.
func WithRelTol(rtol float64) Option {
	if !validTol(rtol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithAbsTol sets the absolute tolerance atol in |a-b| <= atol + rtol·|b|.
// It panics if atol is negative, NaN or infinite.
func WithAbsTol(atol float64) Option {
	if !validTol(atol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithTolerance sets both tolerances to eps, the behaviour of a single-epsilon
// "fuzzy equals".
func WithTolerance(eps float64) Option {
	if !validTol(eps) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.rtol, o.atol = eps, eps }
}

// WithPivotTol sets the relative pivot tolerance of Solve and Inverse: a
// pivot p of an n×n matrix is treated as zero when |p| <= tol·max|aᵢⱼ|.
// The default is n times the machine epsilon of the element type (zero for
// integers, so only exact zero pivots fail). It panics if tol is negative,
// NaN or infinite.
func WithPivotTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.ptol = tol }
}

func validTol(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func defaultOptions() Options {
	return Options{rtol: DefaultRelTol, atol: DefaultAbsTol, ptol: -1}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
