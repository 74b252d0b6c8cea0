// SPDX-License-Identifier: MIT

// Package landscape: functional configuration for the Analyzer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors.
//
// Notes:
//   - Class normalization reproduces the reference tool: area statistics sum
//     the class-mask values of each patch (the class code for c≠0, 1 for the
//     class-0 inclusion mask) and divide the result by the class code. With
//     it disabled every member cell weighs 1 and nothing is divided, so
//     class 0 no longer fails with ErrDivisionByZero.
package landscape

import "github.com/katalvlaran/landmetrics/gridgraph"

// Defaults (single source of truth).
const (
	// DefaultConnectivity is the ecological patch convention: corners connect.
	DefaultConnectivity = gridgraph.Conn8

	// DefaultClassNormalization keeps the legacy divide-by-class-code numbers.
	DefaultClassNormalization = true

	// DefaultStrictMetricNames keeps the legacy ("None", 0.0) answer for
	// unknown metric names instead of ErrUnknownMetric.
	DefaultStrictMetricNames = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds Analyzer configuration. Build it with DefaultOptions and
// Option values; the zero value is not meaningful.
type Options struct {
	conn               gridgraph.Connectivity
	classNormalization bool
	strictMetricNames  bool
	logger             Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		conn:               DefaultConnectivity,
		classNormalization: DefaultClassNormalization,
		strictMetricNames:  DefaultStrictMetricNames,
		logger:             nopLogger{},
	}
}

// WithConnectivity selects Conn4 or Conn8 patch labeling.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) { o.conn = c }
}

// WithClassNormalization toggles the divide-by-class-code convention.
func WithClassNormalization(on bool) Option {
	return func(o *Options) { o.classNormalization = on }
}

// WithStrictMetricNames makes ComputeMetric return ErrUnknownMetric for
// names outside the catalog.
func WithStrictMetricNames() Option {
	return func(o *Options) { o.strictMetricNames = true }
}

// WithLogger injects a Logger. nil restores the no-op logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.logger = nopLogger{}
			return
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
