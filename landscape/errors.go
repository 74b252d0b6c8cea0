// SPDX-License-Identifier: MIT
// Package landscape: sentinel error set.
//
// Structural failures (bad grid, non-integral codes, nothing to classify) are
// returned as errors. Undefined metric values are NOT errors; they travel as a
// Result.Status so that a batch over many metrics never aborts for one value.
// The single exception is ErrDivisionByZero for the class-code divisor, which
// callers are expected to guard against (class 0 with normalization on).

package landscape

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("landscape: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("landscape: all grid rows must have the same length")

	// ErrInvalidData indicates non-integral (or non-finite) class codes in a
	// grid declared categorical.
	ErrInvalidData = errors.New("landscape: class codes must be integral")

	// ErrEmptyClassSet indicates no classes remain after excluding no-data.
	ErrEmptyClassSet = errors.New("landscape: no classes left after excluding no-data")

	// ErrDivisionByZero is returned by area metrics normalized by the class
	// code when that code is 0.
	ErrDivisionByZero = errors.New("landscape: division by zero")

	// ErrUnknownMetric is returned for unrecognised metric names in strict mode.
	ErrUnknownMetric = errors.New("landscape: unknown metric")

	// ErrInvalidCellSize indicates a non-positive or non-finite cell size.
	ErrInvalidCellSize = errors.New("landscape: cell size must be finite and > 0")
)
