// SPDX-License-Identifier: MIT

package pixgrid

import "errors"

// Sentinel errors for pixgrid operations. Callers match via errors.Is.
var (
	// ErrBadShape is returned when a requested shape has a negative extent.
	ErrBadShape = errors.New("pixgrid: rows and columns must be non-negative")

	// ErrOutOfRange indicates a row or column index past the grid extent.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("pixgrid: row or column out of range")

	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("pixgrid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pixgrid: all rows must have the same length")
)
