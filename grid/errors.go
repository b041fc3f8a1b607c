// Package grid: sentinel error set. All public operations return these
// sentinels (possibly wrapped with method context via %w) and callers match
// them with errors.Is. No operation panics on user-triggered conditions.
package grid

import "errors"

var (
	// ErrInvalidDimensions is returned when a constructor receives a negative
	// row or column count. Zero is legal (empty grid).
	ErrInvalidDimensions = errors.New("grid: dimensions must be non-negative")

	// ErrDataLength is returned by NewFromValues when the supplied values
	// slice does not contain exactly rows×cols elements.
	ErrDataLength = errors.New("grid: values length does not match dimensions")

	// ErrRagged is returned by From2D when input rows differ in length.
	ErrRagged = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange is returned by At/Set when either coordinate lies outside
	// the declared bounds.
	ErrOutOfRange = errors.New("grid: cell index out of range")
)
