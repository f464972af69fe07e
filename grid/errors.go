package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a grid with fewer than one row or column.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside [0,Columns)×[0,Rows).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBarrierLabel indicates an attempt to label a barrier cell.
	ErrBarrierLabel = errors.New("grid: barrier cells cannot carry a distance")
	// ErrInvalidDistance indicates a distance label below 1.
	ErrInvalidDistance = errors.New("grid: distance must be at least 1")
)
