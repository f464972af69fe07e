// Package propagate provides tunable options and error definitions
// for multi-source layered propagation over a grid.Grid.
package propagate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
)

// Sentinel errors for propagation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("propagate: grid is nil")

	// ErrSourceOutOfBounds is returned when a source coordinate lies outside the grid.
	ErrSourceOutOfBounds = errors.New("propagate: source coordinate out of bounds")

	// ErrSourceMismatch is returned when the source list and the grid's Source
	// cells disagree. It signals an internal consistency fault in the caller.
	ErrSourceMismatch = errors.New("propagate: source set does not match Source cells")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("propagate: invalid option supplied")

	// ErrCellLimit is returned when a pass labels more cells than WithMaxCells allows.
	ErrCellLimit = errors.New("propagate: labeled cell limit exceeded")
)

// Option configures a propagation pass via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when Propagate is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a propagation pass.
type Options struct {
	// OnLayer is called before a layer is processed, with the layer's label
	// and its frontier. The frontier slice must not be retained.
	OnLayer func(layer int, frontier []grid.Coord)

	// OnLabel is called each time a cell receives its label, sources included.
	OnLabel func(c grid.Coord, distance int)

	// MaxCells, if > 0, aborts the pass once more than MaxCells cells are labeled.
	MaxCells int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and no cell limit.
func DefaultOptions() Options {
	return Options{
		OnLayer:  func(int, []grid.Coord) {},
		OnLabel:  func(grid.Coord, int) {},
		MaxCells: 0,
	}
}

// WithOnLayer registers a callback run once per layer.
func WithOnLayer(fn func(layer int, frontier []grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithOnLabel registers a callback run for every labeled cell.
func WithOnLabel(fn func(c grid.Coord, distance int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// WithMaxCells caps the number of cells a pass may label, sources included.
//
//	n > 0: limit to n cells
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// Result summarizes a completed pass:
//   - Layers: highest label assigned (0 when there are no sources).
//   - Labeled: number of cells that received a label, sources included.
//   - Unreachable: non-barrier cells left without a label.
//   - Order: coordinates in the order they were labeled.
type Result struct {
	Layers      int
	Labeled     int
	Unreachable int
	Order       []grid.Coord
}
