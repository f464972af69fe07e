// Package field defines edit events, options, and errors for Field, the
// stateful owner of a grid and its source set.
package field

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/flowfield/grid"
)

// Sentinel errors for field operations.
var (
	// ErrUnknownEdit indicates an Edit with an unrecognized operation.
	ErrUnknownEdit = errors.New("field: unknown edit operation")

	// ErrParseEdit indicates a malformed textual edit.
	ErrParseEdit = errors.New("field: cannot parse edit")

	// ErrKindConflict indicates a display toggle on a Source or Barrier cell.
	ErrKindConflict = errors.New("field: operation not allowed on this cell kind")
)

// EditOp names a cell edit.
type EditOp int

const (
	// OpToggleSource adds or removes a propagation origin.
	OpToggleSource EditOp = iota + 1
	// OpToggleBarrier adds or removes an obstacle.
	OpToggleBarrier
)

// String returns the textual form used by ParseEdit.
func (op EditOp) String() string {
	switch op {
	case OpToggleSource:
		return "source"
	case OpToggleBarrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// Edit is a single cell-edit event.
type Edit struct {
	Op EditOp
	At grid.Coord
}

// CellView is the per-cell record handed to renderers.
type CellView struct {
	At       grid.Coord
	Kind     grid.Kind
	Distance int
	Labeled  bool
}

// Option configures a Field.
type Option func(*Options)

// Options holds Field settings.
type Options struct {
	// Logger receives debug records for edits and passes.
	Logger *slog.Logger

	// AutoRecompute runs a full propagation pass after every edit.
	AutoRecompute bool
}

// DefaultOptions returns a discard logger with AutoRecompute enabled.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		AutoRecompute: true,
	}
}

// WithLogger sets the logger used for edit and recompute records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAutoRecompute toggles the automatic pass after each edit. With it
// disabled the caller must invoke Recompute before reading labels.
func WithAutoRecompute(on bool) Option {
	return func(o *Options) {
		o.AutoRecompute = on
	}
}
