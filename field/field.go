// Package field applies cell edits to a grid, keeps the source set in step
// with the grid's Source cells, and reruns propagation after each edit.
package field

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/propagate"
)

// Field owns a grid together with its ordered source set.
// It is not safe for concurrent use.
type Field struct {
	grid    *grid.Grid
	sources []grid.Coord
	index   map[grid.Coord]int
	opts    Options
	last    *propagate.Result
}

// New builds a rows×columns field with no sources or barriers.
// Returns grid.ErrInvalidDimensions (wrapped) for non-positive sizes.
func New(rows, columns int, opts ...Option) (*Field, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.New(rows, columns)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	o.Logger.Debug("field created", "rows", rows, "columns", columns, "auto_recompute", o.AutoRecompute)

	return &Field{
		grid:  g,
		index: make(map[grid.Coord]int),
		opts:  o,
		last:  &propagate.Result{},
	}, nil
}

// Dims returns the row and column counts.
func (f *Field) Dims() (rows, columns int) {
	return f.grid.Rows, f.grid.Columns
}

// InBounds reports whether c addresses a cell of the field.
func (f *Field) InBounds(c grid.Coord) bool {
	return f.grid.InBounds(c)
}

// Cell returns the cell at c.
func (f *Field) Cell(c grid.Coord) (grid.Cell, error) {
	return f.grid.At(c)
}

// Sources returns a copy of the source set in insertion order.
func (f *Field) Sources() []grid.Coord {
	return append([]grid.Coord(nil), f.sources...)
}

// LastResult returns the summary of the most recent propagation pass.
func (f *Field) LastResult() *propagate.Result {
	return f.last
}

// String renders the grid as text (see grid.Grid.String).
func (f *Field) String() string {
	return f.grid.String()
}

// Snapshot returns kind and label of every cell in row-major order.
func (f *Field) Snapshot() []CellView {
	out := make([]CellView, 0, f.grid.Len())
	f.grid.Each(func(c grid.Coord, cell grid.Cell) {
		out = append(out, CellView{At: c, Kind: cell.Kind, Distance: cell.Distance, Labeled: cell.Labeled})
	})

	return out
}

// ToggleSource turns the cell at c into a Source labeled 1, or back into an
// Inactive cell if it already is one.
func (f *Field) ToggleSource(c grid.Coord) error {
	return f.Apply(Edit{Op: OpToggleSource, At: c})
}

// ToggleBarrier turns the cell at c into a Barrier, or back into an Inactive
// cell if it already is one. A Source turned into a Barrier leaves the source set.
func (f *Field) ToggleBarrier(c grid.Coord) error {
	return f.Apply(Edit{Op: OpToggleBarrier, At: c})
}

// SetActive switches an open cell between Active and Inactive display state.
// Labels are unaffected. Returns ErrKindConflict on Source and Barrier cells.
func (f *Field) SetActive(c grid.Coord, on bool) error {
	cell, err := f.grid.At(c)
	if err != nil {
		return fmt.Errorf("field: SetActive: %w", err)
	}
	if cell.Kind == grid.Source || cell.Kind == grid.Barrier {
		return fmt.Errorf("%w: SetActive on %s at (%d,%d)", ErrKindConflict, cell.Kind, c.X, c.Y)
	}
	k := grid.Inactive
	if on {
		k = grid.Active
	}

	return f.grid.SetKind(c, k)
}

// Apply performs one edit and, with AutoRecompute, a full propagation pass.
// On error the field is left unchanged.
func (f *Field) Apply(e Edit) error {
	if err := f.apply(e); err != nil {
		return err
	}
	if !f.opts.AutoRecompute {
		return nil
	}
	_, err := f.Recompute()

	return err
}

// ApplyAll performs edits in order and recomputes once at the end.
// It stops at the first failing edit; earlier edits stay applied and, with
// AutoRecompute, the labels are still recomputed for the resulting layout
// before the edit error is returned.
func (f *Field) ApplyAll(edits []Edit) error {
	var editErr error
	applied := 0
	for i, e := range edits {
		if err := f.apply(e); err != nil {
			editErr = fmt.Errorf("field: edit %d: %w", i, err)
			break
		}
		applied++
	}
	if !f.opts.AutoRecompute || applied == 0 {
		return editErr
	}
	if _, err := f.Recompute(); err != nil {
		return errors.Join(editErr, err)
	}

	return editErr
}

// Recompute runs a full propagation pass over the current layout.
func (f *Field) Recompute() (*propagate.Result, error) {
	res, err := propagate.Propagate(f.grid, f.sources)
	if err != nil {
		f.opts.Logger.Error("recompute failed", "error", err)
		return nil, fmt.Errorf("field: recompute: %w", err)
	}
	f.last = res
	f.opts.Logger.Debug("recomputed",
		"sources", len(f.sources),
		"layers", res.Layers,
		"labeled", res.Labeled,
		"unreachable", res.Unreachable,
	)

	return res, nil
}

// Reset returns every cell to Inactive and drops all sources and labels.
func (f *Field) Reset() {
	for i := 0; i < f.grid.Len(); i++ {
		_ = f.grid.SetKind(f.grid.Coordinate(i), grid.Inactive)
	}
	f.grid.ClearAll()
	f.sources = f.sources[:0]
	clear(f.index)
	f.last = &propagate.Result{Unreachable: f.grid.Len()}
	f.opts.Logger.Debug("field reset")
}

// apply performs e without recomputing.
func (f *Field) apply(e Edit) error {
	cell, err := f.grid.At(e.At)
	if err != nil {
		return fmt.Errorf("field: %s: %w", e.Op, err)
	}

	switch e.Op {
	case OpToggleSource:
		if cell.Kind == grid.Source {
			f.removeSource(e.At)
			_ = f.grid.SetKind(e.At, grid.Inactive)
		} else {
			f.addSource(e.At)
			_ = f.grid.SetKind(e.At, grid.Source)
			_ = f.grid.SetDistance(e.At, 1)
		}
	case OpToggleBarrier:
		if cell.Kind == grid.Barrier {
			_ = f.grid.SetKind(e.At, grid.Inactive)
		} else {
			if cell.Kind == grid.Source {
				f.removeSource(e.At)
			}
			_ = f.grid.SetKind(e.At, grid.Barrier)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownEdit, int(e.Op))
	}
	f.opts.Logger.Debug("edit applied", "op", e.Op.String(), "x", e.At.X, "y", e.At.Y, "was", cell.Kind.String())

	return nil
}

// addSource appends c to the source set.
func (f *Field) addSource(c grid.Coord) {
	f.index[c] = len(f.sources)
	f.sources = append(f.sources, c)
}

// removeSource deletes c from the source set, keeping insertion order.
func (f *Field) removeSource(c grid.Coord) {
	i, ok := f.index[c]
	if !ok {
		return
	}
	f.sources = append(f.sources[:i], f.sources[i+1:]...)
	delete(f.index, c)
	for j := i; j < len(f.sources); j++ {
		f.index[f.sources[j]] = j
	}
}
