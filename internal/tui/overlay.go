package tui

import "github.com/katalvlaran/flowfield/grid"

// Overlay holds display-only per-cell flags. The field never sees it.
type Overlay map[grid.Coord]bool

// Hover makes c the only highlighted cell.
func (o Overlay) Hover(c grid.Coord) {
	clear(o)
	o[c] = true
}

// Highlighted reports whether c is highlighted.
func (o Overlay) Highlighted(c grid.Coord) bool {
	return o[c]
}
