// Package grid provides the fixed-size cell arena the distance-field engine
// runs on. It supports:
//
//   - Bounds-checked access by (column,row) coordinate
//   - Four-connected neighbor lookup in a fixed order: left, up, right, down
//   - Kind mutation (the only way cell types change)
//   - Distance labels, which only the propagation pass and source seeding write
//
// Cells live in a single row-major slice; neighbor relations are computed from
// coordinates on demand and never stored.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a rows×columns grid with every cell Inactive and unlabeled.
// Returns ErrInvalidDimensions if rows < 1 or columns < 1.
// Complexity: O(rows×columns) time and memory.
func New(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: rows=%d, columns=%d", ErrInvalidDimensions, rows, columns)
	}

	return &Grid{
		Rows:    rows,
		Columns: columns,
		cells:   make([]Cell, rows*columns),
		// left, up, right, down
		neighborOffsets: [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}},
	}, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Columns && c.Y >= 0 && c.Y < g.Rows
}

// Index maps c to its row-major arena index: Y*Columns + X.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Y*g.Columns + c.X
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Columns, Y: idx / g.Columns}
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// left, up, right, down. Returns ErrOutOfBounds if c itself is outside the grid.
func (g *Grid) Neighbors(c Coord) ([]Coord, error) {
	if err := g.check(c); err != nil {
		return nil, err
	}

	return g.AppendNeighbors(make([]Coord, 0, 4), c), nil
}

// AppendNeighbors appends the in-bounds neighbors of c to dst and returns the
// extended slice. c must already be in bounds.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range g.neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// At returns a copy of the cell at c.
func (g *Grid) At(c Coord) (Cell, error) {
	if err := g.check(c); err != nil {
		return Cell{}, err
	}

	return g.cells[g.Index(c)], nil
}

// SetKind changes the kind of the cell at c. Turning a cell into a Barrier
// drops its label so barriers are never labeled.
func (g *Grid) SetKind(c Coord, k Kind) error {
	if err := g.check(c); err != nil {
		return err
	}
	cell := &g.cells[g.Index(c)]
	cell.Kind = k
	if k == Barrier {
		cell.Distance, cell.Labeled = 0, false
	}

	return nil
}

// SetDistance labels the cell at c with d.
// Returns ErrInvalidDistance for d < 1 and ErrBarrierLabel for barrier cells.
func (g *Grid) SetDistance(c Coord, d int) error {
	if err := g.check(c); err != nil {
		return err
	}
	if d < 1 {
		return fmt.Errorf("%w: %d at %v", ErrInvalidDistance, d, c)
	}
	cell := &g.cells[g.Index(c)]
	if cell.Kind == Barrier {
		return fmt.Errorf("%w: %v", ErrBarrierLabel, c)
	}
	cell.Distance, cell.Labeled = d, true

	return nil
}

// ClearDistance removes the label of the cell at c.
func (g *Grid) ClearDistance(c Coord) error {
	if err := g.check(c); err != nil {
		return err
	}
	cell := &g.cells[g.Index(c)]
	cell.Distance, cell.Labeled = 0, false

	return nil
}

// ClearAll removes every label in one sweep.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i].Distance, g.cells[i].Labeled = 0, false
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, cell Cell)) {
	for i, cell := range g.cells {
		fn(g.Coordinate(i), cell)
	}
}

// Coords returns all coordinates holding kind k, in row-major order.
func (g *Grid) Coords(k Kind) []Coord {
	var out []Coord
	for i, cell := range g.cells {
		if cell.Kind == k {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// CountKind returns how many cells hold kind k.
func (g *Grid) CountKind(k Kind) int {
	n := 0
	for _, cell := range g.cells {
		if cell.Kind == k {
			n++
		}
	}

	return n
}

// String renders the grid one row per line: '#' for barriers, 'S' for
// sources, '.' for unlabeled cells and the distance otherwise. Columns are
// right-aligned to the widest token.
func (g *Grid) String() string {
	width := 1
	for _, cell := range g.cells {
		if cell.Labeled && cell.Kind != Source {
			if w := len(strconv.Itoa(cell.Distance)); w > width {
				width = w
			}
		}
	}

	var sb strings.Builder
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Columns; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := g.cells[y*g.Columns+x]
			var tok string
			switch {
			case cell.Kind == Barrier:
				tok = "#"
			case cell.Kind == Source:
				tok = "S"
			case !cell.Labeled:
				tok = "."
			default:
				tok = strconv.Itoa(cell.Distance)
			}
			sb.WriteString(strings.Repeat(" ", width-len(tok)))
			sb.WriteString(tok)
		}
		if y < g.Rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// check wraps ErrOutOfBounds with the offending coordinate and grid size.
func (g *Grid) check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, c.X, c.Y, g.Columns, g.Rows)
	}

	return nil
}
