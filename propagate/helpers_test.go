package propagate_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/flowfield/grid"
)

// fromLayout builds a grid from rows of runes:
// '.' Inactive, 'a' Active, '#' Barrier, 'S' Source.
// It returns the grid and the sources in row-major order.
func fromLayout(t testing.TB, layout ...string) (*grid.Grid, []grid.Coord) {
	t.Helper()
	g, err := grid.New(len(layout), len(layout[0]))
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	var sources []grid.Coord
	for y, row := range layout {
		if len(row) != g.Columns {
			t.Fatalf("layout row %d has %d columns; want %d", y, len(row), g.Columns)
		}
		for x, r := range row {
			c := grid.Coord{X: x, Y: y}
			switch r {
			case '#':
				_ = g.SetKind(c, grid.Barrier)
			case 'a':
				_ = g.SetKind(c, grid.Active)
			case 'S':
				_ = g.SetKind(c, grid.Source)
				sources = append(sources, c)
			}
		}
	}
	return g, sources
}

// randomLayout returns a rows×cols layout with the given barrier and source
// densities, drawn from a seeded generator.
func randomLayout(rng *rand.Rand, rows, cols int, barrier, source float64) []string {
	out := make([]string, rows)
	for y := range out {
		var sb strings.Builder
		for x := 0; x < cols; x++ {
			p := rng.Float64()
			switch {
			case p < barrier:
				sb.WriteByte('#')
			case p < barrier+source:
				sb.WriteByte('S')
			default:
				sb.WriteByte('.')
			}
		}
		out[y] = sb.String()
	}
	return out
}

// reference computes 1 + shortest 4-neighbor hop count to the nearest source
// over non-barrier cells, with a plain queue and no grid helpers.
// Unreachable and barrier cells are 0.
func reference(layout []string) [][]int {
	h, w := len(layout), len(layout[0])
	dist := make([][]int, h)
	type xy struct{ x, y int }
	var queue []xy
	for y := range dist {
		dist[y] = make([]int, w)
		for x := 0; x < w; x++ {
			if layout[y][x] == 'S' {
				dist[y][x] = 1
				queue = append(queue, xy{x, y})
			}
		}
	}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, d := range []xy{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			vx, vy := u.x+d.x, u.y+d.y
			if vx < 0 || vy < 0 || vx >= w || vy >= h {
				continue
			}
			if layout[vy][vx] == '#' || dist[vy][vx] != 0 {
				continue
			}
			dist[vy][vx] = dist[u.y][u.x] + 1
			queue = append(queue, xy{vx, vy})
		}
	}
	return dist
}

// labels extracts the grid's labels in the same shape as reference.
func labels(g *grid.Grid) [][]int {
	out := make([][]int, g.Rows)
	for y := range out {
		out[y] = make([]int, g.Columns)
	}
	g.Each(func(c grid.Coord, cell grid.Cell) {
		if d, ok := cell.Label(); ok {
			out[c.Y][c.X] = d
		}
	})
	return out
}
