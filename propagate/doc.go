// Package propagate computes a one-indexed distance field over a grid.Grid
// from a set of Source cells, expanding all sources together layer by layer.
//
// What
//
//   - Reset: every label is cleared, then every source is labeled 1.
//   - The first frontier is the deduplicated neighbors of all sources.
//   - Layer L (starting at 2) labels each non-barrier frontier cell with L and
//     collects its unseen neighbors into the next frontier.
//   - A single seen set spans the whole pass, so each cell is queued at most
//     once and keeps the first (smallest) layer that reached it.
//   - Barriers are skipped: never labeled, never expanded.
//
// Determinism
//
//	Sources are expanded in the order given and neighbors in the grid's fixed
//	left, up, right, down order, so Result.Order and every label are
//	reproducible for a given layout and source list.
//
// Complexity (N = Rows×Columns)
//
//   - Time:   O(N)   (each cell enters a frontier at most once)
//   - Memory: O(N)   (seen set, two frontier buffers, Result.Order)
//
// Usage
//
//	res, err := propagate.Propagate(g, sources)
//	if err != nil {
//	    // ErrGridNil, ErrOptionViolation, ErrSourceOutOfBounds, ErrSourceMismatch or ErrCellLimit
//	}
//	fmt.Println("deepest label:", res.Layers)
//
// Options
//
//   - WithOnLayer(fn):  hook before each layer with its frontier.
//   - WithOnLabel(fn):  hook for every labeled cell.
//   - WithMaxCells(n):  abort with ErrCellLimit after n labeled cells (0 = unlimited).
//
// A pass needs exclusive access to the grid and always runs to completion
// unless the cell limit trips.
package propagate
