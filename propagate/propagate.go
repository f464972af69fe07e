// Package propagate labels every reachable cell of a grid.Grid with its
// distance from the nearest Source cell, expanding all sources together one
// layer at a time.
//
// Labels are one-indexed: sources are 1, their open neighbors 2, and so on.
// Barriers absorb propagation and are never labeled.
package propagate

import (
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
)

// pass encapsulates the mutable state of one propagation run.
type pass struct {
	grid     *grid.Grid
	opts     Options
	seen     []bool
	frontier []grid.Coord
	next     []grid.Coord
	nbuf     []grid.Coord
	res      *Result
}

// Propagate recomputes every distance label of g from the given sources,
// applying any number of functional Options.
//
// Every label from a previous pass is discarded first, so the outcome depends
// only on the current kinds and sources. sources must list exactly the cells
// whose kind is grid.Source (duplicates are ignored).
//
// Returns ErrGridNil, ErrOptionViolation, ErrSourceOutOfBounds or
// ErrSourceMismatch before touching the grid; ErrCellLimit if WithMaxCells
// is exceeded, in which case only the source labels are left in place.
//
// Complexity: O(W×H) time and memory.
func Propagate(g *grid.Grid, sources []grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	uniq, err := validateSources(g, sources)
	if err != nil {
		return nil, err
	}

	p := &pass{
		grid: g,
		opts: o,
		seen: make([]bool, g.Len()),
		nbuf: make([]grid.Coord, 0, 4),
		res: &Result{
			Order: make([]grid.Coord, 0, g.Len()),
		},
	}
	p.reset(uniq)
	if err = p.checkLimit(); err == nil {
		err = p.loop()
	}
	if err != nil {
		p.restoreSources(uniq)
		return nil, err
	}
	p.countUnreachable()

	return p.res, nil
}

// validateSources bounds-checks every source, drops duplicates, and verifies
// that the list and the grid's Source cells describe the same set.
func validateSources(g *grid.Grid, sources []grid.Coord) ([]grid.Coord, error) {
	uniq := make([]grid.Coord, 0, len(sources))
	listed := make(map[grid.Coord]struct{}, len(sources))
	for _, s := range sources {
		if !g.InBounds(s) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrSourceOutOfBounds, s.X, s.Y)
		}
		if _, dup := listed[s]; dup {
			continue
		}
		cell, _ := g.At(s)
		if cell.Kind != grid.Source {
			return nil, fmt.Errorf("%w: (%d,%d) is %s", ErrSourceMismatch, s.X, s.Y, cell.Kind)
		}
		listed[s] = struct{}{}
		uniq = append(uniq, s)
	}
	if n := g.CountKind(grid.Source); n != len(uniq) {
		return nil, fmt.Errorf("%w: %d listed, %d on grid", ErrSourceMismatch, len(uniq), n)
	}

	return uniq, nil
}

// reset clears all labels, relabels the sources with 1, marks them seen,
// and builds the first frontier from their neighbors.
func (p *pass) reset(sources []grid.Coord) {
	p.grid.ClearAll()
	for i := range p.seen {
		p.seen[i] = false
	}
	p.frontier = p.frontier[:0]
	p.res.Order = p.res.Order[:0]
	p.res.Labeled, p.res.Layers = 0, 0

	for _, s := range sources {
		p.seen[p.grid.Index(s)] = true
	}
	for _, s := range sources {
		p.label(s, 1)
		p.frontier = p.enqueueNeighbors(p.frontier, s)
	}
}

// restoreSources drops a partial labeling, keeping only the source labels.
func (p *pass) restoreSources(sources []grid.Coord) {
	p.grid.ClearAll()
	for _, s := range sources {
		_ = p.grid.SetDistance(s, 1)
	}
}

// loop processes one frontier per iteration until none remains.
func (p *pass) loop() error {
	for layer := 2; len(p.frontier) > 0; layer++ {
		p.opts.OnLayer(layer, p.frontier)
		p.next = p.next[:0]
		for _, c := range p.frontier {
			cell, _ := p.grid.At(c)
			if !cell.Kind.Propagates() {
				continue
			}
			p.label(c, layer)
			if err := p.checkLimit(); err != nil {
				return err
			}
			p.next = p.enqueueNeighbors(p.next, c)
		}
		p.frontier, p.next = p.next, p.frontier
	}

	return nil
}

// checkLimit reports ErrCellLimit once more than MaxCells cells carry a label.
// Sources count towards the limit.
func (p *pass) checkLimit() error {
	if p.opts.MaxCells > 0 && p.res.Labeled > p.opts.MaxCells {
		return fmt.Errorf("%w: more than %d cells", ErrCellLimit, p.opts.MaxCells)
	}

	return nil
}

// label writes d to c and records it in the result.
func (p *pass) label(c grid.Coord, d int) {
	// c is in bounds and never a barrier here.
	_ = p.grid.SetDistance(c, d)
	p.res.Labeled++
	p.res.Order = append(p.res.Order, c)
	if d > p.res.Layers {
		p.res.Layers = d
	}
	p.opts.OnLabel(c, d)
}

// enqueueNeighbors appends every unseen neighbor of c to dst and marks it seen.
func (p *pass) enqueueNeighbors(dst []grid.Coord, c grid.Coord) []grid.Coord {
	p.nbuf = p.grid.AppendNeighbors(p.nbuf[:0], c)
	for _, n := range p.nbuf {
		i := p.grid.Index(n)
		if p.seen[i] {
			continue
		}
		p.seen[i] = true
		dst = append(dst, n)
	}

	return dst
}

// countUnreachable records how many open cells were left without a label.
func (p *pass) countUnreachable() {
	p.grid.Each(func(_ grid.Coord, cell grid.Cell) {
		if cell.Kind.Propagates() && !cell.Labeled {
			p.res.Unreachable++
		}
	})
}
