package grid

// Kind classifies a cell for propagation and display.
type Kind int

const (
	// Inactive is the default kind of a freshly created cell.
	Inactive Kind = iota
	// Active marks a cell the caller is currently highlighting for processing.
	// It propagates exactly like Inactive.
	Active
	// Source marks a propagation origin. Sources always carry distance 1.
	Source
	// Barrier blocks propagation. Barriers are never labeled.
	Barrier
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Source:
		return "source"
	case Barrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// Propagates reports whether a cell of this kind can be labeled and can pass
// propagation on to its neighbors.
func (k Kind) Propagates() bool {
	return k != Barrier
}

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// Cell is the read model of a single grid position.
// Distance is meaningful only when Labeled is true.
type Cell struct {
	Kind     Kind
	Distance int
	Labeled  bool
}

// Label returns the distance label and whether the cell has one.
func (c Cell) Label() (int, bool) {
	return c.Distance, c.Labeled
}

// Grid is a fixed-size rectangular arena of cells stored in row-major order.
// Rows and Columns never change after construction.
// neighborOffsets holds the fixed left, up, right, down probe order.
type Grid struct {
	Rows, Columns   int
	cells           []Cell
	neighborOffsets [4][2]int
}
