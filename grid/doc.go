// Package grid is the leaf data model of flowfield: a rectangular arena of
// cells addressed by (column,row), with 4-directional neighbor lookup.
//
// What:
//
//   - Grid stores Rows×Columns cells in one row-major slice (no per-cell pointers).
//   - Each Cell carries a Kind (Inactive, Active, Source, Barrier) and an
//     optional Distance label.
//   - Neighbors are probed in the fixed order left, up, right, down so that any
//     traversal built on top is deterministic.
//
// Invariants:
//
//   - Dimensions are fixed at construction.
//   - A Barrier cell never carries a label; SetKind(Barrier) clears it and
//     SetDistance refuses it.
//   - Labels are always ≥ 1.
//
// Complexity:
//
//   - New: O(W×H) time and memory.
//   - At, SetKind, SetDistance, Neighbors: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns below 1.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrBarrierLabel: attempt to label a barrier.
//   - ErrInvalidDistance: label below 1.
//
// A Grid is not safe for concurrent use.
package grid
