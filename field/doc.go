// Package field is the stateful front of flowfield: it owns a grid.Grid and
// the set of Source coordinates, applies cell-edit events, and reruns
// propagate.Propagate so the labels always match the current layout.
//
// Edits:
//
//   - ToggleSource(c): Source → Inactive (leaves the source set); anything
//     else → Source, labeled 1 at once, before the next pass runs.
//   - ToggleBarrier(c): Barrier → Inactive; anything else → Barrier. A Source
//     turned into a Barrier leaves the source set too, so the set and the
//     grid's Source cells never disagree.
//   - SetActive(c, on): display-only Active/Inactive switch on open cells.
//
// Edits that fail (out-of-bounds coordinate, unknown op) leave the field as it
// was. With AutoRecompute (the default) each edit is followed by a full pass;
// ApplyAll batches a list of edits into a single pass.
//
// Reading:
//
//   - Snapshot returns every cell's coordinate, kind and label in row-major order.
//   - Cell, Sources, Dims and LastResult give targeted access.
//
// Text scripts ("source X,Y", "barrier X,Y", one per line) are read with
// ParseScript.
//
// A Field is meant to be driven from a single goroutine (typically a UI event
// loop) and performs no locking.
package field
