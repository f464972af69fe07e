// Package flowfield computes distance fields on editable grids: mark some
// cells as barriers and some as sources, and every reachable cell is labeled
// with 1 + its step count from the nearest source.
//
// Packages:
//
//	grid/           fixed-size cell arena, 4-neighbor lookup, kinds and labels
//	propagate/      multi-source layered propagation (full relabel per pass)
//	field/          edit events (toggle source / barrier), source set, snapshots
//	cmd/flowfield/  terminal editor built on the packages above
//
// Quick example:
//
//	f, _ := field.New(3, 3)
//	_ = f.ToggleSource(grid.Coord{X: 0, Y: 0})
//	fmt.Println(f)
//	// S 2 3
//	// 2 3 4
//	// 3 4 5
//
// Labels are one-indexed: a source is 1, its open neighbors are 2, and cells
// cut off by barriers stay unlabeled.
package flowfield
