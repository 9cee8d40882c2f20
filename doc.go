// Package cryptgraph generates the walkable layout of a dungeon level: a set
// of landmarks scattered on a tile grid and joined by straight-line corridors
// into a single connected graph.
//
// What is cryptgraph?
//
//	A small, deterministic, seedable pipeline that brings together:
//		• Landmark placement: store, up/down stairs, fountain, rooms
//		• Corridor chains: column and row neighbours linked in order
//		• Repair: unconnected landmarks marched onto the nearest corridor
//		• Crossing resolution: corridor crossings turned into junctions
//		• Component merging: islands bridged toward the main network
//
// Why choose cryptgraph?
//
//   - Reproducible – the same seed and options give the same level
//   - Inspectable – every stage reports what it did; hooks see snapshots
//   - Pure Go – graph store, geometry and pipeline with no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/       — dimensions, index/coordinate math, line rasterization
//	core/       — Graph store: typed nodes, corridor edges, components, crossings
//	placement/  — landmark sampling with spacing rules and classification
//	corridor/   — chains, repair marches, crossing resolution, merging
//	level/      — the Generate pipeline, reports, tile maps, movement rules
//
// Quick ASCII example (one corridor through a T-junction):
//
//	    ■───┬───▲
//	        │
//	        ●
//
//	a store and a stair joined by a corridor, with a room spliced onto it.
//
// See examples/ascii_level.go for a runnable generator that prints a level.
//
//	go get github.com/katalvlaran/cryptgraph
package cryptgraph
