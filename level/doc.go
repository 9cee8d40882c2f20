// SPDX-License-Identifier: MIT

// Package level generates a dungeon level and answers the questions a
// renderer or movement system asks about it.
//
// Generate runs the whole pipeline on a fresh core.Graph:
//
//	placement → chains → repair → intersections → merge → sweep
//
// placement samples spaced landmarks and adds them as nodes; chains links
// nodes sharing a row or column; repair splices edgeless nodes into the
// nearest perpendicular corridor; intersections turns crossing corridors
// into CrossHallway junctions; merge prunes isolated nodes and bridges the
// remaining components; sweep resolves any crossing the merge bridges made.
//
// Residual disconnection is not an error. It is recorded in the Report,
// whose Unreachable method lists every placed landmark outside the largest
// component (pruned landmarks included).
//
// Generation is deterministic for a given seed and grid size. The default
// seed is 1; no time-based randomness is ever used.
//
// Level is a read-only view: NodeAt, EdgesCoveringTile, ConnectedComponents,
// Spawn, CanMove and Tiles never mutate the graph. A Level is not safe for
// concurrent use with code that mutates Graph().
package level
