// SPDX-License-Identifier: MIT

// Package core provides the Graph Store behind level generation: an arena of
// typed landmark/junction nodes placed on a grid, undirected corridor edges
// with rasterized tile footprints, and a symmetric adjacency map.
//
// The Graph G = (V,E) keeps these invariants after every public call:
//
//   - Every node lies inside the grid and occupies a distinct tile.
//   - adjacency[a] contains b  ⇔  adjacency[b] contains a.
//   - The adjacency key set equals the node id set.
//   - Node.EdgeCount() == len(adjacency[id]) (no parallel edges, no self-loops).
//   - Edges are never mutated; inserting a junction deletes and re-adds.
//
// Identifiers:
//
//	NodeID  monotonic, rendered "n1", "n2", …
//	EdgeID  monotonic, rendered "e1", "e2", …
//
// Both are compared numerically, so every enumeration (Edges, EdgesCoveringTile,
// Neighbors) is deterministic for a fixed sequence of mutations.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(cfg NodeConfig) (*Node, error)   // O(1)
//	DeleteNode(id NodeID)                    // O(V + deg·E); absent id ⇒ no-op
//	Node(id), NodeByIndex(i), NodeAt(x,y)    // O(1)
//
//	// Edge lifecycle
//	AddEdge(source, target NodeID) (*Edge, error) // O(len(footprint))
//	DeleteEdge(id EdgeID)                         // O(1); absent id ⇒ no-op
//
//	// Snapshots
//	Clone() *Graph                           // O(V + E·L) deep copy
//
//	// Spatial and topological queries
//	EdgesCoveringTile(x,y) []*Edge           // O(E·L)
//	ConnectedComponents() [][]*Node          // O(V + E), insertion-order roots
//	IsReachable(a, b NodeID) bool            // O(V + E), early exit
//	EdgeIntersections() []Intersection       // O(E²·L)
//
// Concurrency:
//
//	A Graph is owned by exactly one generation call and is not safe for
//	concurrent mutation. Readers that share a finished Graph must not mutate it.
//
// Errors:
//
//	ErrOutOfBounds    – node coordinates outside the grid
//	ErrTileOccupied   – a node already occupies the tile
//	ErrNodeNotFound   – edge endpoint does not exist
//	ErrSelfLoop       – edge endpoints are identical
//	ErrDuplicateEdge  – endpoints are already adjacent
//	ErrInvariant      – Validate found a broken invariant
package core
