// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: deep copies of a graph.
// Determinism:
//   - Clone carries nextNodeID/nextEdgeID so ids allocated on the clone
//     continue the source's sequence and never collide with copied ones.
package core

import (
	"maps"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cryptgraph/grid"
)

// Clone returns a deep copy of the Graph: nodes, edges, adjacency and the
// id counters. Mutating the clone never affects g, and vice versa.
//
// Complexity: O(V + E·L) where L is the longest footprint.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		dims:       g.dims,
		nextNodeID: g.nextNodeID,
		nextEdgeID: g.nextEdgeID,
		nodes:      make(map[NodeID]*Node, len(g.nodes)),
		order:      slices.Clone(g.order),
		byIndex:    maps.Clone(g.byIndex),
		edges:      make(map[EdgeID]*Edge, len(g.edges)),
		adjacency:  make(map[NodeID]mapset.Set[NodeID], len(g.adjacency)),
	}

	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}
	for id, set := range g.adjacency {
		cp := mapset.New[NodeID]()
		set.Each(func(n NodeID) { cp.Put(n) })
		clone.adjacency[id] = cp
	}
	for id, e := range g.edges {
		cp := *e
		cp.Tiles = slices.Clone(e.Tiles)
		cp.cover = mapset.New[grid.Point]()
		for _, p := range cp.Tiles {
			cp.cover.Put(p)
		}
		clone.edges[id] = &cp
	}

	return clone
}
