// SPDX-License-Identifier: MIT

// File: api.go
// Role: read-only getters, statistics and invariant validation.
package core

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/grid"
)

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	Width, Height int
	NodeCount     int
	EdgeCount     int
	Components    int
	Unconnected   int
	// ByType counts nodes per NodeType.
	ByType map[NodeType]int
	// ByDirection counts edges per run direction.
	ByDirection map[grid.Run]int
}

// Width returns the grid width.
func (g *Graph) Width() int { return g.dims.Width }

// Height returns the grid height.
func (g *Graph) Height() int { return g.dims.Height }

// Dims returns the grid size.
func (g *Graph) Dims() grid.Dims { return g.dims }

// Stats produces a deterministic snapshot of catalog sizes.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		Width:       g.dims.Width,
		Height:      g.dims.Height,
		NodeCount:   len(g.nodes),
		EdgeCount:   len(g.edges),
		Components:  len(g.ConnectedComponents()),
		Unconnected: len(g.Unconnected()),
		ByType:      make(map[NodeType]int),
		ByDirection: make(map[grid.Run]int),
	}
	for _, n := range g.nodes {
		stats.ByType[n.Type]++
	}
	for _, e := range g.edges {
		stats.ByDirection[e.Direction]++
	}

	return &stats
}

// Validate checks every structural invariant and returns an error wrapping
// ErrInvariant describing the first violation found.
//
// Checked:
//   - adjacency keys equal node ids;
//   - adjacency is symmetric;
//   - every node's edge count equals its adjacency size;
//   - every edge's endpoints exist, differ, and are adjacent;
//   - the edge count equals half the total adjacency size;
//   - every node is in bounds and indexed by its tile.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if len(g.adjacency) != len(g.nodes) {
		return fmt.Errorf("%w: %d adjacency entries for %d nodes", ErrInvariant, len(g.adjacency), len(g.nodes))
	}

	total := 0
	for id, n := range g.nodes {
		set, ok := g.adjacency[id]
		if !ok {
			return fmt.Errorf("%w: node %s has no adjacency entry", ErrInvariant, id)
		}
		if !g.dims.InBounds(n.X, n.Y) || g.byIndex[n.Index] != id || n.Index != g.dims.Index(n.X, n.Y) {
			return fmt.Errorf("%w: node %s tile index is inconsistent", ErrInvariant, id)
		}
		if n.edges != set.Size() {
			return fmt.Errorf("%w: node %s edge count %d, adjacency %d", ErrInvariant, id, n.edges, set.Size())
		}
		var err error
		set.Each(func(other NodeID) {
			if err != nil {
				return
			}
			back, ok := g.adjacency[other]
			if !ok || !back.Has(id) {
				err = fmt.Errorf("%w: %s→%s has no mirror", ErrInvariant, id, other)
			}
		})
		if err != nil {
			return err
		}
		total += set.Size()
	}

	for id, e := range g.edges {
		if e.Source == e.Target {
			return fmt.Errorf("%w: edge %s is a self-loop", ErrInvariant, id)
		}
		if !g.Adjacent(e.Source, e.Target) {
			return fmt.Errorf("%w: edge %s endpoints not adjacent", ErrInvariant, id)
		}
	}
	if total != 2*len(g.edges) {
		return fmt.Errorf("%w: %d edges for adjacency size %d", ErrInvariant, len(g.edges), total)
	}

	return nil
}
