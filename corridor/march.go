// SPDX-License-Identifier: MIT

// File: march.go
// Role: tile-by-tile directional search and junction splicing shared by
// Repair and Merge.
package corridor

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/grid"
)

// hit is the first qualifying corridor tile found by a march.
type hit struct {
	tile    grid.Point
	heading grid.Cardinal
	dist    float64

	// edge is the corridor crossed at tile.
	edge *core.Edge

	// node is set when tile already hosts one of edge's endpoints.
	node *core.Node
}

// march steps from origin along heading until it reaches a tile covered by an
// edge accepted by want, or the grid border. Edges are considered in EdgeID
// order. A tile hosting a node that is not an endpoint of the edge cannot be
// spliced and is stepped over.
func march(g *core.Graph, origin *core.Node, heading grid.Cardinal, want func(*core.Edge) bool) (hit, bool) {
	dims := g.Dims()
	from := origin.Position()
	p := from
	for {
		p = p.Step(heading)
		if !dims.InBounds(p.X, p.Y) {
			return hit{}, false
		}
		occupant, occupied := g.NodeAt(p.X, p.Y)
		for _, e := range g.EdgesCoveringTile(p.X, p.Y) {
			if !want(e) {
				continue
			}
			if occupied && !e.HasEndpoint(occupant.ID) {
				continue
			}
			h := hit{tile: p, heading: heading, dist: grid.Distance(from, p), edge: e}
			if occupied {
				h.node = occupant
			}
			return h, true
		}
		if dims.IsBorder(p.X, p.Y) {
			return hit{}, false
		}
	}
}

// closest marches in every heading and returns the nearest hit. Ties go to
// the earlier heading in grid.Cardinals order.
func closest(g *core.Graph, origin *core.Node, want func(grid.Cardinal, *core.Edge) bool) (hit, bool) {
	var (
		best  hit
		found bool
	)
	for _, c := range grid.Cardinals {
		h, ok := march(g, origin, c, func(e *core.Edge) bool { return want(c, e) })
		if ok && (!found || h.dist < best.dist) {
			best, found = h, true
		}
	}

	return best, found
}

// splice joins origin to the corridor found by h.
//
// On a free tile a T-junction facing back toward origin is inserted: the
// crossed edge is replaced by two edges through the junction and origin is
// linked to it. On a tile already hosting the edge's endpoint, origin is
// linked to that node directly. Either way a T-junction gaining a fourth
// direction becomes a CrossHallway.
//
// Returns the node origin was linked to.
func splice(g *core.Graph, origin *core.Node, h hit) (*core.Node, error) {
	if h.node != nil {
		if _, err := g.AddEdge(origin.ID, h.node.ID); err != nil {
			return nil, fmt.Errorf("splice: %s-%s: %w", origin.ID, h.node.ID, err)
		}
		upgrade(g, h.node)
		upgrade(g, origin)
		return h.node, nil
	}

	j, err := g.AddNode(core.NodeConfig{
		Type: core.TJunctionFacing(h.heading.Opposite()),
		X:    h.tile.X,
		Y:    h.tile.Y,
	})
	if err != nil {
		return nil, fmt.Errorf("splice: junction at (%d,%d): %w", h.tile.X, h.tile.Y, err)
	}
	a, b := h.edge.Source, h.edge.Target
	g.DeleteEdge(h.edge.ID)
	if _, err = g.AddEdge(a, j.ID); err != nil {
		return nil, fmt.Errorf("splice: %s-%s: %w", a, j.ID, err)
	}
	if _, err = g.AddEdge(j.ID, b); err != nil {
		return nil, fmt.Errorf("splice: %s-%s: %w", j.ID, b, err)
	}
	upgrade(g, origin)
	if _, err = g.AddEdge(origin.ID, j.ID); err != nil {
		return nil, fmt.Errorf("splice: %s-%s: %w", origin.ID, j.ID, err)
	}

	return j, nil
}

// upgrade turns a T-junction into a CrossHallway.
func upgrade(g *core.Graph, n *core.Node) {
	if n.Type.IsTJunction() {
		g.SetType(n.ID, core.CrossHallway)
	}
}
