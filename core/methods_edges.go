// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries.
// Determinism:
//   - Edges() and EdgesCoveringTile() return edges sorted by EdgeID asc.
//   - Edge ids are monotonic and never reused.
package core

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cryptgraph/grid"
)

// AddEdge joins source and target with a new corridor.
//
// Steps:
//  1. Reject identical endpoints (ErrSelfLoop) and unknown ids (ErrNodeNotFound).
//  2. Reject already-adjacent endpoints (ErrDuplicateEdge).
//  3. Rasterize the footprint source→target, classify its run, measure distance.
//  4. Store the edge, increment both edge counts, insert symmetric adjacency.
//
// Complexity: O(L) where L is the footprint length.
func (g *Graph) AddEdge(source, target NodeID) (*Edge, error) {
	if source == target {
		return nil, ErrSelfLoop
	}
	src, ok := g.nodes[source]
	if !ok {
		return nil, ErrNodeNotFound
	}
	dst, ok := g.nodes[target]
	if !ok {
		return nil, ErrNodeNotFound
	}
	if g.adjacency[source].Has(target) {
		return nil, ErrDuplicateEdge
	}

	tiles := grid.RasterizeLine(src.Position(), dst.Position())
	cover := mapset.New[grid.Point]()
	for _, p := range tiles {
		cover.Put(p)
	}

	g.nextEdgeID++
	e := &Edge{
		ID:        EdgeID(g.nextEdgeID),
		Source:    source,
		Target:    target,
		Distance:  grid.Distance(src.Position(), dst.Position()),
		Direction: grid.ClassifyRun(tiles),
		Tiles:     tiles,
		cover:     cover,
	}
	g.edges[e.ID] = e

	src.edges++
	dst.edges++
	g.adjacency[source].Put(target)
	g.adjacency[target].Put(source)

	return e, nil
}

// DeleteEdge removes one edge, decrementing both endpoint edge counts and
// removing the symmetric adjacency entries. Absent id is a silent no-op.
// Complexity: O(1).
func (g *Graph) DeleteEdge(id EdgeID) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)

	if n, ok := g.nodes[e.Source]; ok {
		n.edges--
	}
	if n, ok := g.nodes[e.Target]; ok {
		n.edges--
	}
	if set, ok := g.adjacency[e.Source]; ok {
		set.Remove(e.Target)
	}
	if set, ok := g.adjacency[e.Target]; ok {
		set.Remove(e.Source)
	}
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Edges returns all edges sorted by EdgeID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, compareEdges)

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// EdgeBetween returns the edge joining a and b, if any.
func (g *Graph) EdgeBetween(a, b NodeID) (*Edge, bool) {
	if !g.Adjacent(a, b) {
		return nil, false
	}
	for _, e := range g.edges {
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return e, true
		}
	}

	return nil, false
}

// EdgesCoveringTile returns every edge whose footprint contains (x,y),
// sorted by EdgeID asc. Endpoint tiles count as covered.
// Complexity: O(E log E).
func (g *Graph) EdgesCoveringTile(x, y int) []*Edge {
	p := grid.Point{X: x, Y: y}
	var out []*Edge
	for _, e := range g.edges {
		if e.cover.Has(p) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, compareEdges)

	return out
}

// Covers reports whether tile p lies on e's footprint.
func (e *Edge) Covers(p grid.Point) bool { return e.cover.Has(p) }

// IntersectsWith reports whether e and other share at least one footprint tile.
func (e *Edge) IntersectsWith(other *Edge) bool {
	for _, p := range other.Tiles {
		if e.cover.Has(p) {
			return true
		}
	}

	return false
}

// HasEndpoint reports whether id is the source or target of e.
func (e *Edge) HasEndpoint(id NodeID) bool { return e.Source == id || e.Target == id }

// Other returns the endpoint opposite id. If id is not an endpoint, Source is returned.
func (e *Edge) Other(id NodeID) NodeID {
	if e.Source == id {
		return e.Target
	}
	return e.Source
}

func compareEdges(a, b *Edge) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}
