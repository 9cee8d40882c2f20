// SPDX-License-Identifier: MIT

// File: methods_nodes.go
// Role: Node lifecycle & lookups.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Neighbors() returns ids ascending.
package core

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cryptgraph/grid"
)

// AddNode allocates a node on the requested tile.
//
// Implementation:
//   - Stage 1: Validate coordinates against the grid (ErrOutOfBounds).
//   - Stage 2: Reject tiles that already host a node (ErrTileOccupied).
//   - Stage 3: Allocate the next NodeID, register the node with a zero edge
//     count and an empty adjacency entry.
//
// Returns:
//   - *Node: the live node record; callers may read it but must change its
//     type only through SetType.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(cfg NodeConfig) (*Node, error) {
	if !g.dims.InBounds(cfg.X, cfg.Y) {
		return nil, ErrOutOfBounds
	}
	idx := g.dims.Index(cfg.X, cfg.Y)
	if _, taken := g.byIndex[idx]; taken {
		return nil, ErrTileOccupied
	}

	g.nextNodeID++
	n := &Node{
		ID:    NodeID(g.nextNodeID),
		Index: idx,
		X:     cfg.X,
		Y:     cfg.Y,
		Type:  cfg.Type,
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	g.byIndex[idx] = n.ID
	g.adjacency[n.ID] = mapset.New[NodeID]()

	return n, nil
}

// DeleteNode removes a node, its adjacency entry and every incident edge.
//
// Behavior highlights:
//   - Absent id is a silent no-op, so deleting twice equals deleting once.
//   - Neighbor edge counts are decremented through DeleteEdge, keeping the
//     adjacency map symmetric.
//
// Complexity:
//   - Time O(E + V) (incident edge scan plus insertion-order compaction).
func (g *Graph) DeleteNode(id NodeID) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}

	for _, e := range g.Edges() {
		if e.Source == id || e.Target == id {
			g.DeleteEdge(e.ID)
		}
	}

	delete(g.adjacency, id)
	delete(g.byIndex, n.Index)
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(v NodeID) bool { return v == id })
}

// SetType changes a node's type in place (e.g. a T-junction upgraded to a
// cross once a third corridor joins it). Absent id is a no-op.
func (g *Graph) SetType(id NodeID, t NodeType) {
	if n, ok := g.nodes[id]; ok {
		n.Type = t
	}
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeByIndex returns the node occupying the row-major tile index.
func (g *Graph) NodeByIndex(index int) (*Node, bool) {
	id, ok := g.byIndex[index]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// NodeAt returns the node occupying tile (x,y).
// Coordinates outside the grid report false.
func (g *Graph) NodeAt(x, y int) (*Node, bool) {
	if !g.dims.InBounds(x, y) {
		return nil, false
	}
	return g.NodeByIndex(g.dims.Index(x, y))
}

// HasNodeAt reports whether tile p hosts a node.
func (g *Graph) HasNodeAt(p grid.Point) bool {
	_, ok := g.NodeAt(p.X, p.Y)
	return ok
}

// Nodes returns all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeCount returns the current number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Neighbors returns the ids adjacent to id in ascending order.
// Unknown id yields nil.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) []NodeID {
	set, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]NodeID, 0, set.Size())
	set.Each(func(n NodeID) { out = append(out, n) })
	slices.Sort(out)

	return out
}

// Adjacent reports whether a and b are joined by an edge.
func (g *Graph) Adjacent(a, b NodeID) bool {
	set, ok := g.adjacency[a]
	return ok && set.Has(b)
}

// Degree returns the adjacency size of id, or 0 for an unknown id.
func (g *Graph) Degree(id NodeID) int {
	set, ok := g.adjacency[id]
	if !ok {
		return 0
	}
	return set.Size()
}

// Unconnected returns, in insertion order, every node with an empty adjacency set.
func (g *Graph) Unconnected() []*Node {
	var out []*Node
	for _, id := range g.order {
		if g.adjacency[id].Size() == 0 {
			out = append(out, g.nodes[id])
		}
	}

	return out
}
