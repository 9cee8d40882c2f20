// SPDX-License-Identifier: MIT

package level

import (
	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/grid"
)

// Level is a generated level: its graph plus the generation report.
type Level struct {
	graph  *core.Graph
	report *Report
}

// Graph returns the underlying graph. Callers must treat it as read-only.
func (l *Level) Graph() *core.Graph { return l.graph }

// Report returns what each generation stage did.
func (l *Level) Report() *Report { return l.report }

// Columns returns the grid width.
func (l *Level) Columns() int { return l.graph.Width() }

// Rows returns the grid height.
func (l *Level) Rows() int { return l.graph.Height() }

// NodeAt returns the landmark or junction on (x,y).
func (l *Level) NodeAt(x, y int) (*core.Node, bool) { return l.graph.NodeAt(x, y) }

// EdgesCoveringTile returns the corridors whose footprint includes (x,y).
func (l *Level) EdgesCoveringTile(x, y int) []*core.Edge { return l.graph.EdgesCoveringTile(x, y) }

// ConnectedComponents returns the level's node groups.
func (l *Level) ConnectedComponents() [][]*core.Node { return l.graph.ConnectedComponents() }

// spawnPriority orders the node types Spawn looks for.
var spawnPriority = [...]core.NodeType{core.StairUp, core.StairDown, core.Fountain, core.Store, core.Room}

// Spawn returns the player's start tile: the first StairUp in node insertion
// order, falling back to StairDown, Fountain, Store, Room and finally any
// node. ok is false only for a level with no nodes.
func (l *Level) Spawn() (grid.Point, bool) {
	nodes := l.graph.Nodes()
	for _, t := range spawnPriority {
		for _, n := range nodes {
			if n.Type == t {
				return n.Position(), true
			}
		}
	}
	if len(nodes) > 0 {
		return nodes[0].Position(), true
	}

	return grid.Point{}, false
}

// CanMove reports whether a walker may step from one tile to a 4-adjacent tile.
//
// From a corridor tile, the step is legal onto a corridor tile sharing an
// edge, or onto a node that is an endpoint of an edge covering the current
// tile. From a node tile, the step is legal when some edge covering the
// target joins this node or leads to one of its neighbors. Anything else,
// including leaving the grid or stepping diagonally, is refused.
func (l *Level) CanMove(from, to grid.Point) bool {
	dims := l.graph.Dims()
	if !dims.InBounds(from.X, from.Y) || !dims.InBounds(to.X, to.Y) || !grid.Adjacent(from, to) {
		return false
	}

	here := l.graph.EdgesCoveringTile(from.X, from.Y)
	there := l.graph.EdgesCoveringTile(to.X, to.Y)

	cur, onNode := l.graph.NodeAt(from.X, from.Y)
	if !onNode {
		if next, ok := l.graph.NodeAt(to.X, to.Y); ok {
			for _, e := range here {
				if e.HasEndpoint(next.ID) {
					return true
				}
			}
			return false
		}
		for _, a := range there {
			for _, b := range here {
				if a.ID == b.ID {
					return true
				}
			}
		}
		return false
	}

	for _, e := range there {
		if l.graph.Adjacent(cur.ID, e.Other(cur.ID)) {
			return true
		}
	}

	return false
}
