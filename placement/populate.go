// SPDX-License-Identifier: MIT

package placement

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/core"
)

// NodeType maps k to the node type placed on the graph.
func (k Kind) NodeType() core.NodeType {
	switch k {
	case KindStore:
		return core.Store
	case KindStairUp:
		return core.StairUp
	case KindStairDown:
		return core.StairDown
	case KindFountain:
		return core.Fountain
	default:
		return core.Room
	}
}

// populateOrder is the category order in which nodes are inserted.
var populateOrder = [...]Kind{KindStore, KindFountain, KindStairUp, KindStairDown, KindRoom}

// Populate adds one node per accepted landmark to g.
//
// Nodes are inserted category by category (store, fountain, stairs, rooms),
// which fixes the graph's node insertion order. The returned ids follow
// acceptance order instead, which is the order chain building groups them in.
//
// Returns the first core error encountered, wrapped.
// Complexity: O(L).
func Populate(g *core.Graph, res *Result) ([]core.NodeID, error) {
	byIndex := make(map[int]core.NodeID, len(res.Used))
	for _, kind := range populateOrder {
		for _, l := range res.Used {
			if l.Kind != kind {
				continue
			}
			n, err := g.AddNode(core.NodeConfig{Type: kind.NodeType(), X: l.Point.X, Y: l.Point.Y})
			if err != nil {
				return nil, fmt.Errorf("Populate: %s at (%d,%d): %w", kind, l.Point.X, l.Point.Y, err)
			}
			byIndex[l.Index] = n.ID
		}
	}

	ids := make([]core.NodeID, 0, len(res.Used))
	for _, l := range res.Used {
		ids = append(ids, byIndex[l.Index])
	}

	return ids, nil
}
