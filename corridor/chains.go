// SPDX-License-Identifier: MIT

package corridor

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cryptgraph/core"
)

// BuildChains links every run of nodes sharing a column, then every run
// sharing a row, adding one edge per consecutive pair.
//
// Groups are formed in the order their first member appears in order; a
// group's members are sorted by the coordinate that varies along it. A node
// with no chain-mate gains no edge here.
//
// Returns the number of edges added.
// Complexity: O(N log N) plus the footprint cost of each edge.
func BuildChains(g *core.Graph, order []core.NodeID) (int, error) {
	nodes := make([]*core.Node, 0, len(order))
	for _, id := range order {
		n, ok := g.Node(id)
		if !ok {
			return 0, fmt.Errorf("BuildChains: %s: %w", id, core.ErrNodeNotFound)
		}
		nodes = append(nodes, n)
	}

	added := 0
	columns := group(nodes, func(n *core.Node) int { return n.X }, func(n *core.Node) int { return n.Y })
	rows := group(nodes, func(n *core.Node) int { return n.Y }, func(n *core.Node) int { return n.X })
	for _, chain := range append(columns, rows...) {
		for i := 0; i+1 < len(chain); i++ {
			if g.Adjacent(chain[i].ID, chain[i+1].ID) {
				continue
			}
			if _, err := g.AddEdge(chain[i].ID, chain[i+1].ID); err != nil {
				return added, fmt.Errorf("BuildChains: %s-%s: %w", chain[i].ID, chain[i+1].ID, err)
			}
			added++
		}
	}

	return added, nil
}

// group buckets nodes by key in first-seen order and sorts each bucket by along.
func group(nodes []*core.Node, key, along func(*core.Node) int) [][]*core.Node {
	slot := make(map[int]int)
	var out [][]*core.Node
	for _, n := range nodes {
		k := key(n)
		i, ok := slot[k]
		if !ok {
			i = len(out)
			slot[k] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], n)
	}
	for _, g := range out {
		slices.SortStableFunc(g, func(a, b *core.Node) int { return along(a) - along(b) })
	}

	return out
}
