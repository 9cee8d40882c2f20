// SPDX-License-Identifier: MIT

package corridor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptgraph/core"
)

func newGraph(t *testing.T, w, h int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(w, h)
	require.NoError(t, err)
	return g
}

func mustNode(t *testing.T, g *core.Graph, typ core.NodeType, x, y int) *core.Node {
	t.Helper()
	n, err := g.AddNode(core.NodeConfig{Type: typ, X: x, Y: y})
	require.NoError(t, err)
	return n
}

func mustEdge(t *testing.T, g *core.Graph, a, b *core.Node) *core.Edge {
	t.Helper()
	e, err := g.AddEdge(a.ID, b.ID)
	require.NoError(t, err)
	return e
}

// nodeAt fetches the node on (x,y), failing the test if there is none.
func nodeAt(t *testing.T, g *core.Graph, x, y int) *core.Node {
	t.Helper()
	n, ok := g.NodeAt(x, y)
	require.True(t, ok, "no node at (%d,%d)", x, y)
	return n
}
