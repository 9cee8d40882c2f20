// SPDX-License-Identifier: MIT

// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptgraph/core"
)

// Grid sizes used across core tests.
const (
	gridW = 12
	gridH = 10
)

func newGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(gridW, gridH)
	require.NoError(t, err)
	return g
}

func mustNode(t testing.TB, g *core.Graph, typ core.NodeType, x, y int) *core.Node {
	t.Helper()
	n, err := g.AddNode(core.NodeConfig{Type: typ, X: x, Y: y})
	require.NoError(t, err, "AddNode(%v,%d,%d)", typ, x, y)
	return n
}

func mustEdge(t testing.TB, g *core.Graph, a, b *core.Node) *core.Edge {
	t.Helper()
	e, err := g.AddEdge(a.ID, b.ID)
	require.NoError(t, err, "AddEdge(%s,%s)", a.ID, b.ID)
	return e
}

func ids(nodes []*core.Node) []core.NodeID {
	out := make([]core.NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
