// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/grid"
)

// StoreSuite exercises node/edge lifecycle contracts of the Graph Store.
type StoreSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *StoreSuite) SetupTest() {
	s.g = newGraph(s.T())
}

func (s *StoreSuite) TestNewGraph_BadDimensions() {
	_, err := core.NewGraph(0, 5)
	s.ErrorIs(err, grid.ErrBadDimensions)
	_, err = core.NewGraph(5, -2)
	s.ErrorIs(err, grid.ErrBadDimensions)
}

func (s *StoreSuite) TestAddNode() {
	require := require.New(s.T())

	n := mustNode(s.T(), s.g, core.Room, 3, 4)
	require.Equal(core.NodeID(1), n.ID)
	require.Equal(4*gridW+3, n.Index)
	require.Equal(0, n.EdgeCount())
	require.Empty(s.g.Neighbors(n.ID))

	got, ok := s.g.NodeAt(3, 4)
	require.True(ok)
	require.Same(n, got)
	got, ok = s.g.NodeByIndex(n.Index)
	require.True(ok)
	require.Same(n, got)

	_, err := s.g.AddNode(core.NodeConfig{Type: core.Room, X: 3, Y: 4})
	require.ErrorIs(err, core.ErrTileOccupied)
	_, err = s.g.AddNode(core.NodeConfig{Type: core.Room, X: gridW, Y: 0})
	require.ErrorIs(err, core.ErrOutOfBounds)
	_, err = s.g.AddNode(core.NodeConfig{Type: core.Room, X: 0, Y: -1})
	require.ErrorIs(err, core.ErrOutOfBounds)

	_, ok = s.g.NodeAt(-1, 0)
	require.False(ok)
}

func (s *StoreSuite) TestAddEdge() {
	require := require.New(s.T())
	a := mustNode(s.T(), s.g, core.Room, 2, 2)
	b := mustNode(s.T(), s.g, core.Room, 2, 7)
	c := mustNode(s.T(), s.g, core.Room, 8, 2)

	ab := mustEdge(s.T(), s.g, a, b)
	require.Equal(grid.RunVertical, ab.Direction)
	require.Len(ab.Tiles, 6)
	require.InDelta(5.0, ab.Distance, 1e-9)
	require.Equal(1, a.EdgeCount())
	require.Equal(1, b.EdgeCount())
	require.True(s.g.Adjacent(a.ID, b.ID))
	require.True(s.g.Adjacent(b.ID, a.ID))

	ac := mustEdge(s.T(), s.g, a, c)
	require.Equal(grid.RunHorizontal, ac.Direction)
	require.Equal([]core.NodeID{b.ID, c.ID}, s.g.Neighbors(a.ID))
	require.Equal(2, s.g.Degree(a.ID))

	_, err := s.g.AddEdge(a.ID, a.ID)
	require.ErrorIs(err, core.ErrSelfLoop)
	_, err = s.g.AddEdge(a.ID, 999)
	require.ErrorIs(err, core.ErrNodeNotFound)
	_, err = s.g.AddEdge(b.ID, a.ID)
	require.ErrorIs(err, core.ErrDuplicateEdge)

	between, ok := s.g.EdgeBetween(c.ID, a.ID)
	require.True(ok)
	require.Equal(ac.ID, between.ID)
	require.NoError(s.g.Validate())
}

func (s *StoreSuite) TestDeleteEdge_Idempotent() {
	require := require.New(s.T())
	a := mustNode(s.T(), s.g, core.Room, 2, 2)
	b := mustNode(s.T(), s.g, core.Room, 6, 2)
	e := mustEdge(s.T(), s.g, a, b)

	s.g.DeleteEdge(e.ID)
	require.Equal(0, s.g.EdgeCount())
	require.Equal(0, a.EdgeCount())
	require.False(s.g.Adjacent(a.ID, b.ID))
	require.NoError(s.g.Validate())

	// second delete is a no-op
	s.g.DeleteEdge(e.ID)
	require.Equal(0, a.EdgeCount())
	require.Equal(0, b.EdgeCount())
	require.NoError(s.g.Validate())
}

func (s *StoreSuite) TestDeleteNode_Idempotent() {
	require := require.New(s.T())
	a := mustNode(s.T(), s.g, core.Room, 2, 2)
	b := mustNode(s.T(), s.g, core.Room, 6, 2)
	c := mustNode(s.T(), s.g, core.Room, 2, 6)
	mustEdge(s.T(), s.g, a, b)
	mustEdge(s.T(), s.g, a, c)

	s.g.DeleteNode(a.ID)
	require.Equal(2, s.g.NodeCount())
	require.Equal(0, s.g.EdgeCount())
	require.Equal(0, b.EdgeCount())
	require.Equal(0, c.EdgeCount())
	_, ok := s.g.NodeAt(2, 2)
	require.False(ok)
	require.Equal([]core.NodeID{b.ID, c.ID}, ids(s.g.Nodes()))
	require.NoError(s.g.Validate())

	snapshot := s.g.Stats()
	s.g.DeleteNode(a.ID)
	require.Equal(snapshot, s.g.Stats())

	// the freed tile can be reused and ids are never recycled
	d := mustNode(s.T(), s.g, core.Store, 2, 2)
	require.Equal(core.NodeID(4), d.ID)
}

func (s *StoreSuite) TestSetType() {
	n := mustNode(s.T(), s.g, core.TJunctionUp, 4, 4)
	s.g.SetType(n.ID, core.CrossHallway)
	s.Equal(core.CrossHallway, n.Type)
	s.g.SetType(12345, core.Room) // no-op
}

func (s *StoreSuite) TestEdgesCoveringTile() {
	require := require.New(s.T())
	a := mustNode(s.T(), s.g, core.Room, 1, 5)
	b := mustNode(s.T(), s.g, core.Room, 9, 5)
	c := mustNode(s.T(), s.g, core.Room, 5, 1)
	d := mustNode(s.T(), s.g, core.Room, 5, 8)
	h := mustEdge(s.T(), s.g, a, b)
	v := mustEdge(s.T(), s.g, c, d)

	cover := s.g.EdgesCoveringTile(5, 5)
	require.Len(cover, 2)
	require.Equal(h.ID, cover[0].ID)
	require.Equal(v.ID, cover[1].ID)

	require.Len(s.g.EdgesCoveringTile(1, 5), 1, "endpoint tiles are covered")
	require.Empty(s.g.EdgesCoveringTile(0, 0))
	require.True(h.IntersectsWith(v))
	require.True(h.Covers(grid.Point{X: 3, Y: 5}))
	require.Equal(b.ID, h.Other(a.ID))
	require.True(h.HasEndpoint(b.ID))
	require.False(h.HasEndpoint(c.ID))
}

func (s *StoreSuite) TestUnconnected() {
	a := mustNode(s.T(), s.g, core.Room, 1, 1)
	b := mustNode(s.T(), s.g, core.Room, 1, 6)
	c := mustNode(s.T(), s.g, core.Fountain, 6, 6)
	mustEdge(s.T(), s.g, a, b)
	s.Equal([]core.NodeID{c.ID}, ids(s.g.Unconnected()))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
