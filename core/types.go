// SPDX-License-Identifier: MIT

// This file declares NodeType, Node, Edge, Graph, sentinel errors and the
// NewGraph constructor.
package core

import (
	"errors"
	"strconv"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cryptgraph/grid"
)

// Sentinel errors for core graph operations.
var (
	// ErrOutOfBounds indicates node coordinates outside the grid.
	ErrOutOfBounds = errors.New("core: node coordinates out of bounds")

	// ErrTileOccupied indicates a second node was requested on an occupied tile.
	ErrTileOccupied = errors.New("core: tile already hosts a node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge whose source and target are the same node.
	ErrSelfLoop = errors.New("core: edge source equals target")

	// ErrDuplicateEdge indicates an edge between already adjacent nodes.
	ErrDuplicateEdge = errors.New("core: nodes already adjacent")

	// ErrInvariant indicates Validate detected an inconsistent graph.
	ErrInvariant = errors.New("core: graph invariant violated")
)

// NodeType tags what occupies a node's tile.
type NodeType int

const (
	Room NodeType = iota
	VerticalHallway
	HorizontalHallway
	TJunctionUp
	TJunctionDown
	TJunctionLeft
	TJunctionRight
	CrossHallway
	StairUp
	StairDown
	Fountain
	Store
	Empty
	Phantom
)

var nodeTypeNames = [...]string{
	Room:              "Room",
	VerticalHallway:   "VerticalHallway",
	HorizontalHallway: "HorizontalHallway",
	TJunctionUp:       "TJunctionUp",
	TJunctionDown:     "TJunctionDown",
	TJunctionLeft:     "TJunctionLeft",
	TJunctionRight:    "TJunctionRight",
	CrossHallway:      "CrossHallway",
	StairUp:           "StairUp",
	StairDown:         "StairDown",
	Fountain:          "Fountain",
	Store:             "Store",
	Empty:             "Empty",
	Phantom:           "Phantom",
}

// String returns the type name.
func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "NodeType(" + strconv.Itoa(int(t)) + ")"
	}
	return nodeTypeNames[t]
}

// IsTJunction reports whether t is one of the four directional T-junctions.
func (t NodeType) IsTJunction() bool {
	return t == TJunctionUp || t == TJunctionDown || t == TJunctionLeft || t == TJunctionRight
}

// IsLandmark reports whether t is a placed category (room, stairs, fountain, store)
// as opposed to a structural junction.
func (t NodeType) IsLandmark() bool {
	switch t {
	case Room, StairUp, StairDown, Fountain, Store:
		return true
	}
	return false
}

// TJunctionFacing returns the T-junction whose stub points along c.
func TJunctionFacing(c grid.Cardinal) NodeType {
	switch c {
	case grid.Up:
		return TJunctionUp
	case grid.Down:
		return TJunctionDown
	case grid.Left:
		return TJunctionLeft
	default:
		return TJunctionRight
	}
}

// NodeID identifies a node within its Graph.
type NodeID uint64

// String renders the id as "n<seq>".
func (id NodeID) String() string { return "n" + strconv.FormatUint(uint64(id), 10) }

// EdgeID identifies an edge within its Graph.
type EdgeID uint64

// String renders the id as "e<seq>".
func (id EdgeID) String() string { return "e" + strconv.FormatUint(uint64(id), 10) }

// NodeConfig describes a node to add. Index is derived from (X,Y).
type NodeConfig struct {
	Type NodeType
	X, Y int
}

// Node is a landmark or junction cell.
//
// Type may be changed in place via Graph.SetType; coordinates never change.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID

	// Index is the row-major grid index y*width+x.
	Index int

	// X, Y are the tile coordinates.
	X, Y int

	// Type is what occupies the tile.
	Type NodeType

	edges int // live incident edge count
}

// Position returns the node's tile.
func (n *Node) Position() grid.Point { return grid.Point{X: n.X, Y: n.Y} }

// EdgeCount returns the number of live edges incident to n.
func (n *Node) EdgeCount() int { return n.edges }

// Edge is an undirected corridor between two nodes.
//
// Each Edge carries the Euclidean distance between its endpoints, the
// rasterized footprint (endpoints included, source first) and the run
// direction derived from that footprint.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// Source and Target are the endpoint node IDs.
	Source, Target NodeID

	// Distance is the Euclidean length between endpoint tiles.
	Distance float64

	// Direction classifies Tiles.
	Direction grid.Run

	// Tiles is the ordered footprint from Source to Target.
	Tiles []grid.Point

	cover mapset.Set[grid.Point]
}

// Graph is the level's node/edge arena plus its adjacency map.
type Graph struct {
	dims grid.Dims

	nextNodeID uint64
	nextEdgeID uint64

	nodes   map[NodeID]*Node
	order   []NodeID       // node insertion order
	byIndex map[int]NodeID // tile index → occupying node
	edges   map[EdgeID]*Edge

	// adjacency[a] holds every b joined to a by an edge.
	adjacency map[NodeID]mapset.Set[NodeID]
}

// NewGraph creates an empty Graph over a width×height grid.
// Returns grid.ErrBadDimensions if either dimension is not positive.
// Complexity: O(1).
func NewGraph(width, height int) (*Graph, error) {
	dims, err := grid.NewDims(width, height)
	if err != nil {
		return nil, err
	}

	return &Graph{
		dims:      dims,
		nodes:     make(map[NodeID]*Node),
		byIndex:   make(map[int]NodeID),
		edges:     make(map[EdgeID]*Edge),
		adjacency: make(map[NodeID]mapset.Set[NodeID]),
	}, nil
}
