// SPDX-License-Identifier: MIT

// File: tiles.go
// Role: per-cell classification of a level for renderers.
package level

import (
	"strings"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/grid"
)

// TileKind says what, if anything, occupies a cell.
type TileKind int

const (
	// TileEmpty is solid rock.
	TileEmpty TileKind = iota
	// TileCorridor is a corridor cell with no node on it.
	TileCorridor
	// TileNode hosts a landmark or junction.
	TileNode
)

// Tile is one classified cell.
type Tile struct {
	Kind TileKind

	// Node is the occupying node type; meaningful for TileNode only.
	Node core.NodeType

	// Run is the corridor direction; meaningful for TileCorridor only.
	Run grid.Run
}

// nodeGlyphs maps node types to their map glyphs.
var nodeGlyphs = map[core.NodeType]rune{
	core.Room:              '■',
	core.VerticalHallway:   '│',
	core.HorizontalHallway: '─',
	core.TJunctionUp:       '┴',
	core.TJunctionDown:     '┬',
	core.TJunctionLeft:     '┤',
	core.TJunctionRight:    '├',
	core.CrossHallway:      '┼',
	core.StairUp:           '▲',
	core.StairDown:         '▼',
	core.Fountain:          '●',
	core.Store:             '$',
	core.Empty:             ' ',
	core.Phantom:           '?',
}

// Glyph returns a single-rune rendering of t. Mixed corridors draw as
// vertical runs.
func (t Tile) Glyph() rune {
	switch t.Kind {
	case TileNode:
		if r, ok := nodeGlyphs[t.Node]; ok {
			return r
		}
		return '?'
	case TileCorridor:
		if t.Run == grid.RunHorizontal {
			return '─'
		}
		return '│'
	default:
		return ' '
	}
}

// TileMap is a row-major classification of every cell.
type TileMap struct {
	dims  grid.Dims
	tiles []Tile
}

// Tiles classifies every cell: nodes take precedence over corridors, and
// where corridors overlap the one with the higher EdgeID wins.
// Complexity: O(W·H + ΣL).
func (l *Level) Tiles() *TileMap {
	dims := l.graph.Dims()
	m := &TileMap{dims: dims, tiles: make([]Tile, dims.Cells())}

	for _, e := range l.graph.Edges() {
		for _, p := range e.Tiles {
			m.tiles[dims.Index(p.X, p.Y)] = Tile{Kind: TileCorridor, Run: e.Direction}
		}
	}
	for _, n := range l.graph.Nodes() {
		m.tiles[n.Index] = Tile{Kind: TileNode, Node: n.Type}
	}

	return m
}

// Width returns the number of columns.
func (m *TileMap) Width() int { return m.dims.Width }

// Height returns the number of rows.
func (m *TileMap) Height() int { return m.dims.Height }

// At returns the tile on (x,y); cells outside the grid are empty.
func (m *TileMap) At(x, y int) Tile {
	if !m.dims.InBounds(x, y) {
		return Tile{}
	}
	return m.tiles[m.dims.Index(x, y)]
}

// Rows renders each grid row as a string of glyphs.
func (m *TileMap) Rows() []string {
	out := make([]string, m.dims.Height)
	var sb strings.Builder
	for y := 0; y < m.dims.Height; y++ {
		sb.Reset()
		for x := 0; x < m.dims.Width; x++ {
			sb.WriteRune(m.At(x, y).Glyph())
		}
		out[y] = sb.String()
	}

	return out
}

// String renders the map, one line per row.
func (m *TileMap) String() string { return strings.Join(m.Rows(), "\n") }
