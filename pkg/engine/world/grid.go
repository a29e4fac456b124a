// Package world provides the maze grid, facings and visibility queries.
package world

import (
	"fmt"
	"strings"
)

// Grid dimensions
const (
	Size   = 20
	MapMax = Size - 1
)

// Tile is the content of one grid square.
type Tile uint8

// Tile values as stored in the layout tables.
const (
	Wall  Tile = 0xEE
	Clear Tile = 0xFF
)

// Symbols used by the text form of a layout.
const (
	SymbolWall  = '#'
	SymbolClear = '.'
)

func (t Tile) String() string {
	if t == Clear {
		return "Clear"
	}
	return "Wall"
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Step returns p moved one square in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Grid is a fixed 20x20 maze. Rows are indexed by y, columns by x.
type Grid struct {
	tiles [Size][Size]Tile
	id    int
}

// NewGrid creates a grid with every square walled.
func NewGrid() *Grid {
	g := &Grid{id: -1}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			g.tiles[y][x] = Wall
		}
	}
	return g
}

// ParseGrid builds a grid from 20 rows of '#' (wall) and '.' (clear).
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("layout has %d rows, want %d", len(rows), Size)
	}
	g := NewGrid()
	for y, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("layout row %d has %d columns, want %d", y, len(row), Size)
		}
		for x, ch := range row {
			switch ch {
			case SymbolWall:
				g.tiles[y][x] = Wall
			case SymbolClear:
				g.tiles[y][x] = Clear
			default:
				return nil, fmt.Errorf("layout row %d col %d: unknown symbol %q", y, x, ch)
			}
		}
	}
	return g, nil
}

// ID returns the layout id the grid was loaded from, or -1.
func (g *Grid) ID() int {
	return g.id
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// TileAt returns the tile at (x, y). Anything off the grid is a wall.
func (g *Grid) TileAt(x, y int) Tile {
	if g == nil || !g.IsValidPosition(x, y) {
		return Wall
	}
	return g.tiles[y][x]
}

// IsClear reports whether (x, y) is an open square.
func (g *Grid) IsClear(x, y int) bool {
	return g.TileAt(x, y) == Clear
}

// SetTile overwrites a square. Returns false if out of bounds.
func (g *Grid) SetTile(x, y int, t Tile) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.tiles[y][x] = t
	return true
}

// CenterPosition returns the coordinates of the square nearest the centre.
func (g *Grid) CenterPosition() (int, int) {
	return MapMax / 2, MapMax / 2
}

// ForEachCell iterates over all squares in row order.
func (g *Grid) ForEachCell(fn func(x, y int, t Tile)) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			fn(x, y, g.tiles[y][x])
		}
	}
}

// OpenExits returns the exits of (x, y) that lead to clear squares.
func (g *Grid) OpenExits(x, y int) ExitSet {
	var exits ExitSet
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		if g.IsClear(x+dx, y+dy) {
			exits = exits.With(d.Exit())
		}
	}
	return exits
}

// String renders the grid in its text layout form.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.tiles[y][x] == Clear {
				b.WriteByte(SymbolClear)
			} else {
				b.WriteByte(SymbolWall)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
