package world

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Parse.
var (
	ErrEmptyMap   = errors.New("map has no cells")
	ErrRaggedRows = errors.New("map rows have different lengths")
	ErrOpenBorder = errors.New("map border is not fully walled")
)

// Grid is an immutable W x H wall map.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// Parse builds a grid from equal-length text rows where WallRune marks a wall.
// The first and last row, and the first and last column of every row, must be
// walls so that every ray and every move stays inside the grid.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len([]rune(rows[0])) == 0 {
		return nil, ErrEmptyMap
	}

	width := len([]rune(rows[0]))
	height := len(rows)

	g := &Grid{
		cells:  make([]Cell, 0, width*height),
		width:  width,
		height: height,
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", y, len(runes), width, ErrRaggedRows)
		}
		for _, r := range runes {
			if r == WallRune {
				g.cells = append(g.cells, Wall)
			} else {
				g.cells = append(g.cells, Open)
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.IsOnBorder(x, y) && g.Cell(x, y) != Wall {
				return nil, fmt.Errorf("cell (%d,%d) is open: %w", x, y, ErrOpenBorder)
			}
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on an invalid layout.
// It is intended for layouts compiled into the binary.
func MustParse(rows []string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(fmt.Sprintf("world: invalid built-in layout: %v", err))
	}
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// MaxDimension returns the larger of Width and Height.
// A ray capped at this many steps always reaches the border.
func (g *Grid) MaxDimension() int {
	if g.width > g.height {
		return g.width
	}
	return g.height
}

// IsValidPosition checks if x/y is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOnBorder checks if a position is on the outer ring of the grid
func (g *Grid) IsOnBorder(x, y int) bool {
	return g.IsValidPosition(x, y) && (x == 0 || y == 0 || x == g.width-1 || y == g.height-1)
}

// Cell returns the cell at x/y. Out-of-bounds positions are reported as Wall.
func (g *Grid) Cell(x, y int) Cell {
	if !g.IsValidPosition(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// IsWall reports whether x/y is a wall or lies outside the grid.
func (g *Grid) IsWall(x, y int) bool {
	return g.Cell(x, y) == Wall
}

// IsOpenAt reports whether the cell containing world position (x, y) is open.
func (g *Grid) IsOpenAt(x, y float64) bool {
	p := PointAt(x, y)
	return !g.IsWall(p.X, p.Y)
}

// ForEachCell iterates over all cells row by row
func (g *Grid) ForEachCell(fn func(x, y int, c Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// String renders the grid back into its text form
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.IsWall(x, y) {
				buf = append(buf, WallRune)
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
