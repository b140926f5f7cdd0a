// Package world provides the static wall grid that rays are marched against.
// A Grid never changes after it is parsed; every lookup is bounds-safe.
package world

import "math"

// Cell is the contents of a single grid square.
type Cell uint8

// Cell kinds
const (
	Open Cell = iota
	Wall
)

// WallRune is the character that denotes a wall in a layout definition.
// Every other character is open floor.
const WallRune = '#'

// String returns the name of the cell kind
func (c Cell) String() string {
	switch c {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// IsWall returns true for wall cells
func (c Cell) IsWall() bool {
	return c == Wall
}

// Point is an integer cell coordinate. X is the column, Y is the row.
type Point struct {
	X int
	Y int
}

// PointAt returns the cell that contains the world position (x, y).
// Positions are rounded to the nearest cell centre, matching the ray march.
func PointAt(x, y float64) Point {
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}
