package state

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"raymarch/pkg/engine/world"
)

// ErrSpawnBlocked is returned when the spawn position is not an open cell.
var ErrSpawnBlocked = errors.New("spawn position is not an open cell")

// Vec2 is a position in world units. X runs along columns, Y along rows.
type Vec2 struct {
	X float64
	Y float64
}

// Cell returns the grid cell that contains the position
func (v Vec2) Cell() world.Point {
	return world.PointAt(v.X, v.Y)
}

// Mode is the top-level state of the loop
type Mode int

// Modes
const (
	ModeRunning Mode = iota
	ModePaused
)

// String returns the name of the mode
func (m Mode) String() string {
	if m == ModePaused {
		return "Paused"
	}
	return "Running"
}

// Game is the complete mutable player state.
// Position always addresses an open cell of Grid.
type Game struct {
	Grid *world.Grid

	Position Vec2
	Rotation float64 // radians, kept in [0, 2π)
	Paused   bool

	// Spawn is where the player starts and where Reset returns to.
	Spawn Vec2

	// Visited holds every cell the player has stood on, for the minimap trail.
	Visited mapset.Set[world.Point]
}

// NewGame creates a game at spawn facing along +Y.
func NewGame(grid *world.Grid, spawn Vec2) (*Game, error) {
	if grid == nil {
		return nil, errors.New("new game: nil grid")
	}
	if !grid.IsOpenAt(spawn.X, spawn.Y) {
		return nil, fmt.Errorf("new game at (%.2f, %.2f): %w", spawn.X, spawn.Y, ErrSpawnBlocked)
	}

	g := &Game{
		Grid:     grid,
		Position: spawn,
		Spawn:    spawn,
		Visited:  mapset.New[world.Point](),
	}
	g.Visited.Put(spawn.Cell())
	return g, nil
}

// Mode returns whether the game is running or paused
func (g *Game) Mode() Mode {
	if g.Paused {
		return ModePaused
	}
	return ModeRunning
}

// SetRotation stores r normalized to [0, 2π)
func (g *Game) SetRotation(r float64) {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	g.Rotation = r
}

// MoveTo places the player at p and records the cell as visited.
// It refuses positions that are not open and reports whether the move happened.
func (g *Game) MoveTo(p Vec2) bool {
	if !g.Grid.IsOpenAt(p.X, p.Y) {
		return false
	}
	g.Position = p
	g.Visited.Put(p.Cell())
	return true
}

// HasVisited checks if the player has stood on cell p
func (g *Game) HasVisited(p world.Point) bool {
	return g.Visited.Has(p)
}
