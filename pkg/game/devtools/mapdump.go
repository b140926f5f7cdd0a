// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"

	"raymarch/pkg/engine/world"
	"raymarch/pkg/game/state"
)

// cellSymbol returns the single-character symbol for a cell (no player overlay).
func cellSymbol(g *state.Game, x, y int) rune {
	if g.Grid.IsWall(x, y) {
		return world.WallRune
	}
	if g.HasVisited(world.Point{X: x, Y: y}) {
		return 'v'
	}
	return '.'
}

// DumpMap writes a plain-text description of the game: metadata, legend and
// the grid with the player overlaid.
func DumpMap(w io.Writer, g *state.Game, layout string) error {
	player := g.Position.Cell()

	lines := []string{
		"# raymarch map dump",
		fmt.Sprintf("layout: %s", layout),
		fmt.Sprintf("size: %dx%d", g.Grid.Width(), g.Grid.Height()),
		fmt.Sprintf("spawn: %.2f, %.2f", g.Spawn.X, g.Spawn.Y),
		fmt.Sprintf("player: %.2f, %.2f (cell %d, %d)", g.Position.X, g.Position.Y, player.X, player.Y),
		fmt.Sprintf("rotation: %.2f", g.Rotation),
		fmt.Sprintf("visited: %d", g.Visited.Size()),
		"",
		"legend: # wall  . open  v visited  @ player",
		"",
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("dump map: %w", err)
		}
	}

	row := make([]rune, g.Grid.Width())
	for y := 0; y < g.Grid.Height(); y++ {
		for x := range row {
			if x == player.X && y == player.Y {
				row[x] = '@'
				continue
			}
			row[x] = cellSymbol(g, x, y)
		}
		if _, err := fmt.Fprintln(w, string(row)); err != nil {
			return fmt.Errorf("dump map: %w", err)
		}
	}
	return nil
}
