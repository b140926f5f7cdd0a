package gameplay

import (
	"fmt"

	"raymarch/pkg/engine/world"
	"raymarch/pkg/game/state"
)

// BuildGame loads a built-in layout and places the player at spawn.
func BuildGame(layout string, spawn state.Vec2) (*state.Game, error) {
	grid, err := world.Layout(layout)
	if err != nil {
		return nil, fmt.Errorf("build game: %w", err)
	}

	g, err := state.NewGame(grid, spawn)
	if err != nil {
		return nil, fmt.Errorf("build game on %q: %w", layout, err)
	}
	return g, nil
}

// ResetPlayer returns the player to the spawn point. Rotation and the
// visited trail are kept.
func ResetPlayer(g *state.Game) {
	g.MoveTo(g.Spawn)
}
