// Package gameplay turns player intents into GameState transitions.
package gameplay

import (
	"math"
	"time"

	"raymarch/pkg/engine/clock"
	"raymarch/pkg/game/state"
)

// Rates are expressed per millisecond of frame time: a key press moves
// MovementSpeed / elapsed_ms units and turns RotationSpeed / elapsed_ms radians.
// They are tuned for unthrottled ticks of a few milliseconds: at 5 ms a press
// turns 0.1 rad and walks 0.3 units.
const (
	RotationSpeed = 0.5
	MovementSpeed = 1.5

	// MaxStepLength is the longest distance moved between two collision
	// checks. Longer moves are split so no step can jump a one-cell wall.
	MaxStepLength = 0.5
)

// RotationDelta returns how far one turn key press rotates for a frame of the given length.
func RotationDelta(elapsed time.Duration) float64 {
	return RotationSpeed / clock.Millis(elapsed)
}

// StepLength returns how far one move key press walks for a frame of the given length.
func StepLength(elapsed time.Duration) float64 {
	return MovementSpeed / clock.Millis(elapsed)
}

// StepVector returns the displacement for one move along rotation.
// dir is +1 for forward and -1 for backward.
func StepVector(rotation, dir float64, elapsed time.Duration) (dx, dy float64) {
	length := StepLength(elapsed) * dir
	return math.Sin(rotation) * length, math.Cos(rotation) * length
}

// Move applies the displacement (dx, dy) to the player in sub-steps of at
// most MaxStepLength, checking collision after each one.
//
// It stops at the first sub-step that is fully blocked. The outcome is Moved
// when every sub-step went through unchanged, otherwise the last Slid or
// Blocked result.
func Move(g *state.Game, dx, dy float64) Outcome {
	n := int(math.Ceil(math.Hypot(dx, dy) / MaxStepLength))
	if n < 1 {
		n = 1
	}
	sx, sy := dx/float64(n), dy/float64(n)

	result := OutcomeMoved
	for i := 0; i < n; i++ {
		o := moveStep(g, sx, sy)
		if o != OutcomeMoved {
			result = o
		}
		if o == OutcomeBlocked {
			break
		}
	}
	return result
}

// moveStep applies one short displacement.
//
// The destination cell of the combined move is checked first. If it is a
// wall, each axis is checked on its own, x first and then y from the
// resulting x, and a blocked axis contributes nothing. This lets the player
// slide along walls and guarantees the final position is open.
func moveStep(g *state.Game, dx, dy float64) Outcome {
	p := g.Position

	if g.Grid.IsOpenAt(p.X+dx, p.Y+dy) {
		if g.MoveTo(state.Vec2{X: p.X + dx, Y: p.Y + dy}) {
			return OutcomeMoved
		}
		return OutcomeBlocked
	}

	if !g.Grid.IsOpenAt(p.X+dx, p.Y) {
		dx = 0
	}
	if !g.Grid.IsOpenAt(p.X+dx, p.Y+dy) {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return OutcomeBlocked
	}

	if !g.MoveTo(state.Vec2{X: p.X + dx, Y: p.Y + dy}) {
		return OutcomeBlocked
	}
	return OutcomeSlid
}
