package gameplay

import (
	"time"

	engineinput "raymarch/pkg/engine/input"
	"raymarch/pkg/game/state"
)

// Outcome describes what a processed intent did to the game.
type Outcome int

// Outcomes
const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomePaused
	OutcomeResumed
	OutcomeRotated
	OutcomeMoved
	OutcomeSlid
	OutcomeBlocked
	OutcomeReset
	// OutcomeIgnored means the intent was valid but the game is paused.
	OutcomeIgnored
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:    "none",
	OutcomeQuit:    "quit",
	OutcomePaused:  "paused",
	OutcomeResumed: "resumed",
	OutcomeRotated: "rotated",
	OutcomeMoved:   "moved",
	OutcomeSlid:    "slid",
	OutcomeBlocked: "blocked",
	OutcomeReset:   "reset",
	OutcomeIgnored: "ignored",
}

// String returns the outcome name
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// ProcessIntent handles a high-level input intent from the tiered input system.
// elapsed is the duration of the previous tick and scales turning and walking.
//
// Quit and TogglePause work in both modes; everything else is ignored while paused.
func ProcessIntent(g *state.Game, intent engineinput.Intent, elapsed time.Duration) Outcome {
	switch intent.Action {
	case engineinput.ActionNone:
		return OutcomeNone

	case engineinput.ActionQuit:
		return OutcomeQuit

	case engineinput.ActionTogglePause:
		g.Paused = !g.Paused
		if g.Paused {
			return OutcomePaused
		}
		return OutcomeResumed
	}

	if g.Paused {
		return OutcomeIgnored
	}

	switch intent.Action {
	case engineinput.ActionRotateLeft:
		g.SetRotation(g.Rotation - RotationDelta(elapsed))
		return OutcomeRotated

	case engineinput.ActionRotateRight:
		g.SetRotation(g.Rotation + RotationDelta(elapsed))
		return OutcomeRotated

	case engineinput.ActionMoveForward:
		dx, dy := StepVector(g.Rotation, 1, elapsed)
		return Move(g, dx, dy)

	case engineinput.ActionMoveBack:
		dx, dy := StepVector(g.Rotation, -1, elapsed)
		return Move(g, dx, dy)

	case engineinput.ActionReset:
		ResetPlayer(g)
		return OutcomeReset
	}

	return OutcomeNone
}
