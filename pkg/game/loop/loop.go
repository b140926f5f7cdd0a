// Package loop runs the tick cycle: poll one key, resolve it against the
// game, cast one ray per column and draw the frame.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"raymarch/pkg/engine/clock"
	"raymarch/pkg/engine/input"
	"raymarch/pkg/engine/terminal"
	"raymarch/pkg/game/gameplay"
	"raymarch/pkg/game/raycast"
	"raymarch/pkg/game/renderer"
	"raymarch/pkg/game/state"
)

// NominalFrame stands in for the measured frame time before the first tick
// completes. It matches the tick length the movement rates are tuned for.
const NominalFrame = 5 * time.Millisecond

// Options wires a Loop. Game, Caster, Surface, Source and Renderer are required.
type Options struct {
	Game     *state.Game
	Caster   *raycast.Caster
	Surface  terminal.Surface
	Source   input.Source
	Renderer *renderer.Renderer

	// Optional
	Clock    *clock.FrameClock
	Logger   *zap.Logger
	Throttle time.Duration
	Sleep    func(time.Duration)
}

// Loop owns the game state and the frame timing between ticks.
type Loop struct {
	game     *state.Game
	caster   *raycast.Caster
	surface  terminal.Surface
	source   input.Source
	renderer *renderer.Renderer
	clock    *clock.FrameClock
	log      *zap.Logger
	throttle time.Duration
	sleep    func(time.Duration)

	elapsed    time.Duration
	cols, rows int
	overlay    bool
	dists      []int
	frames     uint64
}

// New checks opts and builds a loop.
func New(opts Options) (*Loop, error) {
	switch {
	case opts.Game == nil:
		return nil, errors.New("new loop: nil game")
	case opts.Caster == nil:
		return nil, errors.New("new loop: nil caster")
	case opts.Surface == nil:
		return nil, errors.New("new loop: nil surface")
	case opts.Source == nil:
		return nil, errors.New("new loop: nil input source")
	case opts.Renderer == nil:
		return nil, errors.New("new loop: nil renderer")
	case opts.Throttle < 0:
		return nil, fmt.Errorf("new loop: negative throttle %v", opts.Throttle)
	}

	l := &Loop{
		game:     opts.Game,
		caster:   opts.Caster,
		surface:  opts.Surface,
		source:   opts.Source,
		renderer: opts.Renderer,
		clock:    opts.Clock,
		log:      opts.Logger,
		throttle: opts.Throttle,
		sleep:    opts.Sleep,
		elapsed:  NominalFrame,
	}
	if l.clock == nil {
		l.clock = clock.New()
	}
	if l.log == nil {
		l.log = zap.NewNop()
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}
	return l, nil
}

// Game returns the state driven by the loop
func (l *Loop) Game() *state.Game {
	return l.game
}

// Elapsed returns the measured duration of the last completed tick
func (l *Loop) Elapsed() time.Duration {
	return l.elapsed
}

// Frames counts completed ticks
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step runs one tick. It reports quit once a Quit intent arrives; a surface
// failure aborts with a wrapped error.
func (l *Loop) Step() (bool, error) {
	start := l.clock.Start()

	intent := input.PollIntent(l.source)
	outcome := gameplay.ProcessIntent(l.game, intent, l.elapsed)
	l.logOutcome(outcome)
	if outcome == gameplay.OutcomeQuit {
		return true, nil
	}

	cols, rows, err := l.surface.Size()
	if err != nil {
		return false, fmt.Errorf("query surface size: %w", err)
	}
	if cols != l.cols || rows != l.rows {
		l.log.Info("surface size changed",
			zap.Int("cols", cols), zap.Int("rows", rows),
			zap.Int("prev_cols", l.cols), zap.Int("prev_rows", l.rows))
		l.cols, l.rows = cols, rows
		l.overlay = false
		l.surface.Clear()
	}

	if l.game.Paused {
		// the overlay is static, draw it once per pause
		if !l.overlay {
			l.renderer.DrawPaused(l.surface, cols, rows)
			l.overlay = true
		}
	} else {
		l.overlay = false
		l.dists = l.caster.CastColumns(l.dists, l.game.Position, l.game.Rotation, cols)
		l.renderer.RenderFrame(l.surface, cols, rows, l.game, l.dists, l.elapsed)
	}

	if err := l.surface.Flush(); err != nil {
		return false, fmt.Errorf("flush frame: %w", err)
	}

	if l.throttle > 0 {
		l.sleep(l.throttle)
	}

	l.elapsed = l.clock.ElapsedSince(start)
	l.frames++
	return false, nil
}

// Run steps until a Quit intent, an error, or ctx is done.
// Cancellation is a normal stop and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("loop started",
		zap.Float64("x", l.game.Position.X), zap.Float64("y", l.game.Position.Y),
		zap.Int("max_steps", l.caster.MaxSteps()), zap.Duration("throttle", l.throttle))

	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop cancelled", zap.Error(ctx.Err()), zap.Uint64("frames", l.frames))
			return nil
		default:
		}

		quit, err := l.Step()
		if err != nil {
			l.log.Error("loop aborted", zap.Error(err), zap.Uint64("frames", l.frames))
			return err
		}
		if quit {
			l.log.Info("loop finished", zap.Uint64("frames", l.frames))
			return nil
		}
	}
}

func (l *Loop) logOutcome(o gameplay.Outcome) {
	switch o {
	case gameplay.OutcomeQuit, gameplay.OutcomePaused, gameplay.OutcomeResumed:
		l.log.Info("state transition", zap.Stringer("outcome", o))
	case gameplay.OutcomeReset:
		l.log.Info("player reset",
			zap.Float64("x", l.game.Position.X), zap.Float64("y", l.game.Position.Y))
	case gameplay.OutcomeBlocked, gameplay.OutcomeSlid:
		l.log.Debug("collision", zap.Stringer("outcome", o),
			zap.Float64("x", l.game.Position.X), zap.Float64("y", l.game.Position.Y))
	}
}
