package loop

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"raymarch/pkg/engine/clock"
	"raymarch/pkg/engine/input"
	"raymarch/pkg/engine/terminal"
	"raymarch/pkg/engine/world"
	"raymarch/pkg/game/gameplay"
	"raymarch/pkg/game/raycast"
	"raymarch/pkg/game/renderer"
	"raymarch/pkg/game/state"
)

// script delivers one code per poll; "" means no key that tick.
type script struct {
	codes []string
}

func (s *script) Poll() (input.RawInput, bool) {
	if len(s.codes) == 0 {
		return input.RawInput{}, false
	}
	code := s.codes[0]
	s.codes = s.codes[1:]
	if code == "" {
		return input.RawInput{}, false
	}
	return input.RawInput{Device: input.DeviceKeyboard, Code: code}, true
}

var (
	errSize  = errors.New("size unavailable")
	errFlush = errors.New("device gone")
)

type sizeFailSurface struct{ *terminal.Buffer }

func (sizeFailSurface) Size() (int, int, error) { return 0, 0, errSize }

type flushFailSurface struct{ *terminal.Buffer }

func (flushFailSurface) Flush() error { return errFlush }

// stepClock advances by step on every reading.
func stepClock(step time.Duration) *clock.FrameClock {
	now := time.Unix(0, 0)
	return clock.NewWithSource(func() time.Time {
		now = now.Add(step)
		return now
	})
}

type fixture struct {
	loop   *Loop
	buf    *terminal.Buffer
	logs   *observer.ObservedLogs
	sleeps []time.Duration
}

func newFixture(t *testing.T, codes []string, mutate func(*Options)) *fixture {
	t.Helper()

	grid, err := world.Layout("arena")
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	g, err := state.NewGame(grid, state.Vec2{X: 5, Y: 5})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	caster, err := raycast.NewCaster(grid, math.Pi/4, 0)
	if err != nil {
		t.Fatalf("NewCaster() error = %v", err)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{buf: terminal.NewBuffer(40, 20), logs: logs}

	opts := Options{
		Game:     g,
		Caster:   caster,
		Surface:  f.buf,
		Source:   &script{codes: codes},
		Renderer: renderer.New(nil),
		Clock:    stepClock(10 * time.Millisecond),
		Logger:   zap.New(core),
		Sleep:    func(d time.Duration) { f.sleeps = append(f.sleeps, d) },
	}
	if mutate != nil {
		mutate(&opts)
	}

	f.loop, err = New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

func (f *fixture) step(t *testing.T) bool {
	t.Helper()
	quit, err := f.loop.Step()
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	return quit
}

func TestNew_RequiresCollaborators(t *testing.T) {
	f := newFixture(t, nil, nil)
	base := Options{
		Game:     f.loop.game,
		Caster:   f.loop.caster,
		Surface:  f.buf,
		Source:   &script{},
		Renderer: renderer.New(nil),
	}

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"game", func(o *Options) { o.Game = nil }},
		{"caster", func(o *Options) { o.Caster = nil }},
		{"surface", func(o *Options) { o.Surface = nil }},
		{"source", func(o *Options) { o.Source = nil }},
		{"renderer", func(o *Options) { o.Renderer = nil }},
		{"throttle", func(o *Options) { o.Throttle = -time.Millisecond }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			if _, err := New(opts); err == nil {
				t.Error("New() accepted invalid options")
			}
		})
	}
}

func TestStep_QuitEndsBeforeDrawing(t *testing.T) {
	f := newFixture(t, []string{"escape"}, nil)

	if !f.step(t) {
		t.Fatal("Step() did not report quit")
	}
	if f.buf.Flushes() != 0 {
		t.Errorf("Flushes() = %d, want 0", f.buf.Flushes())
	}
	if f.logs.FilterMessage("state transition").Len() != 1 {
		t.Error("quit transition was not logged")
	}
}

func TestStep_DrawsFrame(t *testing.T) {
	f := newFixture(t, nil, nil)

	if f.step(t) {
		t.Fatal("Step() quit without a quit key")
	}
	if f.buf.Flushes() != 1 {
		t.Errorf("Flushes() = %d, want 1", f.buf.Flushes())
	}
	if !strings.Contains(f.buf.Row(1), renderer.KeyHUDRotation) {
		t.Errorf("HUD = %q", f.buf.Row(1))
	}
	if got := f.buf.Row(2)[:12]; got != "############" {
		t.Errorf("minimap row = %q", got)
	}
	if f.loop.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", f.loop.Frames())
	}
	if f.loop.Elapsed() != 10*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 10ms", f.loop.Elapsed())
	}
	if f.logs.FilterMessage("surface size changed").Len() != 1 {
		t.Error("initial size was not logged")
	}
}

func TestStep_PauseTwiceRestoresRunning(t *testing.T) {
	f := newFixture(t, []string{"p", "w", "p"}, nil)
	before := f.loop.Game().Position

	f.step(t)
	if !f.loop.Game().Paused {
		t.Fatal("first p did not pause")
	}
	if !strings.Contains(f.buf.String(), renderer.KeyPausedTitle) {
		t.Error("pause overlay not drawn")
	}
	if strings.Contains(f.buf.Row(1), renderer.KeyHUDRotation) {
		t.Error("HUD drawn while paused")
	}

	f.step(t)
	if f.loop.Game().Position != before {
		t.Error("movement applied while paused")
	}

	f.step(t)
	if f.loop.Game().Paused {
		t.Fatal("second p did not resume")
	}
	if !strings.Contains(f.buf.Row(1), renderer.KeyHUDRotation) {
		t.Error("HUD not redrawn after resume")
	}
	if n := f.logs.FilterMessage("state transition").Len(); n != 2 {
		t.Errorf("logged %d transitions, want 2", n)
	}
}

func TestStep_FirstMoveUsesNominalFrame(t *testing.T) {
	f := newFixture(t, []string{"w"}, nil)
	f.step(t)

	p := f.loop.Game().Position
	want := 5 + gameplay.MovementSpeed/float64(NominalFrame.Milliseconds())
	if math.Abs(p.Y-want) > 1e-9 || p.X != 5 {
		t.Errorf("Position = %+v, want (5, %.2f)", p, want)
	}
}

func TestStep_Throttle(t *testing.T) {
	f := newFixture(t, nil, func(o *Options) { o.Throttle = 50 * time.Millisecond })
	f.step(t)
	f.step(t)

	if len(f.sleeps) != 2 || f.sleeps[0] != 50*time.Millisecond {
		t.Errorf("sleeps = %v, want two 50ms sleeps", f.sleeps)
	}
}

func TestStep_SurfaceErrors(t *testing.T) {
	tests := []struct {
		name    string
		surface func(*terminal.Buffer) terminal.Surface
		want    error
	}{
		{"size", func(b *terminal.Buffer) terminal.Surface { return sizeFailSurface{b} }, errSize},
		{"flush", func(b *terminal.Buffer) terminal.Surface { return flushFailSurface{b} }, errFlush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, func(o *Options) {
				o.Surface = tt.surface(terminal.NewBuffer(40, 20))
			})
			quit, err := f.loop.Step()
			if !errors.Is(err, tt.want) {
				t.Errorf("Step() error = %v, want %v", err, tt.want)
			}
			if quit {
				t.Error("Step() reported quit on error")
			}
		})
	}
}

func TestRun_StopsOnQuit(t *testing.T) {
	f := newFixture(t, []string{"", "d", "escape"}, nil)

	if err := f.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if f.loop.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", f.loop.Frames())
	}
	if f.loop.Game().Rotation == 0 {
		t.Error("rotation key had no effect")
	}
}

func TestRun_Cancelled(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.loop.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if f.loop.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", f.loop.Frames())
	}
}

func TestRun_ReturnsSurfaceError(t *testing.T) {
	f := newFixture(t, nil, func(o *Options) {
		o.Surface = flushFailSurface{terminal.NewBuffer(40, 20)}
	})

	err := f.loop.Run(context.Background())
	if !errors.Is(err, errFlush) {
		t.Fatalf("Run() error = %v, want %v", err, errFlush)
	}
	if f.logs.FilterMessage("loop aborted").Len() != 1 {
		t.Error("abort was not logged")
	}
}
